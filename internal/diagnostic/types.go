package diagnostic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gender-swap/internal/common"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind classifies a diagnostic.
type Kind int

const (
	KindUnknown             Kind = iota // unknown
	KindMalformedLine                   // malformed_line
	KindUnknownGender                   // unknown_gender
	KindUnresolvedCharacter             // unresolved_character
	KindOrderingMismatch                // ordering_mismatch
	KindPlausibility                    // plausibility
	KindDuplicateDefinition             // duplicate_definition
	KindNestedToken                     // nested_token
	KindNameFormat                      // name_format
	KindSelectionMissing                // selection_missing
)

// NoCharacter marks a diagnostic that is not tied to a character number.
const NoCharacter = -1

// Diagnostics holds all diagnostic information from a parse or transform.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic

	// Notify, when set, is called with every diagnostic as it is added.
	Notify func(Diagnostic)
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Kind identifies this type of diagnostic.
	Kind Kind
	// Message is the human-readable description.
	Message string
	// Location is where the finding was made, e.g. "genders.txt:4" or a file name.
	Location string
	// Character is the character number involved, or NoCharacter.
	Character int
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// New returns an empty collector that forwards every diagnostic to notify.
// A nil notify is allowed.
func New(notify func(Diagnostic)) *Diagnostics {
	return &Diagnostics{Notify: notify}
}

// Add records d under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}

	if d.Notify != nil {
		d.Notify(diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(kind Kind, message, location string, character int) {
	d.Add(Diagnostic{
		Severity:  DiagnosticError,
		Kind:      kind,
		Message:   message,
		Location:  location,
		Character: character,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(kind Kind, message, location string, character int) {
	d.Add(Diagnostic{
		Severity:  DiagnosticWarning,
		Kind:      kind,
		Message:   message,
		Location:  location,
		Character: character,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(kind Kind, message, location string, character int) {
	d.Add(Diagnostic{
		Severity:  DiagnosticInfo,
		Kind:      kind,
		Message:   message,
		Location:  location,
		Character: character,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the total number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Count returns how many diagnostics of the given kind were recorded.
func (d *Diagnostics) Count(kind Kind) int {
	n := 0

	for _, diag := range d.All() {
		if diag.Kind == kind {
			n++
		}
	}

	return n
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)
	all = append(all, d.Infos...)

	return all
}

// Merge merges another Diagnostics instance into this one.
// The Notify hook is not replayed for merged entries.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Location != "" {
		prefix = append(prefix, d.Location)
	}

	if d.Character != NoCharacter {
		prefix = append(prefix, "#"+strconv.Itoa(d.Character))
	}

	msg := fmt.Sprintf("[%s] %s", d.Kind, d.Message)
	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(quoteAll(d.Suggestions), " or "))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strconv.Quote(s)
	}

	return out
}
