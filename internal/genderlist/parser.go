package genderlist

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gender-swap/internal/common"
	"gender-swap/internal/diagnostic"
	"gender-swap/internal/pronoun"
)

const (
	fieldSep      = ":"
	orderingSep   = "/"
	commentPrefix = "#"
	lineBreaks    = "\r\n"
	fieldCount    = 4
)

// Parser parses gender lists. The zero value is ready to use.
type Parser struct {
	// Source names the input in diagnostics, usually a file path.
	Source string
	// Notify, when set, receives every diagnostic as it is recorded.
	Notify func(diagnostic.Diagnostic)
}

// Parse parses gender-list lines with a zero Parser.
func Parse(lines []string) (*Definitions, *diagnostic.Diagnostics, error) {
	return Parser{}.Parse(lines)
}

// ParseText splits text into lines and parses it with a zero Parser.
func ParseText(text string) (*Definitions, *diagnostic.Diagnostics, error) {
	return Parser{}.Parse(common.Lines(text))
}

// entry is one character before validation, whichever format it came from.
type entry struct {
	location string
	name     string
	number   string
	ordering []string
	selected string
}

// state accumulates the result of one parse.
type state struct {
	defs  *Definitions
	diags *diagnostic.Diagnostics
	errs  []error
	seen  map[int]string // number -> location of its latest definition
}

func (p Parser) newState() *state {
	return &state{
		defs:  NewDefinitions(),
		diags: diagnostic.New(p.Notify),
		seen:  make(map[int]string),
	}
}

func (s *state) result() (*Definitions, *diagnostic.Diagnostics, error) {
	return s.defs, s.diags, errors.Join(s.errs...)
}

// Parse parses gender-list lines. Malformed lines are skipped and reported;
// the returned error joins a *MalformedLineError for each of them, and the
// definitions hold every line that did parse.
func (p Parser) Parse(lines []string) (*Definitions, *diagnostic.Diagnostics, error) {
	s := p.newState()

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, commentPrefix) {
			continue
		}

		loc := p.location(i + 1)

		fields := strings.Split(line, fieldSep)
		if len(fields) != fieldCount {
			s.malformed(loc, line, fmt.Sprintf("expected %d colon-separated fields, got %d", fieldCount, len(fields)))
			continue
		}

		s.add(entry{
			location: loc,
			name:     fields[0],
			number:   fields[1],
			ordering: strings.Split(fields[2], orderingSep),
			selected: fields[3],
		}, line)
	}

	return s.result()
}

func (p Parser) location(line int) string {
	if p.Source == "" {
		return "line " + strconv.Itoa(line)
	}

	return p.Source + ":" + strconv.Itoa(line)
}

func (s *state) malformed(loc, text, reason string) {
	err := &MalformedLineError{Location: loc, Text: text, Reason: reason}
	s.errs = append(s.errs, err)
	s.diags.AddError(diagnostic.KindMalformedLine, fmt.Sprintf("malformed line %q: %s", text, reason), loc, diagnostic.NoCharacter)
}

// add validates e and stores it. raw is the source text used in
// MalformedLineError.
func (s *state) add(e entry, raw string) {
	number, err := strconv.Atoi(strings.TrimSpace(e.number))
	if err != nil {
		s.malformed(e.location, raw, fmt.Sprintf("character number %q is not an integer", strings.TrimSpace(e.number)))
		return
	}

	if number < 0 {
		s.malformed(e.location, raw, fmt.Sprintf("character number %d is negative", number))
		return
	}

	name := strings.TrimSpace(e.name)

	labels := make([]string, len(e.ordering))
	for i, label := range e.ordering {
		labels[i] = strings.TrimSpace(label)
	}

	if reason := unrepresentable(name, labels); reason != "" {
		s.malformed(e.location, raw, reason)
		return
	}

	ordering := make([]pronoun.Gender, 0, len(labels))

	for _, label := range labels {

		g, ok := pronoun.Parse(label)
		if !ok {
			s.diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticWarning,
				Kind:        diagnostic.KindUnknownGender,
				Message:     fmt.Sprintf("unknown gender %q in ordering", label),
				Location:    e.location,
				Character:   number,
				Suggestions: pronoun.Suggest(label),
			})
		}

		ordering = append(ordering, g)
	}

	selectedText := strings.TrimSpace(e.selected)

	selected, ok := pronoun.Classify(selectedText)
	if !ok {
		s.diags.AddWarning(diagnostic.KindUnknownGender,
			fmt.Sprintf("unable to classify gender %q", selectedText), e.location, number)
	} else if !slices.Contains(ordering, selected) {
		s.diags.AddInfo(diagnostic.KindSelectionMissing,
			fmt.Sprintf("selected gender %s does not appear in the ordering", selected), e.location, number)
	}

	if prev, dup := s.seen[number]; dup {
		s.diags.AddWarning(diagnostic.KindDuplicateDefinition,
			fmt.Sprintf("character number %d is already defined at %s; only the last entry is used", number, prev),
			e.location, number)
	}

	s.seen[number] = e.location
	s.defs.set(Character{
		Name:   name,
		Number: number,
		Gender: selected,
	}, ordering)
}

// unrepresentable explains why a name or ordering label cannot be written
// back in the line format, or returns "" when both can.
func unrepresentable(name string, labels []string) string {
	switch {
	case strings.ContainsAny(name, fieldSep+lineBreaks):
		return fmt.Sprintf("name %q contains %q or a line break", name, fieldSep)
	case strings.HasPrefix(name, commentPrefix):
		return fmt.Sprintf("name %q starts with %q", name, commentPrefix)
	}

	for _, label := range labels {
		if strings.ContainsAny(label, fieldSep+orderingSep+lineBreaks) {
			return fmt.Sprintf("ordering entry %q contains %q, %q or a line break", label, fieldSep, orderingSep)
		}
	}

	return ""
}
