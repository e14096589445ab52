package sheet

import (
	"slices"
	"strconv"
	"strings"

	"gender-swap/internal/diagnostic"
	"gender-swap/internal/genderlist"
)

// DefaultExtensions are the file extensions accepted when none are configured.
var DefaultExtensions = []string{"txt", "rtf"}

// Transformer applies one gender list to sheets and file names.
// It holds no per-call state and is safe for concurrent use as long as
// Notify is.
type Transformer struct {
	Assignment genderlist.Assignment
	Ordering   genderlist.Ordering
	// Extensions accepted by Name, without leading dots.
	Extensions []string
	// Notify, when set, receives every diagnostic as it is recorded.
	Notify func(diagnostic.Diagnostic)
}

// New returns a Transformer for defs. Leading dots are stripped from
// extensions; an empty list means DefaultExtensions.
func New(defs *genderlist.Definitions, extensions []string) *Transformer {
	t := &Transformer{
		Extensions: NormalizeExtensions(extensions),
	}

	if defs != nil {
		t.Assignment = defs.Assignment
		t.Ordering = defs.Ordering
	}

	return t
}

// NormalizeExtensions strips leading dots and surrounding space, drops empty
// and repeated entries, and falls back to DefaultExtensions when nothing is left.
func NormalizeExtensions(extensions []string) []string {
	out := make([]string, 0, len(extensions))

	for _, ext := range extensions {
		ext = strings.TrimLeft(strings.TrimSpace(ext), ".")
		if ext != "" && !slices.Contains(out, ext) {
			out = append(out, ext)
		}
	}

	if len(out) == 0 {
		return slices.Clone(DefaultExtensions)
	}

	return out
}

// Accepts reports whether fileName ends in one of the accepted extensions.
func (t *Transformer) Accepts(fileName string) bool {
	i := strings.LastIndexByte(fileName, '.')
	if i < 0 {
		return false
	}

	return slices.Contains(t.extensions(), fileName[i+1:])
}

func (t *Transformer) extensions() []string {
	if len(t.Extensions) == 0 {
		return DefaultExtensions
	}

	return t.Extensions
}

func location(source string, line int) string {
	if source == "" {
		return "line " + strconv.Itoa(line)
	}

	return source + ":" + strconv.Itoa(line)
}
