package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words splits a phrase into lower-cased words.
// Any rune that is not a letter separates words, so "his," and "(his)"
// both yield "his". Apostrophes also separate, which keeps "she's" as "she".
func Words(phrase string) []string {
	fields := strings.FieldsFunc(phrase, func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	if len(fields) == 0 {
		return nil
	}

	// A Caser is stateful and must not be shared between goroutines.
	lower := cases.Lower(language.Und)
	for i, f := range fields {
		fields[i] = lower.String(f)
	}

	return fields
}
