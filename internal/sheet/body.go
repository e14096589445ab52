package sheet

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gender-swap/internal/common"
	"gender-swap/internal/diagnostic"
	"gender-swap/internal/genderlist"
	"gender-swap/internal/pronoun"
)

const alternativeSep = "/"

// tokenPattern matches "[N: alt/alt/...]". The negated class also matches
// newlines, so a token may span lines.
var tokenPattern = regexp.MustCompile(`\[(\d+):([^\]]*)\]`)

// token is one match of tokenPattern.
type token struct {
	raw      string
	number   string
	body     string
	location string
}

// Transform resolves every token in text using assignment and ordering.
func Transform(text string, assignment genderlist.Assignment, ordering genderlist.Ordering) (string, *diagnostic.Diagnostics) {
	t := &Transformer{Assignment: assignment, Ordering: ordering}
	return t.Body("", text)
}

// Body resolves every token in text. source names the text in diagnostics
// and may be empty.
func (t *Transformer) Body(source, text string) (string, *diagnostic.Diagnostics) {
	diags := diagnostic.New(t.Notify)

	matches := tokenPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, diags
	}

	var b strings.Builder

	b.Grow(len(text))

	last, line := 0, 1

	for _, m := range matches {
		line += strings.Count(text[last:m[0]], "\n")
		b.WriteString(text[last:m[0]])

		tok := token{
			raw:      text[m[0]:m[1]],
			number:   text[m[2]:m[3]],
			body:     text[m[4]:m[5]],
			location: location(source, line),
		}
		b.WriteString(t.resolve(tok, diags))

		line += strings.Count(tok.raw, "\n")
		last = m[1]
	}

	b.WriteString(text[last:])

	return b.String(), diags
}

// resolve returns the replacement for one token.
func (t *Transformer) resolve(tok token, diags *diagnostic.Diagnostics) string {
	number, err := strconv.Atoi(tok.number)
	if err != nil {
		diags.AddWarning(diagnostic.KindUnresolvedCharacter,
			fmt.Sprintf("character number %s is out of range; the phrase %q will not be processed", tok.number, tok.raw),
			tok.location, diagnostic.NoCharacter)

		return tok.raw
	}

	character, ok := t.Assignment[number]
	if !ok {
		diags.AddWarning(diagnostic.KindUnresolvedCharacter,
			fmt.Sprintf("unable to find character number %d in the gender list; the phrase %q will not be processed", number, tok.raw),
			tok.location, number)

		return tok.raw
	}

	ordering, ok := t.Ordering[number]
	if !ok {
		diags.AddWarning(diagnostic.KindUnresolvedCharacter,
			fmt.Sprintf("character number %d has no gender ordering; the phrase %q will not be processed", number, tok.raw),
			tok.location, number)

		return tok.raw
	}

	alternatives := common.SplitTrim(tok.body, alternativeSep)

	for _, alt := range alternatives {
		if strings.Contains(alt, "[") {
			diags.AddWarning(diagnostic.KindNestedToken,
				fmt.Sprintf("the phrase %q contains %q; nested markup is not supported", tok.raw, "["),
				tok.location, number)

			break
		}
	}

	if len(alternatives) != len(ordering) {
		diags.AddWarning(diagnostic.KindOrderingMismatch,
			fmt.Sprintf("the phrase %q has %d alternatives but character %d has %d genders in its ordering",
				tok.raw, len(alternatives), number, len(ordering)),
			tok.location, number)
	}

	checkPlausibility(tok.raw, alternatives, ordering, tok.location, number, diags)

	idx, ok := SelectIndex(ordering, character.Gender)
	if !ok {
		diags.AddWarning(diagnostic.KindSelectionMissing,
			fmt.Sprintf("gender %s of character %d is not in its ordering; the phrase %q is removed",
				character.Gender, number, tok.raw),
			tok.location, number)

		return ""
	}

	if idx >= len(alternatives) {
		diags.AddWarning(diagnostic.KindSelectionMissing,
			fmt.Sprintf("the phrase %q has no alternative at position %d for gender %s; the phrase is removed",
				tok.raw, idx+1, character.Gender),
			tok.location, number)

		return ""
	}

	return alternatives[idx]
}

// checkPlausibility warns about alternatives whose pronouns belong to a
// different gender than the ordering position they sit in.
func checkPlausibility(
	phrase string,
	alternatives []string,
	ordering []pronoun.Gender,
	loc string,
	number int,
	diags *diagnostic.Diagnostics,
) {
	for i, alt := range alternatives {
		if i >= len(ordering) || !ordering[i].Known() {
			continue
		}

		declared := ordering[i]

		got, ok := pronoun.Attribute(alt)
		if !ok || got == declared {
			continue
		}

		diags.AddWarning(diagnostic.KindPlausibility,
			fmt.Sprintf("in the phrase %q, the term %q was given as a %s term but is more commonly considered %s; "+
				"you may wish to check if this is a typo", phrase, alt, declared, got),
			loc, number)
	}
}
