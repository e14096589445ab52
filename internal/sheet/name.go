package sheet

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gender-swap/internal/diagnostic"
	"gender-swap/internal/genderlist"
)

const nameSep = "."

// TransformName genders a file name using assignment and ordering, accepting
// the given extensions (DefaultExtensions when empty).
func TransformName(
	fileName string,
	assignment genderlist.Assignment,
	ordering genderlist.Ordering,
	extensions []string,
) (string, *diagnostic.Diagnostics) {
	t := &Transformer{Assignment: assignment, Ordering: ordering, Extensions: NormalizeExtensions(extensions)}
	return t.Name(fileName)
}

// Name genders a base file name such as "3.Alice.Bob.txt". When the name does
// not follow the pattern it is returned unchanged with a diagnostic.
func (t *Transformer) Name(fileName string) (string, *diagnostic.Diagnostics) {
	diags := diagnostic.New(t.Notify)

	sections := strings.Split(fileName, nameSep)
	if len(sections) < 2 {
		diags.AddWarning(diagnostic.KindNameFormat,
			"unable to gender file name: expected sections separated by periods", fileName, diagnostic.NoCharacter)

		return fileName, diags
	}

	number, ok := parseNumber(sections[0])
	if !ok {
		diags.AddWarning(diagnostic.KindUnresolvedCharacter,
			fmt.Sprintf("unable to gender file name: %q is not a character number", sections[0]),
			fileName, diagnostic.NoCharacter)

		return fileName, diags
	}

	character, ok := t.Assignment[number]
	if !ok {
		diags.AddWarning(diagnostic.KindUnresolvedCharacter,
			fmt.Sprintf("unable to gender file name: character number %d is not in the gender list", number),
			fileName, number)

		return fileName, diags
	}

	ext := sections[len(sections)-1]
	if !slices.Contains(t.extensions(), ext) {
		diags.AddWarning(diagnostic.KindNameFormat,
			fmt.Sprintf("unable to gender file name: extension %q is not one of %s", ext, strings.Join(t.extensions(), ", ")),
			fileName, number)

		return fileName, diags
	}

	ordering, ok := t.Ordering[number]
	if !ok {
		diags.AddWarning(diagnostic.KindUnresolvedCharacter,
			fmt.Sprintf("unable to gender file name: character %d has no gender ordering", number),
			fileName, number)

		return fileName, diags
	}

	if len(sections) < len(ordering)+2 {
		diags.AddWarning(diagnostic.KindNameFormat,
			fmt.Sprintf("unable to gender file name: expected at least %d sections separated by periods, got %d",
				len(ordering)+2, len(sections)),
			fileName, number)

		return fileName, diags
	}

	idx, ok := SelectIndex(ordering, character.Gender)
	if !ok {
		diags.AddWarning(diagnostic.KindSelectionMissing,
			fmt.Sprintf("unable to gender file name: gender %s of character %d is not in its ordering", character.Gender, number),
			fileName, number)

		return fileName, diags
	}

	parts := make([]string, 0, len(sections)-len(ordering)+1)
	parts = append(parts, sections[0], sections[1+idx])
	parts = append(parts, sections[len(ordering)+1:]...)

	return strings.Join(parts, nameSep), diags
}

// parseNumber accepts ASCII digits only, so "+3" and "-3" are not numbers.
func parseNumber(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return n, true
}

// Number returns the character number fileName starts with, when that
// character is defined. "3.Alice.Bob.txt" yields 3 if character 3 exists.
func (t *Transformer) Number(fileName string) (int, bool) {
	head, _, _ := strings.Cut(fileName, nameSep)

	n, ok := parseNumber(head)
	if !ok {
		return 0, false
	}

	if _, ok := t.Assignment[n]; !ok {
		return 0, false
	}

	return n, true
}
