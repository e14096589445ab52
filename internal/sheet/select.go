package sheet

import "gender-swap/internal/pronoun"

// SelectIndex returns the ordering position used for gender.
//
// Positions are scanned in ascending order and the last match is kept, so
// when an ordering lists the same gender twice the later alternative is the
// one used. An unresolved gender never matches.
func SelectIndex(ordering []pronoun.Gender, gender pronoun.Gender) (int, bool) {
	if gender == pronoun.Unresolved {
		return -1, false
	}

	found := -1

	for i, g := range ordering {
		if g == gender {
			found = i
		}
	}

	return found, found >= 0
}
