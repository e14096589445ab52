package pronoun

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gender-swap/internal/match"
)

// Gender identifies a gender option. Known values are the package constants;
// any other value is a label read verbatim from a gender list.
type Gender string

const (
	Female      Gender = "female"
	Male        Gender = "male"
	NeutralThey Gender = "neutral they"
	NeutralZe   Gender = "neutral ze"

	// Unresolved marks a selected gender that could not be classified.
	// It never matches an ordering position.
	Unresolved Gender = ""
)

// suggestDistance is the largest edit distance for which a known label is
// offered as a correction.
const suggestDistance = 2

var known = []Gender{Female, Male, NeutralThey, NeutralZe}

var words = map[Gender]map[string]struct{}{
	Female:      set("she", "her", "hers", "herself"),
	Male:        set("he", "him", "his", "himself"),
	NeutralThey: set("they", "them", "their", "theirs", "themself"),
	NeutralZe: set(
		"ze", "zhe",
		"zir", "zem", "hir", "mer", "zhim",
		"zes", "zer", "zher",
		"zirs", "hirs", "zers", "zhers",
		"zirself", "hirself", "zemself", "zhimself",
	),
}

func set(ws ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(ws))
	for _, w := range ws {
		m[w] = struct{}{}
	}

	return m
}

// All returns the known genders in declaration order.
func All() []Gender {
	return slices.Clone(known)
}

// Labels returns the labels of the known genders in declaration order.
func Labels() []string {
	out := make([]string, len(known))
	for i, g := range known {
		out[i] = string(g)
	}

	return out
}

// String returns the label, or "unresolved" for the unresolved marker.
func (g Gender) String() string {
	if g == Unresolved {
		return "unresolved"
	}

	return string(g)
}

// Known reports whether g is one of the fixed identifiers.
func (g Gender) Known() bool {
	return slices.Contains(known, g)
}

// Words returns the pronouns associated with g, sorted. Unknown genders have none.
func (g Gender) Words() []string {
	ws := make([]string, 0, len(words[g]))
	for w := range words[g] {
		ws = append(ws, w)
	}

	slices.Sort(ws)

	return ws
}

// HasWord reports whether word is one of g's pronouns. word must be lower case.
func (g Gender) HasWord(word string) bool {
	_, ok := words[g][word]
	return ok
}

// Parse matches label case-sensitively against the known identifiers.
func Parse(label string) (Gender, bool) {
	g := Gender(label)
	return g, g.Known()
}

// Classify maps free text such as "F", "Male" or "neutral (they)" to a gender.
// The text is trimmed and lower-cased, then the first matching rule wins:
// "female" or a leading "f", "male" or a leading "m", containing "they",
// containing "ze". Anything else returns Unresolved and false.
func Classify(text string) (Gender, bool) {
	t := cases.Lower(language.Und).String(strings.TrimSpace(text))

	switch {
	case t == "female" || strings.HasPrefix(t, "f"):
		return Female, true
	case t == "male" || strings.HasPrefix(t, "m"):
		return Male, true
	case strings.Contains(t, "they"):
		return NeutralThey, true
	case strings.Contains(t, "ze"):
		return NeutralZe, true
	default:
		return Unresolved, false
	}
}

// Suggest returns known labels close to label, nearest first.
// The comparison ignores case so "Female" suggests "female".
func Suggest(label string) []string {
	t := cases.Lower(language.Und).String(strings.TrimSpace(label))
	if t == "" {
		return nil
	}

	if g := Gender(t); g.Known() {
		return []string{t}
	}

	return match.Closest(t, Labels(), suggestDistance)
}

// Attribute reports which gender a phrase's pronouns point to.
// It returns false when the phrase has no pronouns or its pronouns belong to
// more than one gender.
func Attribute(phrase string) (Gender, bool) {
	found := Unresolved

	for _, w := range match.Words(phrase) {
		owner, ok := owner(w)
		if !ok {
			continue
		}

		if found != Unresolved && found != owner {
			return Unresolved, false
		}

		found = owner
	}

	return found, found != Unresolved
}

func owner(word string) (Gender, bool) {
	for _, g := range known {
		if g.HasWord(word) {
			return g, true
		}
	}

	return Unresolved, false
}
