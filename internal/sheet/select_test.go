package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gender-swap/internal/pronoun"
)

func TestSelectIndex(t *testing.T) {
	t.Parallel()

	f, m, they := pronoun.Female, pronoun.Male, pronoun.NeutralThey

	tests := []struct {
		name     string
		ordering []pronoun.Gender
		gender   pronoun.Gender
		index    int
		ok       bool
	}{
		{"first", []pronoun.Gender{f, m}, f, 0, true},
		{"second", []pronoun.Gender{f, m}, m, 1, true},
		{"three options", []pronoun.Gender{they, f, m}, they, 0, true},
		{"duplicate keeps last", []pronoun.Gender{f, m, f}, f, 2, true},
		{"duplicate adjacent", []pronoun.Gender{m, m}, m, 1, true},
		{"missing", []pronoun.Gender{f, m}, they, -1, false},
		{"empty ordering", nil, f, -1, false},
		{"unresolved never matches", []pronoun.Gender{pronoun.Unresolved, f}, pronoun.Unresolved, -1, false},
		{"unknown label matches itself", []pronoun.Gender{"femal", m}, "femal", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			idx, ok := SelectIndex(tt.ordering, tt.gender)
			assert.Equal(t, tt.index, idx)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
