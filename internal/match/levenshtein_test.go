package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"female", "female", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},    // substitution
		{"a", "ab", 1},   // insertion
		{"ab", "a", 1},   // deletion
		{"abc", "ab", 1}, // deletion
		{"ab", "abc", 1}, // insertion

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Case-sensitive
		{"Male", "male", 1},
		{"FEMALE", "female", 6},

		// Gender label typos
		{"femal", "female", 1},
		{"neutral-they", "neutral they", 1},
		{"nuetral ze", "neutral ze", 2},

		// Multi-byte runes count once
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			// Verify symmetry
			resultReverse := Levenshtein(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, (%q, %q) = %d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"hello", "hello", 1.0},
		{"abc", "xyz", 0.0},
		{"kitten", "sitting", 1.0 - 3.0/7.0},
		{"abc", "ab", 1.0 - 1.0/3.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.InDelta(t, tt.expected, LevenshteinNormalized(tt.a, tt.b), 0.001)
		})
	}
}

func TestClosest(t *testing.T) {
	labels := []string{"female", "male", "neutral they", "neutral ze"}

	tests := []struct {
		name     string
		word     string
		maxDist  int
		expected []string
	}{
		{"single typo", "femal", 2, []string{"female"}},
		{"exact first", "male", 2, []string{"male", "female"}},
		{"hyphenated", "neutral-ze", 2, []string{"neutral ze"}},
		{"nothing close", "robot", 2, []string{}},
		{"zero distance only", "male", 0, []string{"male"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Closest(tt.word, labels, tt.maxDist))
		})
	}
}

func TestClosestRanksEqualDistanceBySimilarity(t *testing.T) {
	// "ale" is one edit from both; "male" shares more of its length.
	assert.Equal(t, []string{"male", "al"}, Closest("ale", []string{"al", "male"}, 1))

	// Same distance and same length keep input order.
	assert.Equal(t, []string{"he", "me"}, Closest("xe", []string{"he", "me"}, 1))
}

func BenchmarkLevenshtein(b *testing.B) {
	a := "neutral they"
	bStr := "nuetral thye"
	for i := 0; i < b.N; i++ {
		Levenshtein(a, bStr)
	}
}
