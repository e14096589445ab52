package genderlist

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gender-swap/internal/diagnostic"
	"gender-swap/internal/pronoun"
)

func TestParseYAML(t *testing.T) {
	yaml := `
characters:
  - name: Alice
    number: 3
    ordering: [female, male]
    gender: male
  - name: Sam
    number: 7
    ordering: neutral they/female/male
    gender: they
`

	defs, diags, err := ParseYAML([]byte(yaml))
	require.NoError(t, err)
	assert.Equal(t, 0, diags.Len())

	lineDefs, _, err := Parse([]string{
		"Alice: 3: female/male: male",
		"Sam: 7: neutral they/female/male: they",
	})
	require.NoError(t, err)

	if diff := cmp.Diff(lineDefs, defs); diff != "" {
		t.Errorf("YAML and line formats disagree (-line +yaml):\n%s", diff)
	}
}

func TestParseYAMLDiagnosticsUseLines(t *testing.T) {
	yaml := `characters:
  - name: Alice
    number: 3
    ordering: [femal, male]
    gender: female
  - name: Bob
    number: two
    ordering: [female, male]
    gender: male
`

	defs, diags, err := Parser{Source: "cast.yaml"}.ParseYAML([]byte(yaml))
	require.Error(t, err)

	var mle *MalformedLineError
	require.True(t, errors.As(err, &mle))
	assert.Equal(t, "cast.yaml:6", mle.Location)

	assert.Equal(t, []int{3}, defs.Numbers())

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.KindUnknownGender, diags.Warnings[0].Kind)
	assert.Equal(t, "cast.yaml:2", diags.Warnings[0].Location)

	_, ordering, _ := defs.Lookup(3)
	assert.Equal(t, []pronoun.Gender{"femal", pronoun.Male}, ordering)
}

func TestParseYAMLInvalidDocument(t *testing.T) {
	defs, diags, err := ParseYAML([]byte("characters: [name: {"))
	require.Error(t, err)
	assert.Nil(t, defs)
	assert.Nil(t, diags)
	assert.Contains(t, err.Error(), "parsing gender list YAML")
}

func TestParseYAMLOrderingKind(t *testing.T) {
	_, _, err := ParseYAML([]byte("characters:\n  - name: A\n    number: 1\n    ordering: {a: b}\n    gender: f\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ordering must be a string or a list")
}
