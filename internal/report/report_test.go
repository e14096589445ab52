package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gender-swap/internal/batch"
	"gender-swap/internal/diagnostic"
	"gender-swap/internal/genderlist"
)

func TestDefinitions(t *testing.T) {
	t.Parallel()

	defs, _, err := genderlist.ParseText("Sam: 7: neutral they/female/male: they\nAlice: 3: female/male: male\nKit: 12: female/male: robot\n")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf).Definitions(defs))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, []string{"#", "Name", "Gender", "Ordering"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"3", "Alice", "male", "female/male"}, strings.Fields(lines[1]))
	assert.Contains(t, lines[2], "neutral they/female/male")
	assert.Equal(t, []string{"12", "Kit", "unresolved", "female/male"}, strings.Fields(lines[3]))

	// Columns line up.
	assert.Equal(t, strings.Index(lines[0], "Ordering"), strings.Index(lines[1], "female/male"))
}

func TestDefinitionsEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, New(&buf).Definitions(genderlist.NewDefinitions()))
	assert.Equal(t, "no characters defined\n", buf.String())
}

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	diags := diagnostic.New(nil)
	diags.AddInfo(diagnostic.KindSelectionMissing, "gender is not in the ordering", "line 4", 12)
	diags.AddWarning(diagnostic.KindUnresolvedCharacter, "no character 9", "3.Alice.Bob.txt:2", 9)
	diags.AddError(diagnostic.KindMalformedLine, "expected 4 fields", "line 1", diagnostic.NoCharacter)

	var buf bytes.Buffer
	require.NoError(t, New(&buf).Diagnostics(diags))

	out := buf.String()
	assert.Less(t, strings.Index(out, "errors (1)"), strings.Index(out, "warnings (1)"))
	assert.Less(t, strings.Index(out, "warnings (1)"), strings.Index(out, "notes (1)"))

	for _, d := range diags.All() {
		assert.Contains(t, out, "  "+d.String()+"\n")
	}
}

func TestDiagnosticsEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, New(&buf).Diagnostics(nil))
	assert.Equal(t, "no problems found\n", buf.String())
}

func TestSummary(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	r := &batch.Report{
		RunID:   id,
		Elapsed: 1500 * time.Microsecond,
		Results: []batch.Result{
			{Source: "in/3.Alice.Bob.txt", Name: "3.Bob.txt", Output: "out/3.Bob.txt"},
			{Source: "in/notes.txt", Skipped: true, Reason: "name does not start with a defined character number"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, New(&buf).Summary(r))

	out := buf.String()
	assert.Contains(t, out, "processed 1, skipped 1 in 2ms")
	assert.Contains(t, out, id.String())
	assert.Contains(t, out, "in/3.Alice.Bob.txt -> out/3.Bob.txt")
	assert.Contains(t, out, "skipped in/notes.txt: name does not start")
}
