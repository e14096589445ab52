package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gender-swap/internal/diagnostic"
	"gender-swap/internal/genderlist"
	"gender-swap/internal/sheet"
)

const castList = `Alice: 3: female/male: male
Sam: 7: neutral they/female/male: they
`

func newTransformer(t *testing.T) *sheet.Transformer {
	t.Helper()

	defs, _, err := genderlist.ParseText(castList)
	require.NoError(t, err)

	return sheet.New(defs, nil)
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o755))

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func sheetDir(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "sheets")
	writeFiles(t, dir, map[string]string{
		"3.Alice.Bob.txt":    "[3: She/He] waits by [3: her/his] door.",
		"7.Sam.Sam.Sam.rtf":  "{\\rtf1 [7: they/she/he] [7: are/is/is] late}",
		"99.Xena.Xander.txt": "[99: she/he]",
		"notes.doc":          "[3: she/he]",
		"notes.txt":          "[3: she/he]",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "4.sub.txt"), 0o755))

	return dir
}

func TestRun(t *testing.T) {
	t.Parallel()

	in := sheetDir(t)
	out := filepath.Join(t.TempDir(), "gendered", "run1")

	r, err := NewRunner(newTransformer(t), Options{
		InputDir:         in,
		OutputDir:        out,
		ProcessFileNames: true,
		Workers:          2,
	}, zap.NewNop())
	require.NoError(t, err)

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID.String())
	assert.Equal(t, 2, report.Processed())
	assert.Equal(t, 2, report.Skipped())

	require.Len(t, report.Results, 4)
	assert.Equal(t, filepath.Join(in, "3.Alice.Bob.txt"), report.Results[0].Source)
	assert.Equal(t, "3.Bob.txt", report.Results[0].Name)
	assert.Equal(t, filepath.Join(out, "3.Bob.txt"), report.Results[0].Output)
	assert.True(t, report.Results[2].Skipped, "99 is not defined")
	assert.True(t, report.Results[3].Skipped, "notes has no number")

	assert.Equal(t, "He waits by his door.", readFile(t, filepath.Join(out, "3.Bob.txt")))
	assert.Equal(t, "{\\rtf1 they are late}", readFile(t, filepath.Join(out, "7.Sam.rtf")))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRunKeepsFileNames(t *testing.T) {
	t.Parallel()

	in := sheetDir(t)
	out := filepath.Join(t.TempDir(), "out")

	r, err := NewRunner(newTransformer(t), Options{InputDir: in, OutputDir: out}, nil)
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "He waits by his door.", readFile(t, filepath.Join(out, "3.Alice.Bob.txt")))
	assert.NoFileExists(t, filepath.Join(out, "3.Bob.txt"))
}

func TestRunMergesDiagnostics(t *testing.T) {
	t.Parallel()

	in := filepath.Join(t.TempDir(), "in")
	writeFiles(t, in, map[string]string{
		"3.Alice.Bob.txt": "ok\n[9: a/b]\n[3: she/he/it]",
		"7.Sam.txt":       "[7: she/he/they]",
	})

	r, err := NewRunner(newTransformer(t), Options{
		InputDir:         in,
		OutputDir:        filepath.Join(t.TempDir(), "out"),
		ProcessFileNames: true,
	}, nil)
	require.NoError(t, err)

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Diagnostics.Count(diagnostic.KindUnresolvedCharacter))
	assert.Equal(t, 1, report.Diagnostics.Count(diagnostic.KindOrderingMismatch))
	assert.Equal(t, 1, report.Diagnostics.Count(diagnostic.KindNameFormat), "7.Sam.txt has too few sections")

	var locations []string
	for _, d := range report.Results[0].Diagnostics.All() {
		locations = append(locations, d.Location)
	}

	assert.ElementsMatch(t, []string{"3.Alice.Bob.txt:2", "3.Alice.Bob.txt:3"}, locations)
}

func TestRunNameCollision(t *testing.T) {
	t.Parallel()

	in := filepath.Join(t.TempDir(), "in")
	writeFiles(t, in, map[string]string{
		"3.Alice.Bob.txt": "first",
		"3.Carol.Bob.txt": "second",
	})
	out := filepath.Join(t.TempDir(), "out")

	r, err := NewRunner(newTransformer(t), Options{InputDir: in, OutputDir: out, ProcessFileNames: true}, nil)
	require.NoError(t, err)

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Results, 2)
	assert.False(t, report.Results[0].Skipped)
	assert.True(t, report.Results[1].Skipped)
	assert.Contains(t, report.Results[1].Reason, "3.Bob.txt")
	assert.Equal(t, "first", readFile(t, filepath.Join(out, "3.Bob.txt")))
}

func TestRunDryRun(t *testing.T) {
	t.Parallel()

	in := sheetDir(t)
	out := filepath.Join(t.TempDir(), "out")

	r, err := NewRunner(newTransformer(t), Options{InputDir: in, OutputDir: out, DryRun: true}, nil)
	require.NoError(t, err)

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Processed())
	assert.Empty(t, report.Results[0].Output)
	assert.NoDirExists(t, out)
}

func TestRunSameDirectory(t *testing.T) {
	t.Parallel()

	in := sheetDir(t)

	link := filepath.Join(t.TempDir(), "link")
	require.NoError(t, os.Symlink(in, link))

	for _, out := range []string{in, in + string(filepath.Separator), filepath.Join(in, "."), link} {
		r, err := NewRunner(newTransformer(t), Options{InputDir: in, OutputDir: out}, nil)
		require.NoError(t, err)

		_, err = r.Run(context.Background())
		require.ErrorIs(t, err, ErrSameDirectory, out)
	}

	assert.Equal(t, "[3: She/He] waits by [3: her/his] door.", readFile(t, filepath.Join(in, "3.Alice.Bob.txt")))
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := NewRunner(newTransformer(t), Options{
		InputDir:  sheetDir(t),
		OutputDir: filepath.Join(t.TempDir(), "out"),
	}, nil)
	require.NoError(t, err)

	_, err = r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunMissingInput(t *testing.T) {
	t.Parallel()

	r, err := NewRunner(newTransformer(t), Options{OutputDir: t.TempDir()}, nil)
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.ErrorIs(t, err, ErrNoInput)

	_, err = r.RunFiles(context.Background(), nil)
	require.ErrorIs(t, err, ErrNoInput)

	r, err = NewRunner(newTransformer(t), Options{
		InputDir:  filepath.Join(t.TempDir(), "missing"),
		OutputDir: filepath.Join(t.TempDir(), "out"),
	}, nil)
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunFiles(t *testing.T) {
	t.Parallel()

	in := sheetDir(t)
	extra := filepath.Join(t.TempDir(), "extra")
	writeFiles(t, extra, map[string]string{"intro.txt": "[7: They/She/He] arrive."})
	out := filepath.Join(t.TempDir(), "out")

	r, err := NewRunner(newTransformer(t), Options{OutputDir: out}, nil)
	require.NoError(t, err)

	report, err := r.RunFiles(context.Background(), []string{
		filepath.Join(extra, "intro.txt"),
		in,
		filepath.Join(in, "notes.txt"),
	})
	require.NoError(t, err)

	assert.Equal(t, 5, report.Processed(), "explicit files are not filtered by character number")
	assert.Equal(t, "They arrive.", readFile(t, filepath.Join(out, "intro.txt")))
	assert.Equal(t, "he", readFile(t, filepath.Join(out, "notes.txt")))
}

func TestRunFilesSameDirectory(t *testing.T) {
	t.Parallel()

	in := sheetDir(t)
	other := filepath.Join(t.TempDir(), "other")
	writeFiles(t, other, map[string]string{"3.Alice.Bob.txt": "[3: she/he]"})

	r, err := NewRunner(newTransformer(t), Options{OutputDir: in}, nil)
	require.NoError(t, err)

	_, err = r.RunFiles(context.Background(), []string{
		filepath.Join(other, "3.Alice.Bob.txt"),
		filepath.Join(in, "3.Alice.Bob.txt"),
	})
	require.ErrorIs(t, err, ErrSameDirectory)
}

func TestNewRunnerNoDefinitions(t *testing.T) {
	t.Parallel()

	_, err := NewRunner(sheet.New(genderlist.NewDefinitions(), nil), Options{}, nil)
	require.ErrorIs(t, err, ErrNoDefinitions)

	_, err = NewRunner(nil, Options{}, nil)
	require.ErrorIs(t, err, ErrNoDefinitions)
}

func TestPreview(t *testing.T) {
	t.Parallel()

	in := sheetDir(t)

	text, diags, err := Preview(newTransformer(t), filepath.Join(in, "3.Alice.Bob.txt"))
	require.NoError(t, err)
	assert.Equal(t, "He waits by his door.", text)
	assert.Equal(t, 0, diags.Len())

	_, _, err = Preview(newTransformer(t), filepath.Join(in, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
