package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varitext/varitext/dataset"
	"github.com/varitext/varitext/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupLogger("error")
	os.Exit(m.Run())
}

// writeFixture lays out a small experiment directory: a variants table,
// a text table aligned with it, and a config pointing at both.
func writeFixture(t *testing.T) (dir string, cfgPath string) {
	t.Helper()
	dir = t.TempDir()

	var variants strings.Builder
	variants.WriteString("ID,Gene,Variation,Class\n")
	var text strings.Builder
	text.WriteString("ID,Text\n")
	for i := 0; i < 20; i++ {
		class := i%2 + 1
		word := "alpha"
		if class == 2 {
			word = "bravo"
		}
		fmt.Fprintf(&variants, "%d,GENE%d,V%d,%d\n", i, i, i, class)
		fmt.Fprintf(&text, "%d||%s mutation study %s\n", i, word, word)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "training_variants"), []byte(variants.String()), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "training_text"), []byte(text.String()), 0o600))

	cfg := fmt.Sprintf(`
variants_file: %s
text_file: %s
train_index_file: %s
test_index_file: %s
submission_file: %s
roc_file: %s
folds: 2
`,
		filepath.Join(dir, "training_variants"),
		filepath.Join(dir, "training_text"),
		filepath.Join(dir, "train_index"),
		filepath.Join(dir, "test_index"),
		filepath.Join(dir, "submission.csv"),
		filepath.Join(dir, "roc.png"),
	)
	cfgPath = filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))
	return dir, cfgPath
}

func run(t *testing.T, cfgPath string, args ...string) error {
	t.Helper()
	app := newApp()
	return app.Run(append([]string{"varitext", "--config", cfgPath}, args...))
}

func TestSplitCommand(t *testing.T) {
	dir, cfgPath := writeFixture(t)

	require.NoError(t, run(t, cfgPath, "split"))

	trainIdx, err := dataset.LoadIndex(filepath.Join(dir, "train_index"))
	require.NoError(t, err)
	testIdx, err := dataset.LoadIndex(filepath.Join(dir, "test_index"))
	require.NoError(t, err)

	assert.Len(t, trainIdx, 16)
	assert.Len(t, testIdx, 4)

	seen := make(map[int]bool)
	for _, idx := range append(trainIdx, testIdx...) {
		assert.False(t, seen[idx], "row %d assigned twice", idx)
		seen[idx] = true
	}
}

func TestScoreCommand(t *testing.T) {
	_, cfgPath := writeFixture(t)

	require.NoError(t, run(t, cfgPath, "split"))
	require.NoError(t, run(t, cfgPath, "score"))
}

func TestSubmitCommand(t *testing.T) {
	dir, cfgPath := writeFixture(t)

	require.NoError(t, run(t, cfgPath, "split"))
	require.NoError(t, run(t, cfgPath, "submit"))

	data, err := os.ReadFile(filepath.Join(dir, "submission.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 5, "header plus one line per held-out row")
	assert.Equal(t, "ID,class1,class2", lines[0])
}

func TestRocCommand(t *testing.T) {
	dir, cfgPath := writeFixture(t)

	require.NoError(t, run(t, cfgPath, "split"))
	require.NoError(t, run(t, cfgPath, "roc"))

	info, err := os.Stat(filepath.Join(dir, "roc.png"))
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestTextCommand(t *testing.T) {
	dir, cfgPath := writeFixture(t)

	out := filepath.Join(dir, "class1.txt")
	require.NoError(t, run(t, cfgPath, "text", "--class", "1", "--save", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "alpha mutation study alpha")
}
