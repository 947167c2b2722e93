package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "training_variants", cfg.VariantsFile)
	assert.Equal(t, "training_text", cfg.TextFile)
	assert.Equal(t, 5, cfg.Folds)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 0.2, cfg.TestSize)
	assert.Equal(t, 1.0, cfg.Alpha)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
variants_file: data/variants.csv
text_file: data/text.txt
folds: 8
alpha: 0.5
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "data/variants.csv", cfg.VariantsFile)
	assert.Equal(t, "data/text.txt", cfg.TextFile)
	assert.Equal(t, 8, cfg.Folds)
	assert.Equal(t, 0.5, cfg.Alpha)

	// Fields not in the file keep their defaults.
	assert.Equal(t, "submission.csv", cfg.SubmissionFile)
	assert.Equal(t, 0.2, cfg.TestSize)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"too few folds", "folds: 1"},
		{"test size too large", "test_size: 1.5"},
		{"negative alpha", "alpha: -0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
