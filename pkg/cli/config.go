package cli

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/varitext/varitext/dataset"
	"github.com/varitext/varitext/pkg/errors"
)

// Config holds the experiment layout: where the tables live, where the
// derived artifacts go, and the modeling knobs.
type Config struct {
	VariantsFile   string  `yaml:"variants_file"`
	TextFile       string  `yaml:"text_file"`
	TrainIndexFile string  `yaml:"train_index_file"`
	TestIndexFile  string  `yaml:"test_index_file"`
	VocabularyFile string  `yaml:"vocabulary_file"`
	SubmissionFile string  `yaml:"submission_file"`
	ROCFile        string  `yaml:"roc_file"`
	Folds          int     `yaml:"folds"`
	Seed           uint64  `yaml:"seed"`
	TestSize       float64 `yaml:"test_size"`
	Alpha          float64 `yaml:"alpha"`
}

func defaultConfig() *Config {
	return &Config{
		VariantsFile:   "training_variants",
		TextFile:       "training_text",
		TrainIndexFile: "train_index",
		TestIndexFile:  "test_index",
		SubmissionFile: "submission.csv",
		ROCFile:        "roc.png",
		Folds:          5,
		Seed:           dataset.DefaultSeed,
		TestSize:       dataset.DefaultTestSize,
		Alpha:          1.0,
	}
}

// LoadConfig reads the YAML experiment config from path. An empty path
// yields the defaults; fields missing from the file keep their default
// values.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.Folds < 2 {
		return errors.NewValidationError("folds", "must be at least 2", c.Folds)
	}
	if c.TestSize <= 0 || c.TestSize >= 1 {
		return errors.NewValidationError("test_size", "must be in (0, 1)", c.TestSize)
	}
	if c.Alpha < 0 {
		return errors.NewValidationError("alpha", "must be non-negative", c.Alpha)
	}
	return nil
}
