package dataset

import (
	"log/slog"
	"os"
	"strings"

	"github.com/varitext/varitext/pkg/errors"
	"github.com/varitext/varitext/pkg/log"
)

// UniqueTextOption configures UniqueClassText.
type UniqueTextOption func(*uniqueTextConfig)

type uniqueTextConfig struct {
	savePath string
	report   bool
}

// WithSaveTo writes the extracted text to path in addition to returning it.
func WithSaveTo(path string) UniqueTextOption {
	return func(c *uniqueTextConfig) {
		c.savePath = path
	}
}

// WithReport logs the per-class entry and unique-text counts.
func WithReport() UniqueTextOption {
	return func(c *uniqueTextConfig) {
		c.report = true
	}
}

// UniqueClassText collects the text of every document whose ID carries the
// given class label in the variants table, removes duplicate texts keeping
// first-occurrence order, and joins them with newlines.
func UniqueClassText(variants []Variant, docs []Document, class int, opts ...UniqueTextOption) (string, error) {
	var cfg uniqueTextConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	classIDs := make(map[int]struct{})
	for _, v := range variants {
		if v.Class == class {
			classIDs[v.ID] = struct{}{}
		}
	}

	var matched int
	seen := make(map[string]struct{})
	var unique []string
	for _, d := range docs {
		if _, ok := classIDs[d.ID]; !ok {
			continue
		}
		matched++
		if _, dup := seen[d.Text]; dup {
			continue
		}
		seen[d.Text] = struct{}{}
		unique = append(unique, d.Text)
	}
	joined := strings.Join(unique, "\n")

	if cfg.report {
		slog.Info("unique class text extracted",
			log.OperationKey, "unique_text",
			log.ClassKey, class,
			log.RowsKey, matched,
			"unique_texts", len(unique),
		)
	}

	if cfg.savePath != "" {
		if err := os.WriteFile(cfg.savePath, []byte(joined), 0o644); err != nil {
			return "", errors.Wrapf(err, "saving unique text for class %d to %s", class, cfg.savePath)
		}
	}

	return joined, nil
}
