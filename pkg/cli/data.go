package cli

import (
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/varitext/varitext/dataset"
	"github.com/varitext/varitext/pkg/log"
	"github.com/varitext/varitext/preprocessing"
)

// loadRecords loads both tables, selects the rows of the given index
// file, and joins them on ID.
func loadRecords(cfg *Config, indexPath string) ([]dataset.Record, error) {
	docs, variants, err := dataset.LoadSubset(cfg.VariantsFile, cfg.TextFile, indexPath)
	if err != nil {
		return nil, err
	}
	records := dataset.Join(variants, docs)
	slog.Debug("records loaded",
		log.FileKey, indexPath,
		log.RowsKey, len(records),
	)
	return records, nil
}

// newVectorizer builds the vectorizer from the configured vocabulary
// file. Without one, the vocabulary is learned from the training texts.
func newVectorizer(cfg *Config) (*preprocessing.CountVectorizer, error) {
	if cfg.VocabularyFile == "" {
		return preprocessing.NewCountVectorizer(nil)
	}
	vocab, err := preprocessing.LoadVocabulary(cfg.VocabularyFile)
	if err != nil {
		return nil, err
	}
	return preprocessing.NewCountVectorizer(vocab)
}

// trainingMatrices vectorizes the training rows. The returned vectorizer
// is fitted and reusable for the test rows.
func trainingMatrices(cfg *Config) (X, y *mat.Dense, vec *preprocessing.CountVectorizer, err error) {
	records, err := loadRecords(cfg, cfg.TrainIndexFile)
	if err != nil {
		return nil, nil, nil, err
	}

	vec, err = newVectorizer(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	texts := dataset.Texts(records)
	if cfg.VocabularyFile == "" {
		X, err = vec.FitTransform(texts)
	} else {
		X, err = vec.Transform(texts)
	}
	if err != nil {
		return nil, nil, nil, err
	}

	labels := dataset.Labels(records)
	y = mat.NewDense(len(labels), 1, nil)
	for i, c := range labels {
		y.Set(i, 0, float64(c))
	}
	return X, y, vec, nil
}
