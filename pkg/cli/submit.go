package cli

import (
	urfave "github.com/urfave/cli/v2"

	"github.com/varitext/varitext/classifier"
	"github.com/varitext/varitext/dataset"
	"github.com/varitext/varitext/submission"
)

var submitCmd = &urfave.Command{
	Name:   "submit",
	Usage:  "Fit on the training rows and write test-row probabilities as a submission CSV",
	Action: cmdSubmit,
}

func cmdSubmit(c *urfave.Context) error {
	cfg := getConfig(c)

	X, y, vec, err := trainingMatrices(cfg)
	if err != nil {
		return err
	}

	clf := classifier.NewMultinomialNB(classifier.WithAlpha(cfg.Alpha))
	if err := clf.Fit(X, y); err != nil {
		return err
	}

	testRecords, err := loadRecords(cfg, cfg.TestIndexFile)
	if err != nil {
		return err
	}
	testX, err := vec.Transform(dataset.Texts(testRecords))
	if err != nil {
		return err
	}

	probs, err := clf.PredictProba(testX)
	if err != nil {
		return err
	}

	ids := make([]int, len(testRecords))
	for i, rec := range testRecords {
		ids[i] = rec.ID
	}
	return submission.WriteFile(cfg.SubmissionFile, probs, ids)
}
