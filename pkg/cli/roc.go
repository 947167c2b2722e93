package cli

import (
	urfave "github.com/urfave/cli/v2"

	"github.com/varitext/varitext/classifier"
	"github.com/varitext/varitext/dataset"
	"github.com/varitext/varitext/preprocessing"
	"github.com/varitext/varitext/rocplot"
)

var rocCmd = &urfave.Command{
	Name:   "roc",
	Usage:  "Fit on the training rows and plot multiclass ROC curves for the held-out rows",
	Action: cmdROC,
}

func cmdROC(c *urfave.Context) error {
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

	binarizer := preprocessing.NewLabelBinarizer()
	if err := binarizer.Fit(clf.Classes()); err != nil {
		return err
	}
	oneHot, err := binarizer.Transform(dataset.Labels(testRecords))
	if err != nil {
		return err
	}

	curves, err := rocplot.Compute(oneHot, probs, clf.Classes())
	if err != nil {
		return err
	}
	return curves.Save(cfg.ROCFile)
}
