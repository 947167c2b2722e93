package cli

import (
	"fmt"
	"log/slog"

	urfave "github.com/urfave/cli/v2"

	"github.com/varitext/varitext/classifier"
	"github.com/varitext/varitext/modelselection"
	"github.com/varitext/varitext/pkg/log"
)

var scoreCmd = &urfave.Command{
	Name:    "score",
	Aliases: []string{"cv"},
	Usage:   "Cross-validate the classifier on the training rows and report mean log-loss",
	Action:  cmdScore,
}

func cmdScore(c *urfave.Context) error {
	cfg := getConfig(c)

	X, y, _, err := trainingMatrices(cfg)
	if err != nil {
		return err
	}

	clf := classifier.NewMultinomialNB(classifier.WithAlpha(cfg.Alpha))
	splitter := modelselection.NewKFold(cfg.Folds, true, cfg.Seed)

	result, err := modelselection.CrossValidate(clf, X, y, splitter)
	if err != nil {
		return err
	}

	slog.Info("cross-validation done",
		log.OperationKey, "score",
		log.FoldsKey, cfg.Folds,
		log.ScoreKey, result.Mean(),
		"score_std", result.Std(),
	)
	fmt.Printf("log-loss: %.6f (+/- %.6f) over %d folds\n", result.Mean(), result.Std(), cfg.Folds)
	return nil
}
