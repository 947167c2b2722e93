package cli

import (
	"log/slog"

	urfave "github.com/urfave/cli/v2"

	"github.com/varitext/varitext/dataset"
	"github.com/varitext/varitext/pkg/log"
)

var splitCmd = &urfave.Command{
	Name:    "split",
	Aliases: []string{"s"},
	Usage:   "Write a stratified train/test row split to the index files",
	Action:  cmdSplit,
}

func cmdSplit(c *urfave.Context) error {
	cfg := getConfig(c)

	variants, err := dataset.LoadVariants(cfg.VariantsFile)
	if err != nil {
		return err
	}

	trainIdx, testIdx, err := dataset.SplitIndices(variants, cfg.TestSize, cfg.Seed)
	if err != nil {
		return err
	}

	if err := dataset.SaveIndex(cfg.TrainIndexFile, trainIdx); err != nil {
		return err
	}
	if err := dataset.SaveIndex(cfg.TestIndexFile, testIdx); err != nil {
		return err
	}

	slog.Info("split written",
		log.OperationKey, "split",
		"train_rows", len(trainIdx),
		"test_rows", len(testIdx),
		log.FileKey, cfg.TrainIndexFile,
	)
	return nil
}
