package cli

import (
	"fmt"

	urfave "github.com/urfave/cli/v2"

	"github.com/varitext/varitext/dataset"
)

var (
	classFlag = &urfave.IntFlag{
		Name:     "class",
		Usage:    "Class label to collect text for",
		Required: true,
	}

	saveFlag = &urfave.StringFlag{
		Name:  "save",
		Usage: "Write the text to this file instead of stdout",
	}

	textCmd = &urfave.Command{
		Name:   "text",
		Usage:  "Dump the distinct text of all rows labeled with one class",
		Action: cmdText,
		Flags: []urfave.Flag{
			classFlag,
			saveFlag,
		},
	}
)

func cmdText(c *urfave.Context) error {
	cfg := getConfig(c)

	variants, err := dataset.LoadVariants(cfg.VariantsFile)
	if err != nil {
		return err
	}
	docs, err := dataset.LoadText(cfg.TextFile)
	if err != nil {
		return err
	}

	opts := []dataset.UniqueTextOption{dataset.WithReport()}
	if path := c.String(saveFlag.Name); path != "" {
		opts = append(opts, dataset.WithSaveTo(path))
	}

	text, err := dataset.UniqueClassText(variants, docs, c.Int(classFlag.Name), opts...)
	if err != nil {
		return err
	}
	if c.String(saveFlag.Name) == "" {
		fmt.Println(text)
	}
	return nil
}
