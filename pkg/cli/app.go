// Package cli implements the varitext experiment driver.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	urfave "github.com/urfave/cli/v2"

	"github.com/varitext/varitext/pkg/log"
)

const appConfigKey = "app-config"

var (
	version = "v0.0.1-default"
	commit  = ""

	configFlag = &urfave.StringFlag{
		Name:  "config",
		Usage: "Path to the YAML experiment config (optional, defaults apply)",
	}

	debugFlag = &urfave.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	log.SetupLogger("info")

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", log.ErrAttr(err))
		os.Exit(1)
	}
}

func getConfig(c *urfave.Context) *Config {
	return c.App.Metadata[appConfigKey].(*Config)
}

func newApp() *urfave.App {
	return &urfave.App{
		Name:                 "varitext",
		Version:              fmt.Sprintf("%s (commit: %s)", version, commit),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "Text classification experiments over genetic variant annotations",
		Flags: []urfave.Flag{
			configFlag,
			debugFlag,
		},
		Commands: []*urfave.Command{
			splitCmd,
			scoreCmd,
			submitCmd,
			rocCmd,
			textCmd,
		},
		Before: func(c *urfave.Context) error {
			if c.Bool(debugFlag.Name) {
				log.SetupLogger("debug")
			}

			cfg, err := LoadConfig(c.String(configFlag.Name))
			if err != nil {
				return err
			}
			c.App.Metadata[appConfigKey] = cfg
			return nil
		},
	}
}
