package main

import (
	"fmt"
	"os"

	"github.com/arkade-os/ledger-assets/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Version will be set during build time
var Version string

func main() {
	app := cli.NewApp()
	app.Version = Version
	app.Name = "assetctl"
	app.Usage = "inspect ledger asset identifiers and values, and query a local mirror of assets"
	app.Flags = config.Flags
	app.Commands = append(
		app.Commands,
		&parseCommand,
		&valueCommand,
		&definitionCommand,
		&mirrorCommand,
		&showCommand,
		&listCommand,
	)
	app.Before = func(ctx *cli.Context) error {
		if err := loadConfigFile(ctx); err != nil {
			return err
		}
		log.SetLevel(log.Level(ctx.Int(config.LogLevel.Name)))
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println(fmt.Errorf("error: %v", err))
		os.Exit(1)
	}
}
