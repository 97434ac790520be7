package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "tasmeem",
		Usage: "Bilingual interior design intake site and admin console",
		Commands: []*cli.Command{
			serveCommand,
			migrateCommand,
			createAdminCommand,
			submissionsCommand,
			nanoidCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
