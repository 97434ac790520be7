package main

import (
	"context"
	"fmt"

	"tasmeem/internal/db"

	"github.com/urfave/cli/v2"
)

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Create the submissions and admin_users tables if missing",
	Action: func(c *cli.Context) error {
		logger := newLogger()

		config, err := loadConfig(logger)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, config)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		if err := db.Migrate(ctx, pool); err != nil {
			return err
		}

		logger.WithField("schema", db.Schema).Info("schema is up to date")
		return nil
	},
}
