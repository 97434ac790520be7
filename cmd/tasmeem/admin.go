package main

import (
	"context"
	"fmt"

	"tasmeem/internal/bootstrap"
	"tasmeem/internal/db"
	"tasmeem/internal/store"

	"github.com/urfave/cli/v2"
)

var createAdminCommand = &cli.Command{
	Name:  "create-admin",
	Usage: "Create the first admin account",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "email",
			Usage:    "Admin email address",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "password",
			Usage:   "Admin password",
			EnvVars: []string{"ADMIN_PASSWORD"},
		},
	},
	Action: func(c *cli.Context) error {
		logger := newLogger()

		config, err := loadConfig(logger)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		awsConfig, err := loadAWSConfig(ctx)
		if err != nil {
			return err
		}

		pool, err := db.Connect(ctx, config)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		cognito, err := newCognito(ctx, awsConfig, config.CognitoUserPoolID, config.CognitoClientID, config.CognitoIssuerURL)
		if err != nil {
			return err
		}

		setup := bootstrap.New(logger, store.NewAdminUserRepository(pool), cognito)

		// Only the unauthenticated path is offered here; later admins are
		// added by an existing admin through /setup-admin.
		created, err := setup.CreateAdmin(ctx, "", func() (bootstrap.Credentials, error) {
			return bootstrap.Credentials{
				Email:    c.String("email"),
				Password: c.String("password"),
			}, nil
		})
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		fmt.Printf("created admin %s (user %s)\n", created.Email, created.UserID)
		return nil
	},
}
