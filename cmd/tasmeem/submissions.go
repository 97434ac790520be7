package main

import (
	"context"
	"fmt"

	"tasmeem/internal/admin"
	"tasmeem/internal/db"
	"tasmeem/internal/store"
	"tasmeem/pkg/types"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var submissionsCommand = &cli.Command{
	Name:  "submissions",
	Usage: "Print submissions, newest first",
	Subcommands: []*cli.Command{
		setStatusCommand,
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "status",
			Usage: "Only print submissions with this status",
		},
		&cli.IntFlag{
			Name:    "limit",
			Aliases: []string{"n"},
			Usage:   "Maximum number of submissions to print, 0 for all",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	},
	Action: func(c *cli.Context) error {
		logger := newLogger()

		config, err := loadConfig(logger)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		status := types.SubmissionStatus(c.String("status"))
		if status != "" && !status.Valid() {
			return fmt.Errorf("unknown status %q", status)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, config)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		submissions, err := store.NewSubmissionRepository(pool).Submissions(ctx)
		if err != nil {
			return err
		}

		printer := pp.New()
		printer.SetColoringEnabled(!c.Bool("no-color"))

		printed := 0
		for _, sub := range submissions {
			if status != "" && sub.Status != status {
				continue
			}
			if limit := c.Int("limit"); limit > 0 && printed >= limit {
				break
			}
			printer.Println(sub)
			printed++
		}

		logger.WithField("count", printed).Info("submissions printed")
		return nil
	},
}

var setStatusCommand = &cli.Command{
	Name:      "set-status",
	Usage:     "Change one submission's status and print it",
	ArgsUsage: "<id> <status>",
	Action: func(c *cli.Context) error {
		logger := newLogger()

		if c.NArg() != 2 {
			return cli.Exit("usage: submissions set-status <id> <status>", 1)
		}
		id := c.Args().Get(0)
		status := types.SubmissionStatus(c.Args().Get(1))

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

		console := admin.NewConsole(store.NewSubmissionRepository(pool))
		if err := console.UpdateStatus(ctx, id, status); err != nil {
			return err
		}

		detail, ok := console.Detail(id)
		if !ok {
			return fmt.Errorf("submission %s not found after update", id)
		}
		pp.Println(detail.Submission)

		logger.WithFields(logrus.Fields{"submission_id": id, "status": status}).Info("submission status updated")
		return nil
	},
}
