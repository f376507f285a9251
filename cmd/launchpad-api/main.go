package main

import (
	"context"
	"os"

	"github.com/launchpadhq/launchpad/pkg/aicopy"
	"github.com/launchpadhq/launchpad/pkg/cmd"
	"github.com/launchpadhq/launchpad/pkg/log"
	cli "github.com/urfave/cli/v3"
)

const defaultPort = 9091

func main() {
	logger := log.WithModule("api")

	command := &cli.Command{
		Name:                  "launchpad-api",
		Usage:                 "Create and manage campaign graphs and lead forms",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:     "database-url",
				Usage:    "Database connection URL for persistence (file://, redis://, postgres://)",
				Required: true,
				Sources:  cli.EnvVars("DATABASE_URL"),
			},
			&cli.StringFlag{
				Name:    "ai-endpoint",
				Usage:   "Base URL of the copy generation backend",
				Sources: cli.EnvVars("AI_ENDPOINT"),
			},
			&cli.StringFlag{
				Name:    "ai-api-key",
				Usage:   "API key for the copy generation backend",
				Sources: cli.EnvVars("AI_API_KEY"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger.InfoContext(ctx, "Initializing Launchpad API")

			persistence, err := cmd.NewPersistence(ctx, logger, command.String("database-url"))
			if err != nil {
				return err
			}

			defer func() {
				err := persistence.Close(ctx)
				if err != nil {
					logger.ErrorContext(ctx, "Failed to close persistence", "error", err)
				}
			}()

			aiClient := aicopy.NewClient(
				command.String("ai-endpoint"),
				command.String("ai-api-key"),
				logger,
			)

			api := NewAPI(
				logger,
				persistence,
				aiClient,
			)

			err = api.Start(command.Int("port"))
			if err != nil {
				logger.ErrorContext(ctx, "Failed to start API server", "error", err)
			}

			return nil
		},
	}

	err := command.Run(context.Background(), os.Args)
	if err != nil {
		panic(err)
	}
}
