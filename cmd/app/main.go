package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ShilohAlleyne/decoy/internal"
	"github.com/ShilohAlleyne/decoy/internal/apperr"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func action(mode string) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		configPath := cmd.String("config")
		cfg := internal.LoadConfig(configPath)

		opts := []internal.Option{
			internal.WithConfig(cfg),
			internal.WithConfigPath(configPath),
		}

		return internal.Run(ctx, mode, opts...)
	}
}

func main() {
	cmd := &cli.Command{
		Name:  "decoy",
		Usage: "Plain-text note archive with denote-style filenames, keyword search, and date search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "~/.decoy/config.yaml",
				Value:       internal.DefaultConfigPath(),
				Sources:     cli.EnvVars("DECOY_CONFIG_FILE"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return fmt.Errorf("%w: expected one of new, find, date, rename, config", apperr.ErrUnknownMode)
		},
		Commands: []*cli.Command{
			{
				Name:   internal.ModeNew,
				Usage:  "Create a new note and open it in the editor",
				Action: action(internal.ModeNew),
			},
			{
				Name:   internal.ModeFind,
				Usage:  "Find a note by keywords and open it",
				Action: action(internal.ModeFind),
			},
			{
				Name:   internal.ModeDate,
				Usage:  "Find a note by creation date and open it",
				Action: action(internal.ModeDate),
			},
			{
				Name:   internal.ModeRename,
				Usage:  "Rename an existing file to the naming convention",
				Action: action(internal.ModeRename),
			},
			{
				Name:   internal.ModeConfig,
				Usage:  "Open the config file, generating a default one if needed",
				Action: action(internal.ModeConfig),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		// Abandoning a prompt is a normal exit, not an error.
		if errors.Is(err, apperr.ErrAborted) {
			return
		}
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
