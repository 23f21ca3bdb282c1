package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/contentful-labs/contentful-generator/internal/codegen"
	"github.com/contentful-labs/contentful-generator/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:    "contentful-generator",
		Usage:   "Generate typed model classes from the content types of a Contentful space",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "warn",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)
			ctrl.Flags.LogLevel = level.String()
			ctrl.Logger = log.Logger

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Fetch content types and write one model per content type",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "space",
						Aliases: []string{"s"},
						Usage:   "space id",
					},
					&cli.StringFlag{
						Name:    "environment",
						Aliases: []string{"e"},
						Usage:   "space environment (default: master)",
					},
					&cli.StringFlag{
						Name:    "token",
						Aliases: []string{"t"},
						Usage:   "management API access token",
						Sources: cli.EnvVars("CONTENTFUL_MANAGEMENT_TOKEN"),
					},
					&cli.StringFlag{
						Name:    "package",
						Aliases: []string{"p"},
						Usage:   "package or namespace of the generated models",
					},
					&cli.StringFlag{
						Name:    "folder",
						Aliases: []string{"f"},
						Usage:   "destination root (default: .)",
					},
					&cli.StringFlag{
						Name:    "language",
						Aliases: []string{"l"},
						Usage:   fmt.Sprintf("target language (default: %s)", codegen.DefaultLanguage),
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "path to a contentful.json or contentful.yaml file",
					},
					&cli.BoolFlag{
						Name:  "no-input",
						Usage: "fail instead of prompting for missing options",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Generate(ctx, commands.GenerateOptions{
						Space:       c.String("space"),
						Environment: c.String("environment"),
						Token:       c.String("token"),
						Package:     c.String("package"),
						Folder:      c.String("folder"),
						Language:    c.String("language"),
						ConfigPath:  c.String("config"),
						NoInput:     c.Bool("no-input"),
					})
				},
			},
			{
				Name:  "languages",
				Usage: "List the supported target languages",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Languages(ctx)
				},
			},
		},
	}

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run contentful-generator")
	}
}
