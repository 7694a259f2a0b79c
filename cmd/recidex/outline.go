package main

import (
	"context"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/recidex/recidex/pkg/log"
	"github.com/recidex/recidex/pkg/otelhelper"
	"github.com/recidex/recidex/pkg/outline"
	"github.com/recidex/recidex/pkg/registry"
)

// NewOutlineCommand builds the outline subcommand. It constructs the
// sample recipe and prints its indexed outline to stdout.
func NewOutlineCommand() *cli.Command {
	logger := log.WithModule("outline-cmd")

	return &cli.Command{
		Name:  "outline",
		Usage: "Build the sample recipe and print its indexed outline",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "tracing",
				Usage:   "Export outline traces over OTLP",
				Sources: cli.EnvVars("RECIDEX_TRACING"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			if command.Bool("tracing") {
				if _, err := otelhelper.NewTracer(ctx, "recidex"); err != nil {
					logger.ErrorContext(ctx, "Failed to initialize tracing", "error", err)

					return err
				}
			}

			reg := registry.NewRegistry(logger)
			reg.RegisterBuiltinKinds()

			recipe, err := buildExampleRecipe(reg)
			if err != nil {
				logger.ErrorContext(ctx, "Failed to build sample recipe", "error", err)

				return err
			}

			return outline.NewOutliner().Outline(ctx, recipe, os.Stdout)
		},
	}
}
