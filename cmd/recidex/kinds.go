package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/recidex/recidex/pkg/log"
	"github.com/recidex/recidex/pkg/registry"
)

// NewKindsCommand builds the kinds subcommand, listing the registered
// component kinds with their descriptions.
func NewKindsCommand() *cli.Command {
	logger := log.WithModule("kinds-cmd")

	return &cli.Command{
		Name:  "kinds",
		Usage: "List the registered trigger and action kinds",
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			reg := registry.NewRegistry(logger)
			reg.RegisterBuiltinKinds()

			for _, kind := range reg.Kinds() {
				_, err := fmt.Fprintf(os.Stdout, "%s/%s\t%s\t%s\n",
					kind.Category, kind.Type, kind.Name, kind.Description)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}
