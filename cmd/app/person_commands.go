package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/persons/cmd/app/commands"
	"github.com/allisson/persons/internal/app"
	"github.com/allisson/persons/internal/config"
)

func getPersonCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "count-persons",
			Usage: "Print the number of registered persons",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				// stdout carries the count, which may be piped as JSON
				container.SetLogWriter(os.Stderr)
				defer func() { _ = container.Shutdown(ctx) }()

				personUseCase, err := container.PersonUseCase()
				if err != nil {
					return err
				}

				return commands.RunCountPersons(
					ctx,
					personUseCase,
					container.Logger(),
					os.Stdout,
					cmd.String("format"),
				)
			},
		},
	}
}
