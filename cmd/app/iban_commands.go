package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/ibancheck/cmd/app/commands"
	"github.com/allisson/ibancheck/internal/app"
	"github.com/allisson/ibancheck/internal/config"
)

func getIbanCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "validate",
			Usage:     "Validate one or more IBANs",
			ArgsUsage: "IBAN [IBAN...]",
			Flags:     []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				ibanUseCase, err := container.IbanUseCase()
				if err != nil {
					return err
				}

				return commands.RunValidate(
					ctx,
					ibanUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.Args().Slice(),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "generate",
			Usage: "Compute the check digits for an account and print the IBAN",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "country",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Two letter country code (e.g. DE)",
				},
				&cli.StringFlag{
					Name:    "bban",
					Aliases: []string{"b"},
					Usage:   "Account body; shorter bodies are left padded with zeros",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				ibanUseCase, err := container.IbanUseCase()
				if err != nil {
					return err
				}

				return commands.RunGenerate(
					ctx,
					ibanUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("country"),
					cmd.String("bban"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "countries",
			Usage:     "List the registered countries, or show one",
			ArgsUsage: "[CODE]",
			Flags:     []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				ibanUseCase, err := container.IbanUseCase()
				if err != nil {
					return err
				}

				return commands.RunCountries(
					ctx,
					ibanUseCase,
					commands.DefaultIO().Writer,
					cmd.Args().First(),
					cmd.String("format"),
				)
			},
		},
	}
}
