package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/ibancheck/cmd/app/commands"
	"github.com/allisson/ibancheck/internal/app"
	"github.com/allisson/ibancheck/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Run database migrations for the registry table",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
			},
		},
		{
			Name:  "seed-registry",
			Usage: "Load country specs into the database registry table",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "file",
					Usage: "JSON registry file (defaults to the embedded registry)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				registryUseCase, err := container.RegistryUseCase()
				if err != nil {
					return err
				}

				return commands.RunSeedRegistry(
					ctx,
					registryUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("file"),
					cmd.String("format"),
				)
			},
		},
	}
}
