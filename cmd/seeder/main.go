package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yigit/devcamper/internal/app/migrations"
	"github.com/yigit/devcamper/internal/config"
	"github.com/yigit/devcamper/internal/db"
	"github.com/yigit/devcamper/internal/pkg/logger"
	"github.com/yigit/devcamper/internal/seed"
)

const confFlagName = "conf"

func main() {
	app := &cli.App{
		Name:  "seeder",
		Usage: "load or remove the sample bootcamps and courses",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    confFlagName,
				Aliases: []string{"c"},
				Usage:   "path to the configuration file",
				Value:   "configs/config.yaml",
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "import",
				Aliases: []string{"i"},
				Usage:   "insert the sample data",
				Action: func(c *cli.Context) error {
					fx, err := seed.Load()
					if err != nil {
						return err
					}
					return withDatabase(c, func(ctx context.Context, database *db.PostgresDB) error {
						return seed.Import(ctx, database, fx, logger.Get())
					})
				},
			},
			{
				Name:    "destroy",
				Aliases: []string{"d"},
				Usage:   "delete every bootcamp and course",
				Action: func(c *cli.Context) error {
					return withDatabase(c, func(ctx context.Context, database *db.PostgresDB) error {
						return seed.Destroy(ctx, database, logger.Get())
					})
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Seeder failed")
		os.Exit(1)
	}
}

// withDatabase connects, brings the schema up to date and runs fn
func withDatabase(c *cli.Context, fn func(ctx context.Context, database *db.PostgresDB) error) error {
	cfg, err := config.LoadConfig(c.String(confFlagName))
	if err != nil {
		return err
	}
	logger.Configure(logger.Config{Level: logger.ParseLevel(cfg.Logging.Level), Pretty: true})

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := c.Context
	if err := migrations.NewMigrator(database.Pool).Up(ctx); err != nil {
		return err
	}
	return fn(ctx, database)
}
