package main

import (
	"context"
	"fmt"

	"affidavit/internal/db"
	"affidavit/internal/seed"
	"affidavit/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with lookup tables and demo data",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "demo",
			Usage: "Also create a demo petitioner, respondent and case",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		lookupRepo := store.NewLookupRepository(pool)

		logrus.Info("Seeding lookup tables...")
		if err := seed.SeedLookups(ctx, lookupRepo); err != nil {
			return fmt.Errorf("failed to seed lookups: %w", err)
		}
		logrus.Info("Lookup tables seeded successfully")

		if c.Bool("demo") {
			userRepo := store.NewUserRepository(pool)
			caseRepo := store.NewCaseRepository(pool)

			logrus.Info("Seeding demo parties and case...")
			if err := seed.SeedDemo(ctx, userRepo, caseRepo); err != nil {
				return fmt.Errorf("failed to seed demo data: %w", err)
			}
			logrus.Info("Demo data seeded successfully")
		}

		return nil
	},
}
