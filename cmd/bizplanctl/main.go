package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cloudkitchen-sh/bizplan-backend/config"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/bootstrap"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/seed"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/service"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/cli"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Out: os.Stdout,
		OpenService: func(ctx context.Context, seedFile string) (*service.BusinessPlanService, func(), error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, nil, err
			}
			logging.Setup(cfg.App.LogLevel, cfg.App.Environment)

			store, closeStore, err := bootstrap.OpenStore(ctx, cfg, bootstrap.StoreOptions{})
			if err != nil {
				return nil, nil, err
			}

			if seedFile == "" {
				seedFile = cfg.Seed.File
			}
			svc := service.NewBusinessPlanService(store, func() ([]byte, error) {
				return seed.Load(seedFile)
			})
			return svc, closeStore, nil
		},
	}

	return cli.NewRootCmd(app).Execute()
}
