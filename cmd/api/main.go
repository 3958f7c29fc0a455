package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudkitchen-sh/bizplan-backend/config"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/bootstrap"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/seed"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/service"
	"github.com/cloudkitchen-sh/bizplan-backend/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Base().WithError(err).Fatal("failed to load config")
	}

	log := logging.Setup(cfg.App.LogLevel, cfg.App.Environment)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg, bootstrap.StoreOptions{})
	if err != nil {
		log.WithError(err).WithField("driver", cfg.Store.Driver).Fatal("failed to open store")
	}
	defer closeStore()

	svc := service.NewBusinessPlanService(store, func() ([]byte, error) {
		return seed.Load(cfg.Seed.File)
	})

	if cfg.Seed.SeedOnStart {
		startLog := logging.NewLogger(logging.WithRequestID(ctx, "startup"))
		res, err := svc.Seed(ctx)
		if err != nil {
			startLog.LogError("seed on start", err)
		} else {
			startLog.LogInfo("seed on start", res.Message)
		}
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: cfg.App.ServiceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		SeedPerMin:  cfg.Seed.RatePerMin,
		SeedBurst:   cfg.Seed.Burst,
		Service:     svc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(map[string]any{
			"port":  cfg.Server.Port,
			"store": cfg.Store.Driver,
		}).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	log.Info("server stopped")
}
