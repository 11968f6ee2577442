package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"trip-planner/config"
	"trip-planner/di"
	"trip-planner/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("trip planner stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	container, err := di.NewContainer(cfg, log)
	if err != nil {
		return err
	}
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("warming catalog cache")
	container.CatalogRefresherService.RunOnce(ctx)

	log.Info("starting periodic catalog refresh", zap.Duration("interval", cfg.Catalog.RefreshInterval))
	refresherDone := container.CatalogRefresherService.StartPeriodicJob(ctx, cfg.Catalog.RefreshInterval)

	err = container.TripPlannerHttpServer.Start(ctx)
	stop()
	<-refresherDone
	return err
}
