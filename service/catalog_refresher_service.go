package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"trip-planner/models/venue"
)

// CatalogRefresher reloads the catalog from upstream.
type CatalogRefresher interface {
	RefreshCatalog(ctx context.Context) ([]venue.Venue, error)
}

// CatalogRefresherService periodically refreshes the cached catalog.
type CatalogRefresherService struct {
	refresher CatalogRefresher
	logger    *zap.Logger
}

// NewCatalogRefresherService constructs a new refresher with dependencies.
func NewCatalogRefresherService(refresher CatalogRefresher, logger *zap.Logger) *CatalogRefresherService {
	return &CatalogRefresherService{
		refresher: refresher,
		logger:    logger,
	}
}

// StartPeriodicJob launches the background loop at the given interval. The
// loop stops when ctx is cancelled; the returned channel is closed then.
// A non-positive interval starts nothing.
func (cr *CatalogRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	if interval <= 0 {
		cr.logger.Warn("periodic catalog refresh disabled", zap.Duration("interval", interval))
		close(done)
		return done
	}
	go func() {
		defer close(done)
		cr.startPeriodicJob(ctx, interval)
	}()
	return done
}

func (cr *CatalogRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			cr.logger.Info("catalog refresher stopped")
			return
		case <-ticker.C:
			cr.RunOnce(ctx)
		}
	}
}

// RunOnce refreshes the catalog a single time and logs the outcome.
func (cr *CatalogRefresherService) RunOnce(ctx context.Context) {
	cr.logger.Info("running periodic catalog refresh")
	venues, err := cr.refresher.RefreshCatalog(ctx)
	if err != nil {
		cr.logger.Error("catalog refresh failed", zap.Error(err))
		return
	}
	cr.logger.Info("catalog refresh completed", zap.Int("venues", len(venues)))
}
