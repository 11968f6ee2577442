package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"trip-planner/api/tourism"
	"trip-planner/catalog"
	"trip-planner/dao/redis"
	"trip-planner/models/venue"
)

var (
	// ErrCatalogUnavailable is returned when no upstream source could be loaded.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrVenueNotFound      = errors.New("venue not found")
)

// CatalogService serves the normalized venue catalog, caching it in Redis.
type CatalogService struct {
	catalogDao *redis.RedisCatalogDAO
	tourismAPI tourism.TourismAPI
	cacheTTL   time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// NewCatalogService constructs a new CatalogService with Redis dependency injection.
func NewCatalogService(
	catalogDao *redis.RedisCatalogDAO,
	tourismAPI tourism.TourismAPI,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		catalogDao: catalogDao,
		tourismAPI: tourismAPI,
		cacheTTL:   cacheTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// LoadCatalog returns the cached catalog while it is fresh, refreshing it
// from upstream otherwise.
func (cs *CatalogService) LoadCatalog(ctx context.Context) ([]venue.Venue, error) {
	if venues, ok := cs.cachedCatalog(ctx); ok {
		return venues, nil
	}
	return cs.RefreshCatalog(ctx)
}

func (cs *CatalogService) cachedCatalog(ctx context.Context) ([]venue.Venue, bool) {
	refreshedAt, ok, err := cs.catalogDao.GetRefreshedAt(ctx)
	if err != nil {
		cs.logger.Warn("failed to read catalog refresh time", zap.Error(err))
		return nil, false
	}
	if !ok || cs.now().Sub(refreshedAt) >= cs.cacheTTL {
		return nil, false
	}

	venues, err := cs.catalogDao.ListVenues(ctx)
	if err != nil {
		cs.logger.Warn("failed to read cached catalog", zap.Error(err))
		return nil, false
	}
	if len(venues) == 0 {
		return nil, false
	}
	cs.logger.Debug("serving cached catalog",
		zap.Int("venues", len(venues)),
		zap.Time("refreshed_at", refreshedAt))
	return venues, true
}

// RefreshCatalog fetches every source concurrently, normalizes the records
// and caches the result. Venues are returned sorted by ID.
func (cs *CatalogService) RefreshCatalog(ctx context.Context) ([]venue.Venue, error) {
	results := make([][]venue.Venue, len(catalog.AllSources))
	failures := make([]error, len(catalog.AllSources))

	g, gctx := errgroup.WithContext(ctx)
	for i, source := range catalog.AllSources {
		i, source := i, source
		g.Go(func() error {
			records, err := cs.tourismAPI.GetPlaces(gctx, source)
			if err == nil {
				results[i], err = catalog.NormalizeAll(source, records)
			}
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				cs.logger.Warn("skipping catalog source",
					zap.String("source", string(source)),
					zap.Error(err))
				failures[i] = err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	venues := make([]venue.Venue, 0)
	var loadedPrefixes []string
	for i, source := range catalog.AllSources {
		if failures[i] != nil {
			continue
		}
		loadedPrefixes = append(loadedPrefixes, string(source)+"-")
		venues = append(venues, results[i]...)
	}
	loaded := len(loadedPrefixes)
	if loaded == 0 {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, errors.Join(failures...))
	}
	sort.Slice(venues, func(i, j int) bool { return venues[i].ID < venues[j].ID })

	// Cached venues of failed sources survive a partial refresh.
	if err := cs.catalogDao.ReplaceCatalog(ctx, venues, loadedPrefixes...); err != nil {
		cs.logger.Warn("failed to cache catalog", zap.Error(err))
		return venues, nil
	}
	if loaded < len(catalog.AllSources) {
		merged, err := cs.catalogDao.ListVenues(ctx)
		if err != nil {
			cs.logger.Warn("failed to read merged catalog", zap.Error(err))
		} else {
			venues = merged
		}
	}
	if err := cs.catalogDao.SetRefreshedAt(ctx, cs.now()); err != nil {
		cs.logger.Warn("failed to record catalog refresh time", zap.Error(err))
	}

	cs.logger.Info("catalog refreshed",
		zap.Int("venues", len(venues)),
		zap.Int("sources", loaded))
	return venues, nil
}

// ListVenues returns the catalog restricted to venues carrying any of the
// given categories; an empty filter returns everything.
func (cs *CatalogService) ListVenues(ctx context.Context, categories []venue.Category) ([]venue.Venue, error) {
	venues, err := cs.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return venues, nil
	}

	filtered := make([]venue.Venue, 0, len(venues))
	for _, v := range venues {
		for _, c := range categories {
			if v.HasCategory(c) {
				filtered = append(filtered, v)
				break
			}
		}
	}
	return filtered, nil
}

// GetVenue returns one venue by its namespaced id, from the cache when
// present and from upstream otherwise.
func (cs *CatalogService) GetVenue(ctx context.Context, venueID string) (*venue.Venue, error) {
	cached, err := cs.catalogDao.GetVenue(ctx, venueID)
	if err != nil {
		cs.logger.Warn("failed to read cached venue", zap.String("venue_id", venueID), zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	source, id, ok := catalog.ParseVenueID(venueID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}
	record, err := cs.tourismAPI.GetPlace(ctx, source, id)
	if errors.Is(err, tourism.ErrPlaceNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	v, err := catalog.Normalize(source, *record)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
