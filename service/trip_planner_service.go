package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trip-planner/models/itinerary"
	"trip-planner/models/venue"
	"trip-planner/planner"
)

// CatalogLoader provides the venue catalog to plan against.
type CatalogLoader interface {
	LoadCatalog(ctx context.Context) ([]venue.Venue, error)
}

// Plan is a generated itinerary together with what is needed to reproduce it.
type Plan struct {
	PlanID    string               `json:"plan_id"`
	Seed      int64                `json:"seed"`
	Itinerary *itinerary.Itinerary `json:"itinerary"`
}

// TripPlannerService generates itineraries over the current catalog.
type TripPlannerService struct {
	catalog CatalogLoader
	logger  *zap.Logger
	newSeed func() int64
	newID   func() string
}

// NewTripPlannerService constructs a new TripPlannerService.
func NewTripPlannerService(catalog CatalogLoader, logger *zap.Logger) *TripPlannerService {
	return &TripPlannerService{
		catalog: catalog,
		logger:  logger,
		newSeed: func() int64 { return time.Now().UnixNano() },
		newID:   func() string { return uuid.New().String() },
	}
}

// GeneratePlan builds an itinerary for req. A nil seed picks a fresh one;
// passing a previously returned seed reproduces that plan's itinerary.
func (ts *TripPlannerService) GeneratePlan(ctx context.Context, req itinerary.TripRequest, seed *int64) (*Plan, error) {
	if err := planner.ValidateRequest(req); err != nil {
		return nil, err
	}

	venues, err := ts.catalog.LoadCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	s := ts.newSeed()
	if seed != nil {
		s = *seed
	}

	it, err := planner.Generate(venues, req, planner.NewSeededSource(s))
	if err != nil {
		return nil, err
	}

	plan := &Plan{PlanID: ts.newID(), Seed: s, Itinerary: it}
	ts.logger.Info("itinerary generated",
		zap.String("plan_id", plan.PlanID),
		zap.Int64("seed", s),
		zap.Int("days", req.Days),
		zap.Bool("mixed_mode", req.MixedMode),
		zap.Int("activities", it.TotalActivities),
		zap.Int64("estimated_budget", it.EstimatedBudget))
	return plan, nil
}
