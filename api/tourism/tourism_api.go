package tourism

import (
	"context"
	"errors"

	"trip-planner/catalog"
	"trip-planner/models/venue"
)

// ErrPlaceNotFound is returned when the upstream has no record for an id.
var ErrPlaceNotFound = errors.New("place not found")

// TourismAPI defines the interface for reading the upstream tourism catalog
type TourismAPI interface {
	GetPlaces(ctx context.Context, source catalog.Source) ([]venue.PlaceRecord, error)
	GetPlace(ctx context.Context, source catalog.Source, id int) (*venue.PlaceRecord, error)
}
