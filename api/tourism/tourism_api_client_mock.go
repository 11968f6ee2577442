package tourism

import (
	"context"
	"fmt"
	"path/filepath"

	"trip-planner/catalog"
	"trip-planner/config"
	"trip-planner/models/venue"
	"trip-planner/util"
)

var fixtureFiles = map[catalog.Source]string{
	catalog.SourceNature:    config.NATURE_SITES_RESOURCE,
	catalog.SourceEducation: config.EDUCATION_SITES_RESOURCE,
	catalog.SourceCulinary:  config.CULINARY_RESOURCE,
	catalog.SourceCafe:      config.CAFES_RESOURCE,
}

// TourismApiClientMock serves the catalog from JSON fixtures on disk
type TourismApiClientMock struct {
	fixturesDir string
}

// NewTourismApiClientMock creates a mock reading fixtures from fixturesDir,
// or from the project resources when fixturesDir is empty.
func NewTourismApiClientMock(fixturesDir string) *TourismApiClientMock {
	return &TourismApiClientMock{fixturesDir: fixturesDir}
}

// GetPlaces reads the source's fixture file
func (c *TourismApiClientMock) GetPlaces(_ context.Context, source catalog.Source) ([]venue.PlaceRecord, error) {
	file, ok := fixtureFiles[source]
	if !ok {
		return nil, fmt.Errorf("unknown catalog source %q", source)
	}
	if c.fixturesDir == "" {
		return util.ReadPlaceRecordsFromJSON(config.GetResourcePath(file))
	}
	return util.ReadPlaceRecordsFromJSON(filepath.Join(c.fixturesDir, file))
}

// GetPlace looks the record up in the source's fixture file
func (c *TourismApiClientMock) GetPlace(ctx context.Context, source catalog.Source, id int) (*venue.PlaceRecord, error) {
	records, err := c.GetPlaces(ctx, source)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("%s place %d: %w", source, id, ErrPlaceNotFound)
}
