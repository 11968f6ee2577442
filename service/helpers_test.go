package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"trip-planner/catalog"
	"trip-planner/models/venue"
)

type mockTourismAPI struct {
	mock.Mock
}

func (m *mockTourismAPI) GetPlaces(ctx context.Context, source catalog.Source) ([]venue.PlaceRecord, error) {
	args := m.Called(ctx, source)
	records, _ := args.Get(0).([]venue.PlaceRecord)
	return records, args.Error(1)
}

func (m *mockTourismAPI) GetPlace(ctx context.Context, source catalog.Source, id int) (*venue.PlaceRecord, error) {
	args := m.Called(ctx, source, id)
	record, _ := args.Get(0).(*venue.PlaceRecord)
	return record, args.Error(1)
}

func placeRecord(id int, name string, price int) venue.PlaceRecord {
	return venue.PlaceRecord{
		ID:      id,
		Name:    name,
		Kind:    "test",
		Address: "Purwokerto",
		Price:   price,
	}
}

// expectAllSources makes every source serve one record, optionally with a
// failing source.
func expectAllSources(api *mockTourismAPI, failing catalog.Source, err error) {
	for _, source := range catalog.AllSources {
		if source == failing {
			api.On("GetPlaces", mock.Anything, source).Return(nil, err)
			continue
		}
		api.On("GetPlaces", mock.Anything, source).
			Return([]venue.PlaceRecord{placeRecord(1, string(source)+" place", 10000)}, nil)
	}
}
