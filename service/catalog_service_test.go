package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trip-planner/api/tourism"
	"trip-planner/catalog"
	"trip-planner/dao/redis"
	"trip-planner/db"
	"trip-planner/models/venue"
)

func newTestCatalogService(api *mockTourismAPI) (*CatalogService, *redis.RedisCatalogDAO) {
	dao := redis.NewRedisCatalogDAO(db.NewMockRedisClient())
	return NewCatalogService(dao, api, time.Hour, zap.NewNop()), dao
}

func venueIDs(venues []venue.Venue) []string {
	ids := make([]string, len(venues))
	for i, v := range venues {
		ids[i] = v.ID
	}
	return ids
}

func TestCatalogService_RefreshCatalog(t *testing.T) {
	api := new(mockTourismAPI)
	expectAllSources(api, "", nil)
	svc, dao := newTestCatalogService(api)
	ctx := context.Background()

	venues, err := svc.RefreshCatalog(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"cafe-1", "culinary-1", "education-1", "nature-1"}, venueIDs(venues))

	cached, err := dao.ListVenues(ctx)
	require.NoError(t, err)
	assert.Equal(t, venues, cached)

	_, ok, err := dao.GetRefreshedAt(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	api.AssertExpectations(t)
}

func TestCatalogService_RefreshCatalog_SkipsFailingSource(t *testing.T) {
	api := new(mockTourismAPI)
	expectAllSources(api, catalog.SourceEducation, errors.New("upstream down"))
	svc, _ := newTestCatalogService(api)

	venues, err := svc.RefreshCatalog(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"cafe-1", "culinary-1", "nature-1"}, venueIDs(venues))
}

func TestCatalogService_RefreshCatalog_FailingSourceKeepsCachedVenues(t *testing.T) {
	healthy := new(mockTourismAPI)
	expectAllSources(healthy, "", nil)
	svc, _ := newTestCatalogService(healthy)
	ctx := context.Background()
	_, err := svc.RefreshCatalog(ctx)
	require.NoError(t, err)

	degraded := new(mockTourismAPI)
	expectAllSources(degraded, catalog.SourceCafe, errors.New("upstream down"))
	svc.tourismAPI = degraded

	venues, err := svc.RefreshCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cafe-1", "culinary-1", "education-1", "nature-1"}, venueIDs(venues))

	cached, err := svc.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cafe-1", "culinary-1", "education-1", "nature-1"}, venueIDs(cached))
	degraded.AssertNumberOfCalls(t, "GetPlaces", len(catalog.AllSources))
}

func TestCatalogService_RefreshCatalog_AllSourcesFail(t *testing.T) {
	api := new(mockTourismAPI)
	api.On("GetPlaces", mock.Anything, mock.Anything).Return(nil, errors.New("upstream down"))
	svc, _ := newTestCatalogService(api)

	venues, err := svc.RefreshCatalog(context.Background())

	assert.Nil(t, venues)
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestCatalogService_RefreshCatalog_EmptyUpstreamIsNotAnError(t *testing.T) {
	api := new(mockTourismAPI)
	api.On("GetPlaces", mock.Anything, mock.Anything).Return([]venue.PlaceRecord{}, nil)
	svc, _ := newTestCatalogService(api)

	venues, err := svc.RefreshCatalog(context.Background())

	require.NoError(t, err)
	assert.Empty(t, venues)
}

func TestCatalogService_LoadCatalog_UsesFreshCache(t *testing.T) {
	api := new(mockTourismAPI)
	expectAllSources(api, "", nil)
	svc, _ := newTestCatalogService(api)
	ctx := context.Background()

	first, err := svc.LoadCatalog(ctx)
	require.NoError(t, err)
	second, err := svc.LoadCatalog(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	api.AssertNumberOfCalls(t, "GetPlaces", len(catalog.AllSources))
}

func TestCatalogService_LoadCatalog_RefreshesStaleCache(t *testing.T) {
	api := new(mockTourismAPI)
	expectAllSources(api, "", nil)
	svc, _ := newTestCatalogService(api)
	ctx := context.Background()

	_, err := svc.LoadCatalog(ctx)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = svc.LoadCatalog(ctx)
	require.NoError(t, err)

	api.AssertNumberOfCalls(t, "GetPlaces", 2*len(catalog.AllSources))
}

func TestCatalogService_ListVenues(t *testing.T) {
	api := new(mockTourismAPI)
	expectAllSources(api, "", nil)
	svc, _ := newTestCatalogService(api)
	ctx := context.Background()

	tests := []struct {
		name       string
		categories []venue.Category
		want       []string
	}{
		{"no filter", nil, []string{"cafe-1", "culinary-1", "education-1", "nature-1"}},
		{"nature only", []venue.Category{venue.CategoryNature}, []string{"nature-1"}},
		{"food includes cafes", []venue.Category{venue.CategoryFood}, []string{"cafe-1", "culinary-1"}},
		{"several", []venue.Category{venue.CategoryEducation, venue.CategoryCafe}, []string{"cafe-1", "education-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			venues, err := svc.ListVenues(ctx, tt.categories)

			require.NoError(t, err)
			assert.Equal(t, tt.want, venueIDs(venues))
		})
	}
}

func TestCatalogService_GetVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("from cache", func(t *testing.T) {
		api := new(mockTourismAPI)
		expectAllSources(api, "", nil)
		svc, _ := newTestCatalogService(api)
		_, err := svc.RefreshCatalog(ctx)
		require.NoError(t, err)

		v, err := svc.GetVenue(ctx, "nature-1")

		require.NoError(t, err)
		assert.Equal(t, "nature place", v.Name)
		api.AssertNotCalled(t, "GetPlace", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("from upstream", func(t *testing.T) {
		api := new(mockTourismAPI)
		rec := placeRecord(7, "Kopi Calf", 28000)
		api.On("GetPlace", mock.Anything, catalog.SourceCafe, 7).Return(&rec, nil)
		svc, _ := newTestCatalogService(api)

		v, err := svc.GetVenue(ctx, "cafe-7")

		require.NoError(t, err)
		assert.Equal(t, "cafe-7", v.ID)
		assert.Equal(t, venue.MenuEstimate(28000), v.Cost)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _ := newTestCatalogService(new(mockTourismAPI))

		_, err := svc.GetVenue(ctx, "museum-1")

		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("missing upstream", func(t *testing.T) {
		api := new(mockTourismAPI)
		api.On("GetPlace", mock.Anything, catalog.SourceNature, 99).Return(nil, tourism.ErrPlaceNotFound)
		svc, _ := newTestCatalogService(api)

		_, err := svc.GetVenue(ctx, "nature-99")

		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("upstream failure", func(t *testing.T) {
		api := new(mockTourismAPI)
		api.On("GetPlace", mock.Anything, catalog.SourceNature, 2).Return(nil, errors.New("timeout"))
		svc, _ := newTestCatalogService(api)

		_, err := svc.GetVenue(ctx, "nature-2")

		assert.ErrorIs(t, err, ErrCatalogUnavailable)
	})
}
