package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner/db"
	"trip-planner/models/venue"
)

func testVenue(id string, cat venue.Category) venue.Venue {
	return venue.Venue{
		ID:         id,
		Name:       "Venue " + id,
		Address:    "Purwokerto",
		Categories: []venue.Category{cat},
		Cost:       venue.Ticket(5000),
	}
}

func TestRedisCatalogDAO_UpsertAndGetVenue(t *testing.T) {
	ctx := context.Background()
	mockClient := db.NewMockRedisClient()
	dao := NewRedisCatalogDAO(mockClient)

	v := testVenue("nature-1", venue.CategoryNature)
	require.NoError(t, dao.UpsertVenue(ctx, v))

	stored, err := mockClient.Get(ctx, "catalog_venue_v1:nature-1")
	require.NoError(t, err)
	assert.Contains(t, stored, `"id":"nature-1"`)

	got, err := dao.GetVenue(ctx, "nature-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, v, *got)
}

func TestRedisCatalogDAO_GetVenue_Missing(t *testing.T) {
	dao := NewRedisCatalogDAO(db.NewMockRedisClient())

	got, err := dao.GetVenue(context.Background(), "cafe-404")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCatalogDAO_ListVenuesSorted(t *testing.T) {
	ctx := context.Background()
	dao := NewRedisCatalogDAO(db.NewMockRedisClient())

	require.NoError(t, dao.UpsertVenue(ctx, testVenue("nature-2", venue.CategoryNature)))
	require.NoError(t, dao.UpsertVenue(ctx, testVenue("cafe-1", venue.CategoryCafe)))
	require.NoError(t, dao.UpsertVenue(ctx, testVenue("education-7", venue.CategoryEducation)))

	venues, err := dao.ListVenues(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(venues))
	for _, v := range venues {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"cafe-1", "education-7", "nature-2"}, ids)
}

func TestRedisCatalogDAO_ListVenues_Empty(t *testing.T) {
	dao := NewRedisCatalogDAO(db.NewMockRedisClient())

	venues, err := dao.ListVenues(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, venues)
}

func TestRedisCatalogDAO_ReplaceCatalogDropsStale(t *testing.T) {
	ctx := context.Background()
	dao := NewRedisCatalogDAO(db.NewMockRedisClient())
	require.NoError(t, dao.UpsertVenue(ctx, testVenue("nature-1", venue.CategoryNature)))
	require.NoError(t, dao.UpsertVenue(ctx, testVenue("nature-2", venue.CategoryNature)))

	err := dao.ReplaceCatalog(ctx, []venue.Venue{
		testVenue("nature-2", venue.CategoryNature),
		testVenue("culinary-1", venue.CategoryFood),
	})
	require.NoError(t, err)

	ids, err := dao.ListVenueIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"culinary-1", "nature-2"}, ids)
}

func TestRedisCatalogDAO_ReplaceCatalogKeepsOtherPrefixes(t *testing.T) {
	ctx := context.Background()
	dao := NewRedisCatalogDAO(db.NewMockRedisClient())
	require.NoError(t, dao.UpsertVenue(ctx, testVenue("cafe-1", venue.CategoryCafe)))
	require.NoError(t, dao.UpsertVenue(ctx, testVenue("nature-1", venue.CategoryNature)))
	require.NoError(t, dao.UpsertVenue(ctx, testVenue("nature-2", venue.CategoryNature)))

	err := dao.ReplaceCatalog(ctx, []venue.Venue{
		testVenue("nature-2", venue.CategoryNature),
	}, "nature-")
	require.NoError(t, err)

	ids, err := dao.ListVenueIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cafe-1", "nature-2"}, ids)
}

func TestRedisCatalogDAO_DeleteVenue(t *testing.T) {
	ctx := context.Background()
	dao := NewRedisCatalogDAO(db.NewMockRedisClient())
	require.NoError(t, dao.UpsertVenue(ctx, testVenue("cafe-3", venue.CategoryCafe)))

	require.NoError(t, dao.DeleteVenue(ctx, "cafe-3"))

	got, err := dao.GetVenue(ctx, "cafe-3")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCatalogDAO_RefreshedAt(t *testing.T) {
	ctx := context.Background()
	dao := NewRedisCatalogDAO(db.NewMockRedisClient())

	_, ok, err := dao.GetRefreshedAt(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	now := time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)
	require.NoError(t, dao.SetRefreshedAt(ctx, now))

	got, ok, err := dao.GetRefreshedAt(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, now.Equal(got))
}
