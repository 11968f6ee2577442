package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"trip-planner/config"
	"trip-planner/db"
	"trip-planner/models/venue"
)

// RedisCatalogDAO caches the normalized venue catalog in Redis.
type RedisCatalogDAO struct {
	client db.RedisClient
}

// NewRedisCatalogDAO initializes a RedisCatalogDAO with the Redis client.
func NewRedisCatalogDAO(client db.RedisClient) *RedisCatalogDAO {
	return &RedisCatalogDAO{client: client}
}

func venueKey(venueID string) string {
	return fmt.Sprintf(config.CATALOG_VENUE_KEY_FORMAT_V1, venueID)
}

// UpsertVenue stores the venue's JSON under its namespaced ID.
func (dao *RedisCatalogDAO) UpsertVenue(ctx context.Context, v venue.Venue) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal venue %s: %w", v.ID, err)
	}
	if err := dao.client.Set(ctx, venueKey(v.ID), string(data)); err != nil {
		return fmt.Errorf("failed to set venue %s in redis: %w", v.ID, err)
	}
	return nil
}

// GetVenue returns the cached venue, or nil when it is not cached.
func (dao *RedisCatalogDAO) GetVenue(ctx context.Context, venueID string) (*venue.Venue, error) {
	str, err := dao.client.Get(ctx, venueKey(venueID))
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get venue %s from redis: %w", venueID, err)
	}
	var v venue.Venue
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
	}
	return &v, nil
}

// ListVenueIDs returns the IDs of every cached venue, sorted.
func (dao *RedisCatalogDAO) ListVenueIDs(ctx context.Context) ([]string, error) {
	keys, err := dao.client.Keys(ctx, venueKey("*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list venue keys: %w", err)
	}
	prefix := venueKey("")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	sort.Strings(ids)
	return ids, nil
}

// ListVenues returns every cached venue sorted by ID, so callers get a
// stable catalog order regardless of Redis key ordering.
func (dao *RedisCatalogDAO) ListVenues(ctx context.Context) ([]venue.Venue, error) {
	ids, err := dao.ListVenueIDs(ctx)
	if err != nil {
		return nil, err
	}

	venues := make([]venue.Venue, 0, len(ids))
	for _, id := range ids {
		v, err := dao.GetVenue(ctx, id)
		if err != nil {
			return nil, err
		}
		if v == nil {
			// removed between SCAN and GET
			continue
		}
		venues = append(venues, *v)
	}
	return venues, nil
}

func (dao *RedisCatalogDAO) DeleteVenue(ctx context.Context, venueID string) error {
	if err := dao.client.Del(ctx, venueKey(venueID)); err != nil {
		return fmt.Errorf("failed to delete venue %s: %w", venueID, err)
	}
	return nil
}

// ReplaceCatalog upserts venues and drops cached venues that are no longer
// part of the catalog. When idPrefixes is given, only stale venues whose ID
// starts with one of them are dropped; other cached venues are left alone.
func (dao *RedisCatalogDAO) ReplaceCatalog(ctx context.Context, venues []venue.Venue, idPrefixes ...string) error {
	existing, err := dao.ListVenueIDs(ctx)
	if err != nil {
		return err
	}

	keep := make(map[string]struct{}, len(venues))
	for _, v := range venues {
		if err := dao.UpsertVenue(ctx, v); err != nil {
			return err
		}
		keep[v.ID] = struct{}{}
	}

	var stale []string
	for _, id := range existing {
		if _, ok := keep[id]; !ok && hasAnyPrefix(id, idPrefixes) {
			stale = append(stale, venueKey(id))
		}
	}
	if err := dao.client.Del(ctx, stale...); err != nil {
		return fmt.Errorf("failed to delete stale venues: %w", err)
	}
	return nil
}

// SetRefreshedAt records when the catalog was last refreshed.
func (dao *RedisCatalogDAO) SetRefreshedAt(ctx context.Context, at time.Time) error {
	if err := dao.client.Set(ctx, config.CATALOG_REFRESHED_AT_KEY_V1, at.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("failed to set catalog refresh time: %w", err)
	}
	return nil
}

// GetRefreshedAt returns the last refresh time; ok is false when the
// catalog has never been cached.
func (dao *RedisCatalogDAO) GetRefreshedAt(ctx context.Context) (at time.Time, ok bool, err error) {
	str, err := dao.client.Get(ctx, config.CATALOG_REFRESHED_AT_KEY_V1)
	if errors.Is(err, db.ErrKeyNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to get catalog refresh time: %w", err)
	}
	at, err = time.Parse(time.RFC3339Nano, str)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse catalog refresh time %q: %w", str, err)
	}
	return at, true, nil
}

func hasAnyPrefix(id string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}
