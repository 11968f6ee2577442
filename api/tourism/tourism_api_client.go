package tourism

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"trip-planner/api"
	"trip-planner/catalog"
	"trip-planner/models/venue"
)

// TourismApiClient embeds the common HTTPClient
type TourismApiClient struct {
	*api.HTTPClient
}

// NewTourismApiClient creates a new instance of TourismApiClient
func NewTourismApiClient(httpClient *api.HTTPClient) *TourismApiClient {
	return &TourismApiClient{
		HTTPClient: httpClient,
	}
}

// GetPlaces retrieves every record served for the source
func (c *TourismApiClient) GetPlaces(ctx context.Context, source catalog.Source) ([]venue.PlaceRecord, error) {
	path := source.Path()
	if path == "" {
		return nil, fmt.Errorf("unknown catalog source %q", source)
	}
	var response []venue.PlaceRecord
	if err := c.Request(ctx, "GET", path, nil, nil, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch %s catalog: %w", source, err)
	}
	return response, nil
}

// GetPlace retrieves a single record given its upstream id
func (c *TourismApiClient) GetPlace(ctx context.Context, source catalog.Source, id int) (*venue.PlaceRecord, error) {
	path := source.Path()
	if path == "" {
		return nil, fmt.Errorf("unknown catalog source %q", source)
	}
	var response venue.PlaceRecord
	if err := c.Request(ctx, "GET", path+"/"+strconv.Itoa(id), nil, nil, &response); err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%s place %d: %w", source, id, ErrPlaceNotFound)
		}
		return nil, fmt.Errorf("failed to fetch %s place %d: %w", source, id, err)
	}
	return &response, nil
}
