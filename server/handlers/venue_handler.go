package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"trip-planner/models/venue"
)

const (
	CATEGORY_QUERY_ARG = "category"
	VENUE_ID_PATH_VAR  = "id"
)

// VenueCatalog serves catalog lookups.
type VenueCatalog interface {
	ListVenues(ctx context.Context, categories []venue.Category) ([]venue.Venue, error)
	GetVenue(ctx context.Context, venueID string) (*venue.Venue, error)
}

type VenueHandler struct {
	venues VenueCatalog
	logger *zap.Logger
}

func NewVenueHandler(venues VenueCatalog, logger *zap.Logger) *VenueHandler {
	return &VenueHandler{venues: venues, logger: logger}
}

// ListVenues handles GET /v1/venues?category=...
func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	categories, ok := h.parseCategories(w, r)
	if !ok {
		return // error already written
	}

	venues, err := h.venues.ListVenues(r.Context(), categories)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, venues)
}

// GetVenue handles GET /v1/venues/{id}
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	v, err := h.venues.GetVenue(r.Context(), mux.Vars(r)[VENUE_ID_PATH_VAR])
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, v)
}

func (h *VenueHandler) parseCategories(w http.ResponseWriter, r *http.Request) ([]venue.Category, bool) {
	raw := r.URL.Query()[CATEGORY_QUERY_ARG]
	categories := make([]venue.Category, 0, len(raw))
	for _, s := range raw {
		c := venue.Category(s)
		if !c.Valid() {
			writeError(w, h.logger, http.StatusBadRequest, "Invalid argument "+CATEGORY_QUERY_ARG+": "+s)
			return nil, false
		}
		categories = append(categories, c)
	}
	return categories, true
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("pinging server")
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": "pong"})
}
