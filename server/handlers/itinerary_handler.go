package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"trip-planner/models/itinerary"
	services "trip-planner/service"
	"trip-planner/util"
)

// PlanGenerator produces itineraries for trip requests.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req itinerary.TripRequest, seed *int64) (*services.Plan, error)
}

// planRequest is the body of itinerary requests. Seed is optional; sending
// back the seed of an earlier plan reproduces it.
type planRequest struct {
	itinerary.TripRequest
	Seed *int64 `json:"seed,omitempty"`
}

type ItineraryHandler struct {
	plans  PlanGenerator
	logger *zap.Logger
}

func NewItineraryHandler(plans PlanGenerator, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{plans: plans, logger: logger}
}

// GenerateItinerary handles POST /v1/itineraries
func (h *ItineraryHandler) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.generate(w, r)
	if !ok {
		return
	}
	writeJSON(w, h.logger, http.StatusOK, plan)
}

// GetBudgetChart handles POST /v1/itineraries/budget-chart
func (h *ItineraryHandler) GetBudgetChart(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.generate(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := util.PlotBudgetByDay(plan.Itinerary, &buf); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("failed to write budget chart", zap.Error(err))
	}
}

func (h *ItineraryHandler) generate(w http.ResponseWriter, r *http.Request) (*services.Plan, bool) {
	var body planRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}

	plan, err := h.plans.GeneratePlan(r.Context(), body.TripRequest, body.Seed)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return nil, false
	}
	return plan, true
}
