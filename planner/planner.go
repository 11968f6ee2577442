// Package planner turns a venue catalog and a trip request into a
// day-by-day, time-slotted itinerary.
//
// Every function in this package is a pure transformation over its inputs.
// The only source of nondeterminism is the RandomSource handed to Schedule
// or Generate, so a fixed seed always yields the same itinerary.
package planner

import (
	"errors"

	"trip-planner/models/itinerary"
	"trip-planner/models/venue"
)

var errNilRandomSource = errors.New("planner: nil random source")

// Generate validates the request, filters the catalog, schedules the
// surviving venues into slots and packages the result with its budget.
// The catalog is only read, never modified.
func Generate(catalog []venue.Venue, req itinerary.TripRequest, rnd RandomSource) (*itinerary.Itinerary, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}
	if rnd == nil {
		return nil, errNilRandomSource
	}

	pool := FilterCategories(catalog, req)
	days := Schedule(pool, req.Days, req.MixedMode, rnd)

	plan := Assemble(days)
	plan.EstimatedBudget = EstimateBudget(plan.Days)
	return plan, nil
}
