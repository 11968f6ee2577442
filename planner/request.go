package planner

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"trip-planner/models/itinerary"
)

// MaxTripDays bounds the size of a generated itinerary.
const MaxTripDays = 14

// ErrInvalidRequest is wrapped by every request validation failure.
var ErrInvalidRequest = errors.New("invalid trip request")

var validate = validator.New()

// ValidateRequest rejects requests the scheduler cannot honour: a day count
// outside 1..MaxTripDays, unknown categories, or a manual-mode request with
// nothing selected. Mixed mode ignores the selection, so it is not checked.
func ValidateRequest(req itinerary.TripRequest) error {
	if req.Days < 1 || req.Days > MaxTripDays {
		return fmt.Errorf("%w: days must be between 1 and %d, got %d", ErrInvalidRequest, MaxTripDays, req.Days)
	}
	if req.MixedMode {
		req.SelectedCategories = nil
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if !req.MixedMode && len(req.SelectedCategories) == 0 {
		return fmt.Errorf("%w: select at least one category or enable mixed mode", ErrInvalidRequest)
	}
	return nil
}
