package itinerary

import "trip-planner/models/venue"

// TripRequest captures what the traveller asked for.
type TripRequest struct {
	SelectedCategories []venue.Category `json:"selected_categories" validate:"dive,oneof=nature education food cafe"`
	MixedMode          bool             `json:"mixed_mode"`
	Days               int              `json:"days" validate:"min=1,max=14"`
}

// Activity is one scheduled occurrence inside a day.
type Activity struct {
	Slot          string         `json:"slot"`
	TimeSlot      string         `json:"time"`
	DurationLabel string         `json:"duration_label"`
	VenueID       string         `json:"venue_id"`
	Title         string         `json:"title"`
	Subtitle      string         `json:"subtitle"`
	Address       string         `json:"address"`
	Category      venue.Category `json:"category"`
	PriceLabel    string         `json:"price_label"`
	Price         int64          `json:"price"`
	ImageRef      string         `json:"image_ref,omitempty"`
	MapsURL       string         `json:"maps_url,omitempty"`
}

// Day is the ordered list of activities for a 1-indexed trip day.
type Day struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

// Itinerary is the full generated plan.
type Itinerary struct {
	Days            []Day `json:"days"`
	TotalActivities int   `json:"total_activities"`
	EstimatedBudget int64 `json:"estimated_budget"`
}
