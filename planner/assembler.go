package planner

import "trip-planner/models/itinerary"

// Assemble packages scheduled days into an itinerary and counts its
// activities. The budget is left for EstimateBudget.
func Assemble(days []itinerary.Day) *itinerary.Itinerary {
	if days == nil {
		days = []itinerary.Day{}
	}
	total := 0
	for _, d := range days {
		total += len(d.Activities)
	}
	return &itinerary.Itinerary{
		Days:            days,
		TotalActivities: total,
	}
}
