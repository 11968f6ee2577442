package planner

import "trip-planner/models/itinerary"

// EstimateBudget is the literal sum of every activity price. No surcharge
// is added on top.
func EstimateBudget(days []itinerary.Day) int64 {
	var total int64
	for _, d := range days {
		for _, a := range d.Activities {
			total += a.Price
		}
	}
	return total
}
