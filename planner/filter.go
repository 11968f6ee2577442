package planner

import (
	"trip-planner/models/itinerary"
	"trip-planner/models/venue"
)

// FilterCategories restricts the catalog to the venues the request is
// interested in. Mixed mode keeps the whole catalog. In manual mode a
// venue survives when it shares at least one category with the selection,
// and its category list is reordered so a selected category is primary.
// Order is preserved and the catalog itself is never modified.
func FilterCategories(catalog []venue.Venue, req itinerary.TripRequest) []venue.Venue {
	if req.MixedMode {
		out := make([]venue.Venue, len(catalog))
		copy(out, catalog)
		return out
	}

	selected := make(map[venue.Category]struct{}, len(req.SelectedCategories))
	for _, c := range req.SelectedCategories {
		selected[c] = struct{}{}
	}

	out := make([]venue.Venue, 0, len(catalog))
	for _, v := range catalog {
		cats := selectedFirst(v.Categories, selected)
		if cats == nil {
			continue
		}
		v.Categories = cats
		out = append(out, v)
	}
	return out
}

// selectedFirst returns a new category list with selected categories moved
// to the front, or nil when none of cats is selected.
func selectedFirst(cats []venue.Category, selected map[venue.Category]struct{}) []venue.Category {
	matched := make([]venue.Category, 0, len(cats))
	var rest []venue.Category
	for _, c := range cats {
		if _, ok := selected[c]; ok {
			matched = append(matched, c)
		} else {
			rest = append(rest, c)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	return append(matched, rest...)
}
