package planner

import (
	"trip-planner/models/itinerary"
	"trip-planner/models/venue"
)

// picker chooses the venue for the slot at the given position of the day.
type picker interface {
	pick(slotIndex int) (venue.Venue, bool)
}

// Schedule assigns venues to days × DaySlots.
//
// In manual mode slots alternate between destinations (even positions) and
// eateries (odd positions). In mixed mode the day has a fixed shape:
// sightseeing in the morning and afternoon, a meal at midday and a café in
// the evening. When the preferred queue runs dry the other bucket is tried,
// then a separately shuffled queue over every venue; if that is empty too
// the slot stays unfilled.
func Schedule(venues []venue.Venue, days int, mixedMode bool, rnd RandomSource) []itinerary.Day {
	if days < 0 {
		days = 0
	}

	var p picker
	if mixedMode {
		p = newSmartMixPicker(venues, rnd)
	} else {
		p = newManualPicker(venues, rnd)
	}

	out := make([]itinerary.Day, days)
	for d := range out {
		activities := make([]itinerary.Activity, 0, len(DaySlots))
		for i, slot := range DaySlots {
			v, ok := p.pick(i)
			if !ok {
				continue
			}
			activities = append(activities, newActivity(slot, v))
		}
		out[d] = itinerary.Day{Day: d + 1, Activities: activities}
	}
	return out
}

func newActivity(slot Slot, v venue.Venue) itinerary.Activity {
	category := v.PrimaryCategory()
	return itinerary.Activity{
		Slot:          slot.Name,
		TimeSlot:      slot.Time,
		DurationLabel: slot.Duration,
		VenueID:       v.ID,
		Title:         v.Name,
		Subtitle:      Subtitle(category),
		Address:       v.Address,
		Category:      category,
		PriceLabel:    PriceLabel(v.Cost),
		Price:         v.Cost.Amount,
		ImageRef:      v.ImageRef,
		MapsURL:       v.MapsURL,
	}
}

// splitBuckets separates venues by primary category into destinations and
// eateries. Venues with an unknown primary category land in neither.
func splitBuckets(venues []venue.Venue) (destinations, eats []venue.Venue) {
	for _, v := range venues {
		switch c := v.PrimaryCategory(); {
		case c.IsDestination():
			destinations = append(destinations, v)
		case c.IsEatery():
			eats = append(eats, v)
		}
	}
	return destinations, eats
}

type manualPicker struct {
	destinations *venueQueue
	eats         *venueQueue
	everything   *venueQueue
}

func newManualPicker(venues []venue.Venue, rnd RandomSource) *manualPicker {
	destinations, eats := splitBuckets(venues)
	return &manualPicker{
		destinations: newShuffledQueue(destinations, rnd),
		eats:         newShuffledQueue(eats, rnd),
		everything:   newShuffledQueue(venues, rnd),
	}
}

func (p *manualPicker) pick(slotIndex int) (venue.Venue, bool) {
	if slotIndex%2 == 0 {
		return popFirst(p.destinations, p.eats, p.everything)
	}
	return popFirst(p.eats, p.destinations, p.everything)
}

type smartMixPicker struct {
	destinations *venueQueue
	food         *venueQueue
	cafes        *venueQueue
	everything   *venueQueue
}

func newSmartMixPicker(venues []venue.Venue, rnd RandomSource) *smartMixPicker {
	destinations, eats := splitBuckets(venues)
	var food, cafes []venue.Venue
	for _, v := range eats {
		if v.PrimaryCategory() == venue.CategoryCafe {
			cafes = append(cafes, v)
		} else {
			food = append(food, v)
		}
	}
	return &smartMixPicker{
		destinations: newShuffledQueue(destinations, rnd),
		food:         newShuffledQueue(food, rnd),
		cafes:        newShuffledQueue(cafes, rnd),
		everything:   newShuffledQueue(venues, rnd),
	}
}

func (p *smartMixPicker) pick(slotIndex int) (venue.Venue, bool) {
	switch DaySlots[slotIndex].role {
	case roleMeal:
		return popFirst(p.food, p.cafes, p.destinations, p.everything)
	case roleHangout:
		return popFirst(p.cafes, p.food, p.destinations, p.everything)
	default:
		return popFirst(p.destinations, p.food, p.cafes, p.everything)
	}
}
