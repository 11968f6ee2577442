package planner

import (
	"fmt"

	"trip-planner/models/venue"
)

func natureVenue(id int, price int64) venue.Venue {
	return venue.Venue{
		ID:         fmt.Sprintf("nature-%d", id),
		Name:       fmt.Sprintf("Curug %d", id),
		Address:    "Baturraden",
		Categories: []venue.Category{venue.CategoryNature},
		Cost:       venue.Ticket(price),
	}
}

func educationVenue(id int, price int64) venue.Venue {
	return venue.Venue{
		ID:         fmt.Sprintf("education-%d", id),
		Name:       fmt.Sprintf("Museum %d", id),
		Address:    "Purwokerto",
		Categories: []venue.Category{venue.CategoryEducation},
		Cost:       venue.Ticket(price),
	}
}

func foodVenue(id int, price int64) venue.Venue {
	return venue.Venue{
		ID:         fmt.Sprintf("culinary-%d", id),
		Name:       fmt.Sprintf("Warung %d", id),
		Address:    "Purwokerto",
		Categories: []venue.Category{venue.CategoryFood},
		Cost:       venue.MenuEstimate(price),
	}
}

func cafeVenue(id int, price int64) venue.Venue {
	return venue.Venue{
		ID:         fmt.Sprintf("cafe-%d", id),
		Name:       fmt.Sprintf("Kopi %d", id),
		Address:    "Purwokerto",
		Categories: []venue.Category{venue.CategoryCafe, venue.CategoryFood},
		Cost:       venue.MenuEstimate(price),
	}
}

// ampleCatalog has enough venues of every category for several full days.
func ampleCatalog() []venue.Venue {
	var out []venue.Venue
	for i := 1; i <= 5; i++ {
		out = append(out, natureVenue(i, int64(i)*5000))
		out = append(out, educationVenue(i, int64(i)*2500))
		out = append(out, foodVenue(i, 15000))
		out = append(out, cafeVenue(i, 20000))
	}
	return out
}
