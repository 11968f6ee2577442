package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"trip-planner/models/venue"
)

// Source identifies one upstream catalog.
type Source string

const (
	SourceNature    Source = "nature"
	SourceEducation Source = "education"
	SourceCulinary  Source = "culinary"
	SourceCafe      Source = "cafe"
)

// AllSources lists every upstream catalog in load order.
var AllSources = []Source{SourceNature, SourceEducation, SourceCulinary, SourceCafe}

const (
	// Menu floors applied when an eatery reports no price.
	CulinaryMenuFloor int64 = 15000
	CafeMenuFloor     int64 = 20000

	defaultDescription = "Tourist destination"
)

// Path is the upstream endpoint serving the source's records.
func (s Source) Path() string {
	switch s {
	case SourceNature:
		return "/wisata_alam"
	case SourceEducation:
		return "/wisata_pendidikan"
	case SourceCulinary:
		return "/kuliner"
	case SourceCafe:
		return "/tempat_nongkrong"
	}
	return ""
}

// Categories are the tags every venue from this source carries, primary first.
func (s Source) Categories() []venue.Category {
	switch s {
	case SourceNature:
		return []venue.Category{venue.CategoryNature}
	case SourceEducation:
		return []venue.Category{venue.CategoryEducation}
	case SourceCulinary:
		return []venue.Category{venue.CategoryFood}
	case SourceCafe:
		return []venue.Category{venue.CategoryCafe, venue.CategoryFood}
	}
	return nil
}

// ParseVenueID splits a namespaced venue id such as "cafe-3" back into its
// source and upstream id.
func ParseVenueID(venueID string) (Source, int, bool) {
	i := strings.LastIndex(venueID, "-")
	if i <= 0 {
		return "", 0, false
	}
	source := Source(venueID[:i])
	if source.Categories() == nil {
		return "", 0, false
	}
	id, err := strconv.Atoi(venueID[i+1:])
	if err != nil {
		return "", 0, false
	}
	return source, id, true
}

// Normalize maps one upstream record into a Venue.
func Normalize(source Source, rec venue.PlaceRecord) (venue.Venue, error) {
	cats := source.Categories()
	if cats == nil {
		return venue.Venue{}, fmt.Errorf("unknown catalog source %q", source)
	}

	description := strings.TrimSpace(rec.Kind)
	if description == "" {
		description = defaultDescription
	}

	return venue.Venue{
		ID:          fmt.Sprintf("%s-%d", source, rec.ID),
		Name:        strings.TrimSpace(rec.Name),
		Address:     strings.TrimSpace(rec.Address),
		Categories:  cats,
		Cost:        costSignal(source, int64(rec.Price)),
		ImageRef:    rec.PhotoLink,
		MapsURL:     rec.MapsLink,
		OpenHours:   openHours(rec.OpensAt, rec.ClosesAt),
		Description: description,
	}, nil
}

// NormalizeAll maps every record of a source, preserving order.
func NormalizeAll(source Source, recs []venue.PlaceRecord) ([]venue.Venue, error) {
	out := make([]venue.Venue, 0, len(recs))
	for _, rec := range recs {
		v, err := Normalize(source, rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func costSignal(source Source, price int64) venue.CostSignal {
	if price < 0 {
		price = 0
	}
	switch source {
	case SourceCulinary:
		return venue.MenuEstimate(withFloor(price, CulinaryMenuFloor))
	case SourceCafe:
		return venue.MenuEstimate(withFloor(price, CafeMenuFloor))
	default:
		return venue.Ticket(price)
	}
}

// withFloor replaces a zero menu price, which is never meaningful.
func withFloor(price, floor int64) int64 {
	if price == 0 {
		return floor
	}
	return price
}

func openHours(opens, closes string) string {
	opens, closes = strings.TrimSpace(opens), strings.TrimSpace(closes)
	if opens == "" || closes == "" {
		return ""
	}
	return opens + " - " + closes
}
