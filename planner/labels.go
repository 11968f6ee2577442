package planner

import (
	"strings"

	"github.com/dustin/go-humanize"

	"trip-planner/models/venue"
)

const (
	freeLabel       = "Free"
	defaultSubtitle = "general exploration"
)

var subtitles = map[venue.Category]string{
	venue.CategoryNature:    "Nature escape",
	venue.CategoryEducation: "Learning visit",
	venue.CategoryFood:      "Local culinary",
	venue.CategoryCafe:      "Coffee & hangout",
}

// Subtitle is the fixed blurb shown under an activity of the given category.
func Subtitle(c venue.Category) string {
	if s, ok := subtitles[c]; ok {
		return s
	}
	return defaultSubtitle
}

// PriceLabel renders a cost signal for display, e.g. "Free",
// "Ticket Rp 10.000" or "± Rp 15.000 / person".
func PriceLabel(cost venue.CostSignal) string {
	if cost.IsFree() {
		return freeLabel
	}
	if cost.Kind == venue.CostMenuEstimate {
		return "± " + FormatRupiah(cost.Amount) + " / person"
	}
	return "Ticket " + FormatRupiah(cost.Amount)
}

// FormatRupiah formats an amount with dot thousands separators.
func FormatRupiah(amount int64) string {
	return "Rp " + strings.ReplaceAll(humanize.Comma(amount), ",", ".")
}
