package venue

// Category is one of the fixed interest tags a venue can carry.
type Category string

const (
	CategoryNature    Category = "nature"
	CategoryEducation Category = "education"
	CategoryFood      Category = "food"
	CategoryCafe      Category = "cafe"
)

// AllCategories lists every known category in display order.
var AllCategories = []Category{CategoryNature, CategoryEducation, CategoryFood, CategoryCafe}

// Valid reports whether c belongs to the fixed category enumeration.
func (c Category) Valid() bool {
	switch c {
	case CategoryNature, CategoryEducation, CategoryFood, CategoryCafe:
		return true
	}
	return false
}

// IsDestination is true for sightseeing categories (nature, education).
func (c Category) IsDestination() bool {
	return c == CategoryNature || c == CategoryEducation
}

// IsEatery is true for eating categories (food, cafe).
func (c Category) IsEatery() bool {
	return c == CategoryFood || c == CategoryCafe
}

// CostKind tags how a venue's price should be read.
type CostKind string

const (
	CostTicket       CostKind = "ticket"
	CostMenuEstimate CostKind = "menu_estimate"
)

// CostSignal is a venue price tagged as a fixed entry ticket or an
// estimated per-person menu spend.
type CostSignal struct {
	Kind   CostKind `json:"kind"`
	Amount int64    `json:"amount"`
}

func Ticket(amount int64) CostSignal {
	return CostSignal{Kind: CostTicket, Amount: amount}
}

func MenuEstimate(amount int64) CostSignal {
	return CostSignal{Kind: CostMenuEstimate, Amount: amount}
}

// IsFree is true only for zero-priced tickets; a menu estimate is never free.
func (c CostSignal) IsFree() bool {
	return c.Kind == CostTicket && c.Amount == 0
}

// Venue represents a schedulable point of interest.
type Venue struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Address    string     `json:"address"`
	Categories []Category `json:"categories"`
	Cost       CostSignal `json:"cost"`

	// Display-only fields, opaque to scheduling.
	ImageRef    string `json:"image_ref,omitempty"`
	MapsURL     string `json:"maps_url,omitempty"`
	OpenHours   string `json:"open_hours,omitempty"`
	Description string `json:"description,omitempty"`
}

// PrimaryCategory is the first category of the venue, the one slot
// decisions are made on.
func (v Venue) PrimaryCategory() Category {
	if len(v.Categories) == 0 {
		return ""
	}
	return v.Categories[0]
}

// HasCategory reports whether the venue is tagged with c.
func (v Venue) HasCategory(c Category) bool {
	for _, vc := range v.Categories {
		if vc == c {
			return true
		}
	}
	return false
}
