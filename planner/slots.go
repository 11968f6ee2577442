package planner

type slotRole int

const (
	roleSightseeing slotRole = iota
	roleMeal
	roleHangout
)

// Slot is a fixed position in the day with its own duration label.
type Slot struct {
	Name     string
	Time     string
	Duration string
	role     slotRole
}

// DaySlots is the day shape every itinerary day follows.
var DaySlots = []Slot{
	{Name: "morning", Time: "08:00", Duration: "2 hours", role: roleSightseeing},
	{Name: "midday", Time: "12:00", Duration: "1 hour", role: roleMeal},
	{Name: "afternoon", Time: "14:00", Duration: "2 hours", role: roleSightseeing},
	{Name: "evening", Time: "18:30", Duration: "1.5 hours", role: roleHangout},
}

func SlotsPerDay() int {
	return len(DaySlots)
}
