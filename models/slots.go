package models

// AvailableSlots is the slot list for one package on one date.
//
// DateSelected=false means no date was chosen yet, which is not the same as
// AllBooked (a date is chosen, the package has slots, none are left).
type AvailableSlots struct {
	PackageID    PackageID `json:"packageId"`
	Date         string    `json:"date,omitempty"`
	Slots        []string  `json:"slots"`
	DateSelected bool      `json:"dateSelected"`
	AllBooked    bool      `json:"allBooked"`
}

// Occupancy is the calendar bucket of a day.
type Occupancy string

const (
	OccupancyFree    Occupancy = "free"
	OccupancyPartial Occupancy = "partial"
	OccupancyFull    Occupancy = "full"
)

// DayStatus is one calendar cell.
type DayStatus struct {
	Date       string    `json:"date"`
	Status     Occupancy `json:"status"`
	Booked     int       `json:"booked"`
	Past       bool      `json:"past"`
	Selectable bool      `json:"selectable"`
}

// CalendarMonth is the projection of a displayed month.
type CalendarMonth struct {
	Year       int         `json:"year"`
	Month      int         `json:"month"`
	TotalSlots int         `json:"totalSlots"`
	Days       []DayStatus `json:"days"`
}
