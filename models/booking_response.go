// models/booking_response.go
package models

// BookingResponse is what every booking-session endpoint returns: the draft,
// its current quote and slot list, and the notices raised by the operation.
type BookingResponse struct {
	Session      BookingSession `json:"session"`
	Quote        Quote          `json:"quote"`
	Availability AvailableSlots `json:"availability"`
	CartCount    int            `json:"cartCount"`
	Payment      *PaymentIntent `json:"payment,omitempty"`
	Reservation  *Reservation   `json:"reservation,omitempty"`
	Notices      []Notice       `json:"notices,omitempty"`
}

// Catalog is the static offer shown on the page.
type Catalog struct {
	Packages []PackageInfo `json:"packages"`
	AddOns   []AddOnInfo   `json:"addOns"`
	Deposit  Money         `json:"deposit"`
	AllSlots []string      `json:"allSlots"`
}
