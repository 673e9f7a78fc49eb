package models

import "time"

// DraftState is the position of a booking session in its lifecycle.
type DraftState string

const (
	StateDraft          DraftState = "draft"
	StatePaymentPending DraftState = "payment_pending"
	StateConfirmed      DraftState = "confirmed"
)

// Customer holds the contact fields of the booking form.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingSession is the draft aggregate kept between requests. It carries
// every input of the booking form so lifecycle guards can run on it alone.
type BookingSession struct {
	SessionID string           `json:"sessionId"`
	State     DraftState       `json:"state"`
	PackageID PackageID        `json:"packageId"`
	Space     SpaceType        `json:"space,omitempty"`
	Guests    GuestComposition `json:"guests"`
	Date      string           `json:"date,omitempty"`
	TimeSlot  string           `json:"timeSlot,omitempty"`
	AddOns    AddOnSelection   `json:"addOns"`
	Customer  Customer         `json:"customer"`

	// Set while PaymentPending. CheckoutAttempt changes every time the
	// draft enters PaymentPending and scopes the deposit idempotency key.
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
	CheckoutAttempt string `json:"checkoutAttempt,omitempty"`

	// Set once, on the transition to Confirmed.
	ReservationID string `json:"reservationId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AddOnStep asks for one step up or down of a metered add-on.
type AddOnStep struct {
	ID AddOnID `json:"id"`
	Up bool    `json:"up"`
}

// DraftChange is a partial update of a draft. Nil fields are left alone.
type DraftChange struct {
	PackageID *PackageID      `json:"packageId,omitempty"`
	Space     *SpaceType      `json:"space,omitempty"`
	Guests    *int            `json:"guests,omitempty"`
	Children  *int            `json:"children,omitempty"`
	Adults    *int            `json:"adults,omitempty"`
	Date      *string         `json:"date,omitempty"`
	TimeSlot  *string         `json:"timeSlot,omitempty"`
	AddOns    *AddOnSelection `json:"addOns,omitempty"`
	Steps     []AddOnStep     `json:"steps,omitempty"`
	Customer  *Customer       `json:"customer,omitempty"`
}
