package models

import "time"

// ReservationStatus is the persisted status. The booking flow only ever
// writes StatusConfirmed.
type ReservationStatus string

const StatusConfirmed ReservationStatus = "confirmed"

// Reservation is a confirmed booking record.
type Reservation struct {
	ID            string            `bson:"id" json:"id"`                         // UUID
	PackageID     PackageID         `bson:"packageId" json:"packageId"`           // package variant
	Space         SpaceType         `bson:"space" json:"space"`                   // "open" | "closed"
	Date          string            `bson:"date" json:"date"`                     // "YYYY-MM-DD"
	TimeSlot      string            `bson:"timeSlot" json:"timeSlot"`             // slot label, e.g. "18:00 - 23:00"
	GuestCount    int               `bson:"guestCount" json:"guestCount"`         // children + adults for composite packages
	AddOns        AddOnSelection    `bson:"addOns" json:"addOns"`                 // snapshot at commit time
	TotalPrice    Price             `bson:"totalPrice" json:"totalPrice"`         // number or "by_agreement"
	DepositPaid   bool              `bson:"depositPaid" json:"depositPaid"`       // always true for confirmed records
	PaymentRef    string            `bson:"paymentRef,omitempty" json:"paymentRef,omitempty"`
	CustomerName  string            `bson:"customerName" json:"customerName"`
	CustomerEmail string            `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone string            `bson:"customerPhone" json:"customerPhone"`
	Status        ReservationStatus `bson:"status" json:"status"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
}
