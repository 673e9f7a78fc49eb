package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"indodjija/models"
)

// NewDraft returns an empty draft for the given variant.
func NewDraft(v *PackageVariant, now time.Time) models.BookingSession {
	return models.BookingSession{
		SessionID: uuid.New().String(),
		State:     models.StateDraft,
		PackageID: v.ID,
		Guests:    DefaultGuests(v),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyChange applies a partial update to a draft and returns the new draft.
// The input is never modified, so a failed change leaves the caller's draft
// intact. confirmed is the current reservation snapshot and today decides
// whether a date is in the past.
//
// Changing package, space, date or slot while PaymentPending sends the draft
// back to Draft: the quote the payment was opened for no longer holds.
func ApplyChange(cat *Catalog, s models.BookingSession, ch models.DraftChange, confirmed []models.Reservation, today time.Time) (models.BookingSession, []models.Notice, error) {
	var notices []models.Notice
	next := s

	v, err := cat.Get(next.PackageID)
	if err != nil {
		return s, nil, err
	}

	invalidatesPayment := false

	if ch.PackageID != nil && *ch.PackageID != next.PackageID {
		nv, err := cat.Get(*ch.PackageID)
		if err != nil {
			return s, nil, err
		}
		if nv.Composite != v.Composite {
			next.Guests = DefaultGuests(nv)
		}
		v = nv
		next.PackageID = nv.ID
		next.Date = ""
		next.TimeSlot = ""
		invalidatesPayment = true
	}

	if ch.Space != nil && *ch.Space != next.Space {
		if !ch.Space.Valid() {
			return s, nil, newValidationError("space must be open or closed", []string{"space"})
		}
		next.Space = *ch.Space
		invalidatesPayment = true
	}

	if ch.Guests != nil {
		next.Guests.Guests = *ch.Guests
	}
	if ch.Children != nil {
		next.Guests.Children = *ch.Children
	}
	if ch.Adults != nil {
		next.Guests.Adults = *ch.Adults
	}

	if ch.Date != nil && *ch.Date != next.Date {
		if *ch.Date != "" {
			past, err := IsPastDate(*ch.Date, today)
			if err != nil {
				return s, nil, newValidationError("date must be YYYY-MM-DD", []string{"date"})
			}
			if past {
				return s, nil, newValidationError("date is in the past", []string{"date"})
			}
		}
		next.Date = *ch.Date
		invalidatesPayment = true
		if next.TimeSlot != "" && (next.Date == "" || !IsSlotFree(next.Date, next.TimeSlot, confirmed)) {
			next.TimeSlot = ""
			notices = append(notices, models.InfoNotice("Selected time slot is not available on this date, choose another."))
		}
	}

	if ch.TimeSlot != nil && *ch.TimeSlot != next.TimeSlot {
		slot := *ch.TimeSlot
		if slot != "" {
			if next.Date == "" {
				return s, nil, newValidationError("choose a date before a time slot", []string{"date"})
			}
			if !v.HasSlot(slot) {
				return s, nil, newValidationError("time slot is not offered by this package", []string{"timeSlot"})
			}
			if !IsSlotFree(next.Date, slot, confirmed) {
				return s, nil, newBookingError(CodeSlotConflict, "time slot is already booked", ErrSlotConflict)
			}
		}
		next.TimeSlot = slot
		invalidatesPayment = true
	}

	if ch.AddOns != nil {
		if err := ValidateAddOns(*ch.AddOns); err != nil {
			return s, nil, err
		}
		next.AddOns = *ch.AddOns
	}
	for _, step := range ch.Steps {
		sel, err := StepAddOn(next.AddOns, step.ID, step.Up)
		if err != nil {
			return s, nil, err
		}
		next.AddOns = sel
	}

	if ch.Customer != nil {
		next.Customer = *ch.Customer
	}

	next.Guests = GuardCapacity(v, next.Space, next.Guests)

	if invalidatesPayment && next.State == models.StatePaymentPending {
		next.State = models.StateDraft
		next.PaymentIntentID = ""
		next.CheckoutAttempt = ""
		notices = append(notices, models.InfoNotice("Booking details changed, pay the deposit again to finalize."))
	}
	return next, notices, nil
}

// ValidateCheckout guards Draft -> PaymentPending.
func ValidateCheckout(v *PackageVariant, s models.BookingSession) error {
	var missing []string
	if s.Customer.Name == "" {
		missing = append(missing, "customer.name")
	}
	if s.Customer.Phone == "" {
		missing = append(missing, "customer.phone")
	}
	if s.Date == "" {
		missing = append(missing, "date")
	}
	if s.TimeSlot == "" {
		missing = append(missing, "timeSlot")
	}
	if !s.Space.Valid() {
		missing = append(missing, "space")
	}
	if len(missing) > 0 {
		return newValidationError("please fill in all required fields", missing)
	}
	if !v.HasSlot(s.TimeSlot) {
		return newValidationError("time slot is not offered by this package", []string{"timeSlot"})
	}
	if short := belowMinimum(GuardCapacity(v, s.Space, s.Guests)); len(short) > 0 {
		return newValidationError(fmt.Sprintf("at least %d guests per group are required", MinGroupSize), short)
	}
	return nil
}

// BuildReservation derives the record written on PaymentPending ->
// Confirmed. Guest count and total are recomputed from the draft.
func BuildReservation(v *PackageVariant, s models.BookingSession, paymentRef string, now time.Time) models.Reservation {
	g := GuardCapacity(v, s.Space, s.Guests)
	return models.Reservation{
		ID:            uuid.New().String(),
		PackageID:     v.ID,
		Space:         s.Space,
		Date:          s.Date,
		TimeSlot:      s.TimeSlot,
		GuestCount:    g.Total(),
		AddOns:        s.AddOns,
		TotalPrice:    ComputeTotal(v, g, s.TimeSlot, s.AddOns),
		DepositPaid:   true,
		PaymentRef:    paymentRef,
		CustomerName:  s.Customer.Name,
		CustomerEmail: s.Customer.Email,
		CustomerPhone: s.Customer.Phone,
		Status:        models.StatusConfirmed,
		CreatedAt:     now,
	}
}

// ResetAfterCommit clears the per-booking fields so the same session can
// start a new booking. Package, space, guests and add-ons are kept.
func ResetAfterCommit(s models.BookingSession, reservationID string, now time.Time) models.BookingSession {
	s.State = models.StateDraft
	s.Date = ""
	s.TimeSlot = ""
	s.PaymentIntentID = ""
	s.CheckoutAttempt = ""
	s.Customer = models.Customer{}
	s.ReservationID = reservationID
	s.UpdatedAt = now
	return s
}

// CartCount is 1 once a date and a slot are chosen.
func CartCount(s models.BookingSession) int {
	if s.Date != "" && s.TimeSlot != "" {
		return 1
	}
	return 0
}
