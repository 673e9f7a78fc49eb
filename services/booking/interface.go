package booking

import (
	"context"

	"indodjija/models"
)

// BookingSessionService drives the public booking flow: one draft per
// session, moved Draft -> PaymentPending -> Confirmed.
type BookingSessionService interface {
	StartSession(ctx context.Context, packageID models.PackageID) (*models.BookingResponse, error)
	UpdateSession(ctx context.Context, sessionID string, change models.DraftChange) (*models.BookingResponse, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingResponse, error)
	Checkout(ctx context.Context, sessionID string) (*models.BookingResponse, error)
	Approve(ctx context.Context, sessionID, paymentRef string) (*models.BookingResponse, error)
	CancelSession(ctx context.Context, sessionID string) error

	Catalog() models.Catalog
	Availability(ctx context.Context, packageID models.PackageID, date string) (*models.AvailableSlots, error)
	// Calendar treats a zero year or month as the current one.
	Calendar(ctx context.Context, year, month int) (*models.CalendarMonth, error)
	ListReservations(ctx context.Context, date string) ([]models.Reservation, error)
}

// ReservationStore is the persistence collaborator. SaveReservation must
// fail distinctly when the (date, slot) pair is already confirmed.
type ReservationStore interface {
	ListReservations(ctx context.Context) ([]models.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]models.Reservation, error)
	SaveReservation(ctx context.Context, r models.Reservation) (*models.Reservation, error)
}

// SessionStore keeps drafts between requests. ClaimCommit reports false
// while another commit of the same session holds the claim.
type SessionStore interface {
	Save(ctx context.Context, s models.BookingSession) error
	Load(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
	ClaimCommit(ctx context.Context, sessionID string) (bool, error)
	ReleaseCommit(ctx context.Context, sessionID string) error
}

// PaymentGateway opens the deposit payment and checks it on approval.
type PaymentGateway interface {
	InitiateDeposit(ctx context.Context, req models.PaymentRequest) (*models.PaymentIntent, error)
	VerifyDeposit(ctx context.Context, intentID string) error
}

// ReminderScheduler queues the post-commit reminder of a reservation.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, r models.Reservation) error
}
