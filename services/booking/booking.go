// File: booking/booking.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	reservationRepo "indodjija/database/repository/reservation"
	"indodjija/models"
)

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Packages  *Catalog
	Sessions  SessionStore
	Store     ReservationStore
	Snapshot  *ReservationSnapshot
	Payments  PaymentGateway
	Reminders ReminderScheduler
	Logger    *zap.Logger

	Currency string
	// Location is the venue's timezone; it decides which dates are past.
	Location *time.Location
	Now      func() time.Time
}

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingSessionService) today() time.Time {
	if s.Location != nil {
		return s.now().In(s.Location)
	}
	return s.now()
}

// StartSession creates a new draft for the package and stores it.
func (s *DefaultBookingSessionService) StartSession(ctx context.Context, packageID models.PackageID) (*models.BookingResponse, error) {
	v, err := s.Packages.Get(packageID)
	if err != nil {
		return nil, err
	}
	draft := NewDraft(v, s.now())
	if err := s.Sessions.Save(ctx, draft); err != nil {
		return nil, err
	}
	s.Logger.Info("Booking session started",
		zap.String("session_id", draft.SessionID),
		zap.String("package", string(draft.PackageID)))
	return s.view(ctx, draft, nil), nil
}

// UpdateSession applies a draft change. A rejected change leaves the stored
// draft untouched.
func (s *DefaultBookingSessionService) UpdateSession(ctx context.Context, sessionID string, change models.DraftChange) (*models.BookingResponse, error) {
	draft, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	confirmed, err := s.confirmed(ctx)
	if err != nil {
		return nil, err
	}

	next, notices, err := ApplyChange(s.Packages, *draft, change, confirmed, s.today())
	if err != nil {
		return nil, err
	}
	if draft.State == models.StatePaymentPending && next.State == models.StateDraft {
		s.logTransition(next, models.StatePaymentPending, models.StateDraft)
	}
	next.UpdatedAt = s.now()
	if err := s.Sessions.Save(ctx, next); err != nil {
		return nil, err
	}
	return s.view(ctx, next, notices), nil
}

func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingResponse, error) {
	draft, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, *draft, nil), nil
}

// Checkout moves Draft -> PaymentPending and opens the deposit payment.
// Repeating it while PaymentPending reopens the same payment.
func (s *DefaultBookingSessionService) Checkout(ctx context.Context, sessionID string) (*models.BookingResponse, error) {
	draft, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.State != models.StateDraft && draft.State != models.StatePaymentPending {
		return nil, newBookingError(CodeInvalidTransition, fmt.Sprintf("cannot check out a %s booking", draft.State), ErrInvalidTransition)
	}
	v, err := s.Packages.Get(draft.PackageID)
	if err != nil {
		return nil, err
	}
	if err := ValidateCheckout(v, *draft); err != nil {
		s.Logger.Debug("Checkout rejected", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}

	confirmed, err := s.confirmed(ctx)
	if err != nil {
		return nil, err
	}
	if !IsSlotFree(draft.Date, draft.TimeSlot, confirmed) {
		return nil, newBookingError(CodeSlotConflict, "time slot was just booked, choose another", ErrSlotConflict)
	}

	attempt := draft.CheckoutAttempt
	if draft.State == models.StateDraft || attempt == "" {
		attempt = uuid.New().String()
	}
	req := models.PaymentRequest{
		SessionID:   draft.SessionID,
		Amount:      models.DepositAmount,
		Currency:    s.Currency,
		Description: fmt.Sprintf("Deposit for %s on %s, %s", v.Name, draft.Date, draft.TimeSlot),
		Email:       draft.Customer.Email,
		Metadata: map[string]string{
			"session_id": draft.SessionID,
			"package":    string(draft.PackageID),
			"date":       draft.Date,
			"time_slot":  draft.TimeSlot,
		},
	}
	req.Idempotency = depositIdempotencyKey(attempt, req)

	intent, err := s.Payments.InitiateDeposit(ctx, req)
	if err != nil {
		s.Logger.Error("Deposit payment initiation failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil, wrapCause(CodePaymentFailed, "could not start the deposit payment, try again", ErrPaymentFailed, err)
	}

	prev := draft.State
	next := *draft
	next.State = models.StatePaymentPending
	next.PaymentIntentID = intent.ID
	next.CheckoutAttempt = attempt
	next.UpdatedAt = s.now()
	if err := s.Sessions.Save(ctx, next); err != nil {
		return nil, err
	}
	if prev != next.State {
		s.logTransition(next, prev, next.State)
	}

	resp := s.view(ctx, next, []models.Notice{
		models.InfoNotice(fmt.Sprintf("Pay the %s deposit to finalize your booking.", models.DepositAmount)),
	})
	resp.Payment = intent
	return resp, nil
}

// Approve is the payment-approved callback: PaymentPending -> Confirmed. It
// writes the reservation and resets the draft for a new booking.
//
// Only one approval per session runs at a time; an overlapping one fails
// with ErrInvalidTransition instead of racing its twin into the store.
func (s *DefaultBookingSessionService) Approve(ctx context.Context, sessionID, paymentRef string) (*models.BookingResponse, error) {
	claimed, err := s.Sessions.ClaimCommit(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, newBookingError(CodeInvalidTransition, "this booking is already being confirmed", ErrInvalidTransition)
	}
	defer func() {
		if err := s.Sessions.ReleaseCommit(context.WithoutCancel(ctx), sessionID); err != nil {
			s.Logger.Warn("Failed to release commit claim", zap.String("session_id", sessionID), zap.Error(err))
		}
	}()

	// Loaded under the claim so a finished twin's reset is visible.
	draft, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.State != models.StatePaymentPending {
		return nil, newBookingError(CodeInvalidTransition, "no deposit payment is pending for this booking", ErrInvalidTransition)
	}
	v, err := s.Packages.Get(draft.PackageID)
	if err != nil {
		return nil, err
	}

	if draft.PaymentIntentID != "" {
		if err := s.Payments.VerifyDeposit(ctx, draft.PaymentIntentID); err != nil {
			s.Logger.Warn("Deposit not verified", zap.String("session_id", sessionID), zap.Error(err))
			return nil, wrapCause(CodePaymentFailed, "deposit payment was not completed", ErrPaymentFailed, err)
		}
	}
	if paymentRef == "" {
		paymentRef = draft.PaymentIntentID
	}

	record := BuildReservation(v, *draft, paymentRef, s.now().UTC())
	saved, err := s.Store.SaveReservation(ctx, record)
	switch {
	case errors.Is(err, reservationRepo.ErrSlotTaken):
		back := *draft
		back.State = models.StateDraft
		back.PaymentIntentID = ""
		back.CheckoutAttempt = ""
		back.UpdatedAt = s.now()
		msg := "this time slot was booked by someone else, choose another"
		if serr := s.Sessions.Save(ctx, back); serr != nil {
			s.Logger.Error("Failed to store draft after slot conflict", zap.String("session_id", sessionID), zap.Error(serr))
			msg += "; your booking could not be reopened, reload the page"
		}
		s.refreshSnapshot(ctx)
		s.logTransition(back, models.StatePaymentPending, models.StateDraft)
		return nil, wrapCause(CodeSlotConflict, msg, ErrSlotConflict, err)
	case errors.Is(err, reservationRepo.ErrStoreUnavailable):
		s.Logger.Error("Reservation store unavailable on commit", zap.String("session_id", sessionID), zap.Error(err))
		return nil, wrapCause(CodePersistenceUnavailable, "could not save the reservation, try again", ErrPersistenceUnavailable, err)
	case err != nil:
		s.Logger.Error("Reservation commit failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil, fmt.Errorf("save reservation: %w", err)
	}

	confirmedDraft := *draft
	confirmedDraft.State = models.StateConfirmed
	s.logTransition(confirmedDraft, models.StatePaymentPending, models.StateConfirmed)

	s.refreshSnapshot(ctx)
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, *saved); err != nil {
			s.Logger.Error("Failed to schedule reservation reminder", zap.String("reservation_id", saved.ID), zap.Error(err))
		}
	}

	next := ResetAfterCommit(*draft, saved.ID, s.now())
	notices := []models.Notice{
		models.SuccessNotice(fmt.Sprintf("Reservation confirmed for %s, %s.", saved.Date, saved.TimeSlot)),
	}
	if err := s.Sessions.Save(ctx, next); err != nil {
		s.Logger.Error("Failed to reset draft after commit", zap.String("session_id", sessionID), zap.Error(err))
		notices = append(notices, models.ErrorNotice("Your booking form could not be reset, reload the page before booking again."))
	}

	resp := s.view(ctx, next, notices)
	resp.Reservation = saved
	return resp, nil
}

func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.Logger.Info("Booking session abandoned", zap.String("session_id", sessionID))
	return nil
}

func (s *DefaultBookingSessionService) Catalog() models.Catalog {
	return s.Packages.Describe()
}

func (s *DefaultBookingSessionService) Availability(ctx context.Context, packageID models.PackageID, date string) (*models.AvailableSlots, error) {
	v, err := s.Packages.Get(packageID)
	if err != nil {
		return nil, err
	}
	if date != "" {
		if _, err := time.Parse(DateLayout, date); err != nil {
			return nil, newValidationError("date must be YYYY-MM-DD", []string{"date"})
		}
	}
	confirmed, err := s.confirmed(ctx)
	if err != nil {
		return nil, err
	}
	slots := AvailableSlots(v, date, confirmed)
	return &slots, nil
}

// Calendar projects a month. A zero year or month means the current one in
// the venue timezone.
func (s *DefaultBookingSessionService) Calendar(ctx context.Context, year, month int) (*models.CalendarMonth, error) {
	if year == 0 || month == 0 {
		today := s.today()
		if year == 0 {
			year = today.Year()
		}
		if month == 0 {
			month = int(today.Month())
		}
	}
	confirmed, err := s.confirmed(ctx)
	if err != nil {
		return nil, err
	}
	cal, err := ProjectMonth(year, time.Month(month), s.today(), confirmed, len(s.Packages.AllDaySlots()))
	if err != nil {
		return nil, err
	}
	return &cal, nil
}

// ListReservations reads the store directly, bypassing the snapshot. A
// non-empty date is matched by the store.
func (s *DefaultBookingSessionService) ListReservations(ctx context.Context, date string) ([]models.Reservation, error) {
	var (
		out []models.Reservation
		err error
	)
	if date == "" {
		out, err = s.Store.ListReservations(ctx)
	} else {
		if _, perr := time.Parse(DateLayout, date); perr != nil {
			return nil, newValidationError("date must be YYYY-MM-DD", []string{"date"})
		}
		out, err = s.Store.ListByDate(ctx, date)
	}
	if err != nil {
		return nil, wrapCause(CodePersistenceUnavailable, "could not load reservations", ErrPersistenceUnavailable, err)
	}
	return out, nil
}

func (s *DefaultBookingSessionService) confirmed(ctx context.Context) ([]models.Reservation, error) {
	confirmed, err := s.Snapshot.Confirmed(ctx)
	if err != nil {
		s.Logger.Error("Reservation snapshot unavailable", zap.Error(err))
		return nil, wrapCause(CodePersistenceUnavailable, "reservations are temporarily unavailable, try again", ErrPersistenceUnavailable, err)
	}
	return confirmed, nil
}

func (s *DefaultBookingSessionService) refreshSnapshot(ctx context.Context) {
	if err := s.Snapshot.Refresh(ctx); err != nil {
		s.Logger.Warn("Reservation snapshot refresh failed", zap.Error(err))
	}
}

// view assembles the response for a draft. A snapshot failure degrades to an
// empty slot list plus an error notice.
func (s *DefaultBookingSessionService) view(ctx context.Context, draft models.BookingSession, notices []models.Notice) *models.BookingResponse {
	resp := &models.BookingResponse{
		Session:   draft,
		CartCount: CartCount(draft),
		Notices:   notices,
	}
	v, err := s.Packages.Get(draft.PackageID)
	if err != nil {
		resp.Notices = append(resp.Notices, models.ErrorNotice(err.Error()))
		return resp
	}
	resp.Quote = BuildQuote(v, draft.Guests, draft.TimeSlot, draft.AddOns)

	confirmed, err := s.confirmed(ctx)
	if err != nil {
		resp.Availability = models.AvailableSlots{PackageID: v.ID, Date: draft.Date, Slots: []string{}, DateSelected: draft.Date != ""}
		resp.Notices = append(resp.Notices, models.ErrorNotice("Availability could not be loaded, try again shortly."))
		return resp
	}
	resp.Availability = AvailableSlots(v, draft.Date, confirmed)
	return resp
}

func (s *DefaultBookingSessionService) logTransition(draft models.BookingSession, from, to models.DraftState) {
	s.Logger.Info("Booking state transition",
		zap.String("session_id", draft.SessionID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.String("package", string(draft.PackageID)),
		zap.String("date", draft.Date),
		zap.String("slot", draft.TimeSlot))
}

// depositIdempotencyKey scopes the key to one checkout attempt and to the
// exact request: a repeated call replays the same intent, an edited one gets
// a new key.
func depositIdempotencyKey(attempt string, req models.PaymentRequest) string {
	fingerprint, _ := json.Marshal(struct {
		Amount      models.Money
		Currency    string
		Description string
		Email       string
		Metadata    map[string]string
	}{req.Amount, req.Currency, req.Description, req.Email, req.Metadata})
	return fmt.Sprintf("deposit:%s:%s", attempt, uuid.NewSHA1(uuid.NameSpaceURL, fingerprint))
}
