package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	reservationRepo "indodjija/database/repository/reservation"
	"indodjija/models"
)

var testNow = time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

const testDate = "2025-06-20"

// fakeStore enforces the confirmed (date, slot) uniqueness the Mongo index
// gives in production.
type fakeStore struct {
	mu        sync.Mutex
	items     []models.Reservation
	listErr   error
	saveErr   error
	saveCalls int
	dayCalls  int

	// entered/gate hold SaveReservation open when set.
	entered chan struct{}
	gate    chan struct{}
}

func (f *fakeStore) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Reservation, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeStore) ListByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dayCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Reservation{}
	for _, r := range f.items {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) SaveReservation(ctx context.Context, r models.Reservation) (*models.Reservation, error) {
	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	for _, existing := range f.items {
		if existing.Status == models.StatusConfirmed && existing.Date == r.Date && existing.TimeSlot == r.TimeSlot {
			return nil, fmt.Errorf("%w: duplicate key", reservationRepo.ErrSlotTaken)
		}
	}
	f.items = append(f.items, r)
	return &r, nil
}

func (f *fakeStore) put(r models.Reservation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, r)
}

func (f *fakeStore) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

type fakeGateway struct {
	initErr     error
	verifyErr   error
	initCalls   int
	verifyCalls int
	lastRequest models.PaymentRequest
	requests    []models.PaymentRequest
}

func (g *fakeGateway) InitiateDeposit(ctx context.Context, req models.PaymentRequest) (*models.PaymentIntent, error) {
	g.initCalls++
	g.lastRequest = req
	g.requests = append(g.requests, req)
	if g.initErr != nil {
		return nil, g.initErr
	}
	return &models.PaymentIntent{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
		Amount:       req.Amount,
		Currency:     req.Currency,
		Status:       "requires_payment_method",
	}, nil
}

func (g *fakeGateway) VerifyDeposit(ctx context.Context, intentID string) error {
	g.verifyCalls++
	return g.verifyErr
}

type fakeReminders struct {
	scheduled []models.Reservation
	err       error
}

func (r *fakeReminders) ScheduleReminder(ctx context.Context, res models.Reservation) error {
	if r.err != nil {
		return r.err
	}
	r.scheduled = append(r.scheduled, res)
	return nil
}

// flakySessions fails Save on demand and passes everything else through.
type flakySessions struct {
	*RedisSessionStore
	saveErr error
}

func (f *flakySessions) Save(ctx context.Context, s models.BookingSession) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	return f.RedisSessionStore.Save(ctx, s)
}

type testEnv struct {
	svc       *DefaultBookingSessionService
	store     *fakeStore
	gateway   *fakeGateway
	reminders *fakeReminders
	redis     *miniredis.Miniredis
	sessions  *flakySessions
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	logger := zap.NewNop()
	store := &fakeStore{}
	gw := &fakeGateway{}
	rem := &fakeReminders{}
	sessions := &flakySessions{RedisSessionStore: NewRedisSessionStore(client, time.Hour)}

	svc := &DefaultBookingSessionService{
		Packages:  NewCatalog(),
		Sessions:  sessions,
		Store:     store,
		Snapshot:  NewReservationSnapshot(store, time.Minute, logger),
		Payments:  gw,
		Reminders: rem,
		Logger:    logger,
		Currency:  "eur",
		Now:       func() time.Time { return testNow },
	}
	return &testEnv{svc: svc, store: store, gateway: gw, reminders: rem, redis: mr, sessions: sessions}
}

func confirmedAt(pkg models.PackageID, date, slot string) models.Reservation {
	return models.Reservation{
		ID:        fmt.Sprintf("%s-%s-%s", pkg, date, slot),
		PackageID: pkg,
		Space:     models.SpaceOpen,
		Date:      date,
		TimeSlot:  slot,
		Status:    models.StatusConfirmed,
	}
}

func ptr[T any](v T) *T { return &v }
