package booking

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"indodjija/models"
)

// ReservationSnapshot serves availability and calendar reads from a copy of
// the confirmed reservations refreshed on an interval. Commits call Refresh
// directly so the committing session never sees its own slot as free.
type ReservationSnapshot struct {
	store    ReservationStore
	interval time.Duration
	logger   *zap.Logger

	mu     sync.RWMutex
	items  []models.Reservation
	loaded bool
}

func NewReservationSnapshot(store ReservationStore, interval time.Duration, logger *zap.Logger) *ReservationSnapshot {
	return &ReservationSnapshot{store: store, interval: interval, logger: logger}
}

// Start refreshes in the background until ctx is done.
func (s *ReservationSnapshot) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Refresh(ctx); err != nil {
					s.logger.Warn("reservation snapshot refresh failed", zap.Error(err))
				}
			}
		}
	}()
}

// Refresh reloads the snapshot from the store.
func (s *ReservationSnapshot) Refresh(ctx context.Context) error {
	items, err := s.store.ListReservations(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Confirmed returns the snapshot, loading it synchronously on first use. A
// stale snapshot is preferred over an error once something was loaded.
func (s *ReservationSnapshot) Confirmed(ctx context.Context) ([]models.Reservation, error) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		if err := s.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Reservation, len(s.items))
	copy(out, s.items)
	return out, nil
}
