// File: database/repository/reservation/crud.go
package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"indodjija/models"
)

func (r *mongoReservationRepo) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	return r.find(ctx, bson.M{"status": models.StatusConfirmed})
}

func (r *mongoReservationRepo) ListByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	return r.find(ctx, bson.M{"status": models.StatusConfirmed, "date": date})
}

func (r *mongoReservationRepo) find(ctx context.Context, filter bson.M) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "timeSlot", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, classify(err)
	}
	defer cursor.Close(ctx)

	reservations := []models.Reservation{}
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, classify(err)
	}
	return reservations, nil
}

// SaveReservation inserts a confirmed reservation. A duplicate key on the
// confirmed (date, timeSlot) index comes back as ErrSlotTaken.
func (r *mongoReservationRepo) SaveReservation(ctx context.Context, res models.Reservation) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now().UTC()
	}
	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		return nil, classify(err)
	}
	return &res, nil
}

// classify maps driver errors onto the repository sentinels.
func classify(err error) error {
	switch {
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrSlotTaken, err)
	case mongo.IsNetworkError(err), mongo.IsTimeout(err),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, mongo.ErrClientDisconnected):
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	default:
		return err
	}
}
