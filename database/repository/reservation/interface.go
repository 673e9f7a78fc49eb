// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"errors"

	"indodjija/config"
	"indodjija/database"
	"indodjija/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrSlotTaken is returned when a confirmed reservation already holds the
	// same date and slot.
	ErrSlotTaken = errors.New("date and time slot already reserved")
	// ErrStoreUnavailable wraps network, timeout and server selection failures.
	ErrStoreUnavailable = errors.New("reservation store unavailable")
)

type ReservationRepository interface {
	ListReservations(ctx context.Context) ([]models.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]models.Reservation, error)
	SaveReservation(ctx context.Context, r models.Reservation) (*models.Reservation, error)
	EnsureIndexes() error
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return NewReservationRepoFromCollection(db.Collection("reservations"))
}

func NewReservationRepoFromCollection(coll *mongo.Collection) ReservationRepository {
	return &mongoReservationRepo{coll: coll}
}
