package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"indodjija/models"
)

// NotificationService delivers customer-facing reservation messages.
type NotificationService interface {
	SendReservationReminder(ctx context.Context, p models.ReminderPayload) error
}

// LogNotificationService records reminders in the structured log. The venue
// staff calls customers from the log; there is no push channel.
type LogNotificationService struct {
	logger *zap.Logger
}

func NewLogNotificationService(logger *zap.Logger) (*LogNotificationService, error) {
	if logger == nil {
		return nil, fmt.Errorf("notification service initialization error: logger is nil")
	}
	return &LogNotificationService{logger: logger}, nil
}

func (s *LogNotificationService) SendReservationReminder(ctx context.Context, p models.ReminderPayload) error {
	if p.ReservationID == "" {
		return fmt.Errorf("SendReservationReminder: missing reservation id")
	}
	s.logger.Info("Reservation reminder",
		zap.String("reservation_id", p.ReservationID),
		zap.String("package", string(p.PackageID)),
		zap.String("date", p.Date),
		zap.String("slot", p.TimeSlot),
		zap.String("customer", p.CustomerName),
		zap.String("phone", p.CustomerPhone),
		zap.String("email", p.CustomerEmail))
	return nil
}
