package booking

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes carried by BookingError.
const (
	CodeValidation             = "validation"
	CodeSlotConflict           = "slot_conflict"
	CodePersistenceUnavailable = "persistence_unavailable"
	CodeSessionNotFound        = "session_not_found"
	CodeInvalidTransition      = "invalid_transition"
	CodeUnknownPackage         = "unknown_package"
	CodePaymentFailed          = "payment_failed"
)

var (
	ErrValidation             = errors.New("validation error")
	ErrSlotConflict           = errors.New("slot already booked")
	ErrPersistenceUnavailable = errors.New("reservation store unavailable")
	ErrSessionNotFound        = errors.New("booking session not found or expired")
	ErrInvalidTransition      = errors.New("invalid booking state transition")
	ErrUnknownPackage         = errors.New("unknown package")
	ErrPaymentFailed          = errors.New("payment initiation failed")
)

// BookingError is returned by every booking operation that fails. Err wraps
// the sentinel of its code, so errors.Is works against the Err* values.
type BookingError struct {
	Code    string
	Message string
	// Fields lists the offending inputs of a validation error.
	Fields []string
	Err    error
}

func (e *BookingError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if len(e.Fields) > 0 {
		msg += " [" + strings.Join(e.Fields, ", ") + "]"
	}
	return msg
}

func (e *BookingError) Unwrap() error { return e.Err }

func newBookingError(code, msg string, err error) error {
	return &BookingError{Code: code, Message: msg, Err: err}
}

func newValidationError(msg string, fields []string) error {
	return &BookingError{Code: CodeValidation, Message: msg, Fields: fields, Err: ErrValidation}
}

// wrapCause keeps both the sentinel and the underlying cause reachable.
func wrapCause(code, msg string, sentinel, cause error) error {
	return &BookingError{Code: code, Message: msg, Err: fmt.Errorf("%w: %w", sentinel, cause)}
}
