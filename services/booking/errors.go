package booking

import (
	"errors"
	"fmt"
)

var (
	ErrMissingContact  = errors.New("missing contact information")
	ErrInvalidDate     = errors.New("invalid date")
	ErrPastDate        = errors.New("date is in the past")
	ErrSlotUnavailable = errors.New("time slot is not available")
)

// BookingError carries a machine-readable code next to the message shown to users.
type BookingError struct {
	Code    string
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

func newBookingError(code string, err error, format string, args ...interface{}) error {
	return &BookingError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}
