package booking

import (
	"context"
	"fmt"
	"strings"

	"cityconnect/models"
)

// Book is the direct-form path: contact fields are validated and the slot must
// be available before anything is written.
func (s *DefaultReservationService) Book(ctx context.Context, req models.ReservationRequest) (*models.ReservationConfirmation, error) {
	if missing := req.MissingContactFields(); len(missing) > 0 {
		return nil, newBookingError("missingContact", ErrMissingContact,
			"please fill out all contact information before booking (missing: %s)", strings.Join(missing, ", "))
	}

	day, err := models.ParseUserDate(req.Date)
	if err != nil {
		return nil, newBookingError("invalidDate", ErrInvalidDate, "%v", err)
	}
	today := s.Now()
	if day.Before(startOfDay(today)) {
		return nil, newBookingError("pastDate", ErrPastDate, "%s is before today", req.Date)
	}

	slots, err := s.Schedule.AvailableSlots(ctx, req.ParkName, day)
	if err != nil {
		return nil, fmt.Errorf("load available slots: %w", err)
	}
	if !contains(slots, strings.TrimSpace(req.TimeSlot)) {
		return nil, newBookingError("slotUnavailable", ErrSlotUnavailable,
			"%s on %s at %s is not available", req.ParkName, req.Date, req.TimeSlot)
	}

	res, err := s.Commit(ctx, models.ReservationDraft{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Park:     strings.TrimSpace(req.ParkName),
		Date:     req.Date,
		TimeSlot: req.TimeSlot,
	})
	if err != nil {
		return nil, err
	}

	return &models.ReservationConfirmation{
		Reservation: res.Record,
		Message: fmt.Sprintf("Reservation confirmed for %s on %s at %s! You will receive a confirmation email shortly.",
			res.Record.ParkName, res.Record.Date, res.Record.TimeSlot),
	}, nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
