package booking

import (
	"context"
	"fmt"
	"strings"

	"cityconnect/models"

	"go.uber.org/zap"
)

// Commit flips the matching schedule entry and then appends the reservation to
// the log. A failed flip writes nothing. After a failed append the slot is
// already booked, so retrying the same draft finds nothing to flip and appends
// once. The two writes are not atomic and availability is not re-checked here.
func (s *DefaultReservationService) Commit(ctx context.Context, draft models.ReservationDraft) (*CommitResult, error) {
	day, err := models.ParseUserDate(draft.Date)
	if err != nil {
		return nil, newBookingError("invalidDate", ErrInvalidDate, "%v", err)
	}

	record := draft.Record()
	record.Date = day.Format(models.DateLayout)
	record.TimeSlot = strings.TrimSpace(record.TimeSlot)

	flipped, err := s.Schedule.MarkBooked(ctx, record.ParkName, day, record.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("mark slot booked: %w", err)
	}
	if !flipped {
		s.Logger.Warn("Recording reservation without a matching available slot",
			zap.String("park", record.ParkName),
			zap.String("date", record.Date),
			zap.String("timeSlot", record.TimeSlot))
	}

	if err := s.Log.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("append reservation: %w", err)
	}

	s.notify(ctx, record)
	return &CommitResult{Record: record, SlotFlipped: flipped}, nil
}

func (s *DefaultReservationService) notify(ctx context.Context, record models.ReservationRecord) {
	if s.Notifier == nil {
		return
	}
	payload := models.ConfirmationPayload{
		Name:     record.Name,
		Email:    record.Email,
		ParkName: record.ParkName,
		Date:     record.Date,
		TimeSlot: record.TimeSlot,
	}
	if err := s.Notifier.NotifyConfirmation(ctx, payload); err != nil {
		s.Logger.Error("Failed to queue confirmation", zap.String("email", record.Email), zap.Error(err))
	}
}
