package booking

import (
	"context"
	"time"

	reservationRepo "cityconnect/database/repository/reservation"
	scheduleRepo "cityconnect/database/repository/schedule"
	"cityconnect/models"

	"go.uber.org/zap"
)

// Notifier sends the booking confirmation to the guest.
type Notifier interface {
	NotifyConfirmation(ctx context.Context, payload models.ConfirmationPayload) error
}

// ReservationService commits bookings from either the chat flow or the form.
type ReservationService interface {
	Commit(ctx context.Context, draft models.ReservationDraft) (*CommitResult, error)
	Book(ctx context.Context, req models.ReservationRequest) (*models.ReservationConfirmation, error)
}

// CommitResult describes what a commit wrote.
type CommitResult struct {
	Record models.ReservationRecord
	// SlotFlipped is false when no available schedule entry matched.
	SlotFlipped bool
}

// DefaultReservationService implements ReservationService.
type DefaultReservationService struct {
	Schedule scheduleRepo.ScheduleRepository
	Log      reservationRepo.ReservationRepository
	Notifier Notifier
	Logger   *zap.Logger
	Now      func() time.Time
}

func NewReservationService(
	schedule scheduleRepo.ScheduleRepository,
	log reservationRepo.ReservationRepository,
	notifier Notifier,
	logger *zap.Logger,
) *DefaultReservationService {
	return &DefaultReservationService{
		Schedule: schedule,
		Log:      log,
		Notifier: notifier,
		Logger:   logger,
		Now:      time.Now,
	}
}
