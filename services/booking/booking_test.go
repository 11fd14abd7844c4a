package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cityconnect/models"
	"cityconnect/services/booking"
	"cityconnect/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(notifier booking.Notifier) (*booking.DefaultReservationService, *mocks.MockScheduleRepository, *mocks.MockReservationRepository) {
	schedule := new(mocks.MockScheduleRepository)
	log := new(mocks.MockReservationRepository)
	svc := booking.NewReservationService(schedule, log, notifier, zap.NewNop())
	svc.Now = func() time.Time { return time.Date(2025, 5, 20, 15, 0, 0, 0, time.UTC) }
	return svc, schedule, log
}

var completeDraft = models.ReservationDraft{
	Name:     "Ada Lovelace",
	Email:    "ada@example.com",
	Phone:    "555-0100",
	Park:     "Roosevelt Park",
	Date:     "2025-06-01",
	TimeSlot: " 10:00-11:00 ",
}

func TestCommit_MarksBookedThenAppends(t *testing.T) {
	notifier := new(mocks.MockNotifier)
	svc, schedule, log := newService(notifier)
	ctx := context.Background()

	want := models.ReservationRecord{
		Name: "Ada Lovelace", Email: "ada@example.com", Phone: "555-0100",
		ParkName: "Roosevelt Park", Date: "2025-06-01", TimeSlot: "10:00-11:00",
	}
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	flip := schedule.On("MarkBooked", mock.Anything, "Roosevelt Park", day, "10:00-11:00").Return(true, nil).Once()
	log.On("Append", mock.Anything, want).Return(nil).Once().NotBefore(flip)
	notifier.On("NotifyConfirmation", mock.Anything, models.ConfirmationPayload{
		Name: "Ada Lovelace", Email: "ada@example.com", ParkName: "Roosevelt Park", Date: "2025-06-01", TimeSlot: "10:00-11:00",
	}).Return(nil).Once()

	res, err := svc.Commit(ctx, completeDraft)
	require.NoError(t, err)
	assert.Equal(t, want, res.Record)
	assert.True(t, res.SlotFlipped)

	log.AssertExpectations(t)
	schedule.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCommit_NoMatchingSlotStillRecords(t *testing.T) {
	svc, schedule, log := newService(nil)

	log.On("Append", mock.Anything, mock.Anything).Return(nil)
	schedule.On("MarkBooked", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	res, err := svc.Commit(context.Background(), completeDraft)
	require.NoError(t, err)
	assert.False(t, res.SlotFlipped)
}

func TestCommit_InvalidDate(t *testing.T) {
	svc, schedule, log := newService(nil)

	draft := completeDraft
	draft.Date = "June 1"
	_, err := svc.Commit(context.Background(), draft)

	assert.ErrorIs(t, err, booking.ErrInvalidDate)
	var bErr *booking.BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, "invalidDate", bErr.Code)
	log.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	schedule.AssertNotCalled(t, "MarkBooked", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCommit_WriteFailures(t *testing.T) {
	t.Run("mark booked fails", func(t *testing.T) {
		notifier := new(mocks.MockNotifier)
		svc, schedule, log := newService(notifier)
		schedule.On("MarkBooked", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("locked"))

		_, err := svc.Commit(context.Background(), completeDraft)
		assert.ErrorContains(t, err, "locked")
		log.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "NotifyConfirmation", mock.Anything, mock.Anything)
	})

	t.Run("append fails", func(t *testing.T) {
		notifier := new(mocks.MockNotifier)
		svc, schedule, log := newService(notifier)
		schedule.On("MarkBooked", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
		log.On("Append", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		_, err := svc.Commit(context.Background(), completeDraft)
		assert.ErrorContains(t, err, "disk full")
		notifier.AssertNotCalled(t, "NotifyConfirmation", mock.Anything, mock.Anything)
	})
}

func TestCommit_NotifierFailureIsNotFatal(t *testing.T) {
	notifier := new(mocks.MockNotifier)
	svc, schedule, log := newService(notifier)
	log.On("Append", mock.Anything, mock.Anything).Return(nil)
	schedule.On("MarkBooked", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	notifier.On("NotifyConfirmation", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	_, err := svc.Commit(context.Background(), completeDraft)
	assert.NoError(t, err)
}

func TestBook_Validation(t *testing.T) {
	valid := models.ReservationRequest{
		Name: "Ada", Email: "ada@example.com", Phone: "555-0100",
		ParkName: "Roosevelt Park", Date: "2025-06-01", TimeSlot: "10:00-11:00",
	}

	tests := []struct {
		name    string
		mutate  func(r *models.ReservationRequest)
		slots   []string
		wantErr error
	}{
		{"missing contact", func(r *models.ReservationRequest) { r.Email = ""; r.Phone = " " }, nil, booking.ErrMissingContact},
		{"bad date", func(r *models.ReservationRequest) { r.Date = "06/01/2025" }, nil, booking.ErrInvalidDate},
		{"past date", func(r *models.ReservationRequest) { r.Date = "2025-05-19" }, nil, booking.ErrPastDate},
		{"slot taken", func(r *models.ReservationRequest) {}, []string{"11:00-12:00"}, booking.ErrSlotUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, schedule, log := newService(nil)
			if tt.slots != nil {
				schedule.On("AvailableSlots", mock.Anything, "Roosevelt Park", mock.Anything).Return(tt.slots, nil)
			}

			req := valid
			tt.mutate(&req)
			_, err := svc.Book(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			log.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		})
	}
}

func TestBook_MissingContactMessage(t *testing.T) {
	svc, _, _ := newService(nil)
	_, err := svc.Book(context.Background(), models.ReservationRequest{Name: "Ada", ParkName: "Watson Park", Date: "2025-06-01", TimeSlot: "x"})

	var bErr *booking.BookingError
	require.ErrorAs(t, err, &bErr)
	assert.Contains(t, bErr.Message, "email, phone")
}

func TestBook_TodayIsAllowed(t *testing.T) {
	svc, schedule, log := newService(nil)
	schedule.On("AvailableSlots", mock.Anything, "Watson Park", mock.Anything).Return([]string{"16:00-17:00"}, nil)
	log.On("Append", mock.Anything, mock.Anything).Return(nil)
	schedule.On("MarkBooked", mock.Anything, "Watson Park", mock.Anything, "16:00-17:00").Return(true, nil)

	conf, err := svc.Book(context.Background(), models.ReservationRequest{
		Name: " Ada ", Email: "ada@example.com", Phone: "555-0100",
		ParkName: "Watson Park", Date: "2025-05-20", TimeSlot: "16:00-17:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", conf.Reservation.Name)
	assert.Equal(t, "Reservation confirmed for Watson Park on 2025-05-20 at 16:00-17:00! You will receive a confirmation email shortly.", conf.Message)
}
