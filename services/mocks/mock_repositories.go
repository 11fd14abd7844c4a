package mocks

import (
	"context"
	"time"

	"cityconnect/models"

	"github.com/stretchr/testify/mock"
)

// MockScheduleRepository is a mock implementation of scheduleRepo.ScheduleRepository
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) ReadAll(ctx context.Context) ([]models.ScheduleEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ScheduleEntry), args.Error(1)
}

func (m *MockScheduleRepository) WriteAll(ctx context.Context, entries []models.ScheduleEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockScheduleRepository) ListParks(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockScheduleRepository) AvailableDates(ctx context.Context, park string) ([]string, error) {
	args := m.Called(ctx, park)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockScheduleRepository) AvailableSlots(ctx context.Context, park string, day time.Time) ([]string, error) {
	args := m.Called(ctx, park, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockScheduleRepository) MarkBooked(ctx context.Context, park string, day time.Time, slot string) (bool, error) {
	args := m.Called(ctx, park, day, slot)
	return args.Bool(0), args.Error(1)
}

// MockReservationRepository is a mock implementation of reservationRepo.ReservationRepository
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) ReadAll(ctx context.Context) ([]models.ReservationRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReservationRecord), args.Error(1)
}

func (m *MockReservationRepository) WriteAll(ctx context.Context, records []models.ReservationRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockReservationRepository) Append(ctx context.Context, record models.ReservationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockIssueRepository is a mock implementation of issueRepo.IssueRepository
type MockIssueRepository struct {
	mock.Mock
}

func (m *MockIssueRepository) Create(ctx context.Context, report models.IssueReport) (string, error) {
	args := m.Called(ctx, report)
	return args.String(0), args.Error(1)
}

func (m *MockIssueRepository) List(ctx context.Context) ([]models.IssueReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.IssueReport), args.Error(1)
}
