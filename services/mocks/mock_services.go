package mocks

import (
	"context"

	"cityconnect/models"
	"cityconnect/services/amenity"
	"cityconnect/services/booking"

	"github.com/stretchr/testify/mock"
)

// MockChatService is a mock implementation of chat.ChatService
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) StartSession(ctx context.Context) (*models.ChatSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatSession), args.Error(1)
}

func (m *MockChatService) GetSession(ctx context.Context, id string) (*models.ChatSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatSession), args.Error(1)
}

func (m *MockChatService) HandleMessage(ctx context.Context, id, text string) (*models.ChatResponse, error) {
	args := m.Called(ctx, id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatResponse), args.Error(1)
}

func (m *MockChatService) Render(ctx context.Context, id string) (*models.ChatResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatResponse), args.Error(1)
}

func (m *MockChatService) EndSession(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockParkService is a mock implementation of parks.ParkService
type MockParkService struct {
	mock.Mock
}

func (m *MockParkService) ListParks(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockParkService) ListSchedule(ctx context.Context) ([]models.ScheduleEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ScheduleEntry), args.Error(1)
}

func (m *MockParkService) DescribePark(ctx context.Context, park string) (*models.ParkDescription, error) {
	args := m.Called(ctx, park)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ParkDescription), args.Error(1)
}

func (m *MockParkService) Availability(ctx context.Context, park, date string) (*models.ParkAvailability, error) {
	args := m.Called(ctx, park, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ParkAvailability), args.Error(1)
}

func (m *MockParkService) ParkAmenities(ctx context.Context, park string) ([]string, error) {
	args := m.Called(ctx, park)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockParkService) ReportIssue(ctx context.Context, req models.IssueReportRequest) (*models.IssueReport, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IssueReport), args.Error(1)
}

func (m *MockParkService) ListIssues(ctx context.Context) ([]models.IssueReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.IssueReport), args.Error(1)
}

// MockReservationService is a mock implementation of booking.ReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) Commit(ctx context.Context, draft models.ReservationDraft) (*booking.CommitResult, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.CommitResult), args.Error(1)
}

func (m *MockReservationService) Book(ctx context.Context, req models.ReservationRequest) (*models.ReservationConfirmation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReservationConfirmation), args.Error(1)
}

// MockMatcher is a mock implementation of amenity.Matcher
type MockMatcher struct {
	mock.Mock
}

func (m *MockMatcher) Mentioned(text string) []string {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockMatcher) Search(ctx context.Context, text string) (*amenity.Result, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*amenity.Result), args.Error(1)
}

func (m *MockMatcher) Filter(ctx context.Context, required []string) (*amenity.Result, error) {
	args := m.Called(ctx, required)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*amenity.Result), args.Error(1)
}

func (m *MockMatcher) ParkAmenities(ctx context.Context, park string) ([]string, error) {
	args := m.Called(ctx, park)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockAssistant is a mock implementation of ai.Assistant
type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) Complete(ctx context.Context, history []models.ChatMessage) (string, error) {
	args := m.Called(ctx, history)
	return args.String(0), args.Error(1)
}

// MockNotifier is a mock implementation of booking.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyConfirmation(ctx context.Context, payload models.ConfirmationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
