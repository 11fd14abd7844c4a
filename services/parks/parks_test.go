package parks

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cityconnect/models"
	"cityconnect/services/amenity"
	"cityconnect/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() (*DefaultParkService, *mocks.MockScheduleRepository, *mocks.MockIssueRepository, *mocks.MockMatcher) {
	schedule := new(mocks.MockScheduleRepository)
	issues := new(mocks.MockIssueRepository)
	matcher := new(mocks.MockMatcher)
	schedule.On("ListParks", mock.Anything).Return([]string{"Roosevelt Park", "Watson Park"}, nil).Maybe()
	return NewParkService(schedule, issues, matcher, new(mocks.MockAssistant), time.Second, zap.NewNop()), schedule, issues, matcher
}

func TestAvailability_Dates(t *testing.T) {
	svc, schedule, _, _ := newTestService()
	schedule.On("AvailableDates", mock.Anything, "Roosevelt Park").Return([]string{"2025-06-01"}, nil)

	avail, err := svc.Availability(context.Background(), "roosevelt PARK", "")
	require.NoError(t, err)
	assert.Equal(t, &models.ParkAvailability{Park: "Roosevelt Park", Dates: []string{"2025-06-01"}}, avail)
}

func TestAvailability_Slots(t *testing.T) {
	svc, schedule, _, _ := newTestService()
	schedule.On("AvailableSlots", mock.Anything, "Watson Park", mock.Anything).Return([]string{"09:00-10:00"}, nil)

	avail, err := svc.Availability(context.Background(), "Watson Park", "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", avail.Date)
	assert.Equal(t, []string{"09:00-10:00"}, avail.Slots)
}

func TestAvailability_Errors(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Availability(context.Background(), "Nowhere Park", "")
	assert.ErrorIs(t, err, ErrUnknownPark)

	_, err = svc.Availability(context.Background(), "Watson Park", "tomorrow")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParkAmenities(t *testing.T) {
	svc, _, _, matcher := newTestService()
	matcher.On("ParkAmenities", mock.Anything, "Watson Park").Return([]string{"BBQ"}, nil)
	matcher.On("ParkAmenities", mock.Anything, "Nowhere").Return(nil, amenity.ErrUnknownPark)

	has, err := svc.ParkAmenities(context.Background(), "Watson Park")
	require.NoError(t, err)
	assert.Equal(t, []string{"BBQ"}, has)

	_, err = svc.ParkAmenities(context.Background(), "Nowhere")
	assert.ErrorIs(t, err, ErrUnknownPark)
}

func TestReportIssue(t *testing.T) {
	svc, _, issues, _ := newTestService()
	issues.On("Create", mock.Anything, mock.MatchedBy(func(r models.IssueReport) bool {
		return r.ParkName == "Watson Park" && r.IssueType == models.IssueLitter && r.Description == "Bins overflowing" && !r.CreatedAt.IsZero()
	})).Return("issue-1", nil)

	report, err := svc.ReportIssue(context.Background(), models.IssueReportRequest{
		ParkName:    "watson park",
		IssueType:   models.IssueLitter,
		Description: "  Bins overflowing ",
	})
	require.NoError(t, err)
	assert.Equal(t, "issue-1", report.ID)
	assert.Equal(t, "Watson Park", report.ParkName)
	issues.AssertExpectations(t)
}

func TestReportIssue_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.IssueReportRequest
		wantErr error
	}{
		{"no description", models.IssueReportRequest{ParkName: "Watson Park", IssueType: models.IssueOther, Description: " "}, ErrMissingDescription},
		{"bad type", models.IssueReportRequest{ParkName: "Watson Park", IssueType: "Noise", Description: "loud"}, ErrInvalidIssueType},
		{"unknown park", models.IssueReportRequest{ParkName: "Nowhere", IssueType: models.IssueOther, Description: "x"}, ErrUnknownPark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, issues, _ := newTestService()
			_, err := svc.ReportIssue(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			issues.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestListIssues_Error(t *testing.T) {
	svc, _, issues, _ := newTestService()
	issues.On("List", mock.Anything).Return(nil, errors.New("boom"))

	_, err := svc.ListIssues(context.Background())
	assert.ErrorContains(t, err, "boom")
}

func TestListSchedule(t *testing.T) {
	svc, schedule, _, _ := newTestService()
	entries := []models.ScheduleEntry{
		{ParkName: "Watson Park", Date: "2025-06-01", TimeSlot: "09:00-10:00", Status: models.SlotAvailable},
		{ParkName: "Watson Park", Date: "2025-06-01", TimeSlot: "10:00-11:00", Status: models.SlotBooked},
	}
	schedule.On("ReadAll", mock.Anything).Return(entries, nil).Once()

	got, err := svc.ListSchedule(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	schedule.On("ReadAll", mock.Anything).Return(nil, errors.New("file locked"))
	_, err = svc.ListSchedule(context.Background())
	assert.ErrorContains(t, err, "file locked")
}

func TestDescribePark(t *testing.T) {
	svc, _, _, matcher := newTestService()
	assistant := new(mocks.MockAssistant)
	svc.Assistant = assistant

	matcher.On("ParkAmenities", mock.Anything, "Watson Park").Return([]string{"BBQ", "Tennis Courts"}, nil)
	assistant.On("Complete", mock.Anything, mock.MatchedBy(func(msgs []models.ChatMessage) bool {
		return len(msgs) == 1 &&
			msgs[0].Role == models.RoleUser &&
			strings.Contains(msgs[0].Content, "two-sentence description of Watson Park in San Jose") &&
			strings.Contains(msgs[0].Content, "BBQ, Tennis Courts")
	})).Return("  Watson Park is a shady spot by the creek. Bring a racket.  ", nil)

	desc, err := svc.DescribePark(context.Background(), " Watson Park ")
	require.NoError(t, err)
	assert.Equal(t, &models.ParkDescription{
		Park:        "Watson Park",
		Amenities:   []string{"BBQ", "Tennis Courts"},
		Description: "Watson Park is a shady spot by the creek. Bring a racket.",
	}, desc)
	assistant.AssertExpectations(t)
}

func TestDescribePark_Errors(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		err     error
		wantErr error
	}{
		{"assistant fails", "", errors.New("quota exceeded"), ErrAssistantOffline},
		{"empty reply", "   ", nil, ErrAssistantOffline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, matcher := newTestService()
			assistant := new(mocks.MockAssistant)
			svc.Assistant = assistant
			matcher.On("ParkAmenities", mock.Anything, "Watson Park").Return([]string{}, nil)
			assistant.On("Complete", mock.Anything, mock.Anything).Return(tt.reply, tt.err)

			_, err := svc.DescribePark(context.Background(), "Watson Park")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("unknown park", func(t *testing.T) {
		svc, _, _, matcher := newTestService()
		assistant := new(mocks.MockAssistant)
		svc.Assistant = assistant
		matcher.On("ParkAmenities", mock.Anything, "Nowhere").Return(nil, amenity.ErrUnknownPark)

		_, err := svc.DescribePark(context.Background(), "Nowhere")
		assert.ErrorIs(t, err, ErrUnknownPark)
		assistant.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
	})
}
