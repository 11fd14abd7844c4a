package parks

import (
	"context"
	"time"

	issueRepo "cityconnect/database/repository/issue"
	scheduleRepo "cityconnect/database/repository/schedule"
	"cityconnect/models"
	"cityconnect/services/amenity"
	ai "cityconnect/services/intelligence"

	"go.uber.org/zap"
)

// ParkService backs the browsing pages: park list, schedule, availability,
// amenities, descriptions and issue reports.
type ParkService interface {
	ListParks(ctx context.Context) ([]string, error)
	ListSchedule(ctx context.Context) ([]models.ScheduleEntry, error)
	Availability(ctx context.Context, park, date string) (*models.ParkAvailability, error)
	ParkAmenities(ctx context.Context, park string) ([]string, error)
	DescribePark(ctx context.Context, park string) (*models.ParkDescription, error)
	ReportIssue(ctx context.Context, req models.IssueReportRequest) (*models.IssueReport, error)
	ListIssues(ctx context.Context) ([]models.IssueReport, error)
}

type DefaultParkService struct {
	Schedule         scheduleRepo.ScheduleRepository
	Issues           issueRepo.IssueRepository
	Matcher          amenity.Matcher
	Assistant        ai.Assistant
	AssistantTimeout time.Duration
	Logger           *zap.Logger
}

func NewParkService(
	schedule scheduleRepo.ScheduleRepository,
	issues issueRepo.IssueRepository,
	matcher amenity.Matcher,
	assistant ai.Assistant,
	assistantTimeout time.Duration,
	logger *zap.Logger,
) *DefaultParkService {
	return &DefaultParkService{
		Schedule:         schedule,
		Issues:           issues,
		Matcher:          matcher,
		Assistant:        assistant,
		AssistantTimeout: assistantTimeout,
		Logger:           logger,
	}
}
