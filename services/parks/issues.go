package parks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cityconnect/models"

	"go.uber.org/zap"
)

// ReportIssue validates and stores a park issue report.
func (s *DefaultParkService) ReportIssue(ctx context.Context, req models.IssueReportRequest) (*models.IssueReport, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrMissingDescription
	}
	if !req.IssueType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIssueType, req.IssueType)
	}
	park, err := s.resolvePark(ctx, req.ParkName)
	if err != nil {
		return nil, err
	}

	report := models.IssueReport{
		ParkName:    park,
		IssueType:   req.IssueType,
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   time.Now().UTC(),
	}
	id, err := s.Issues.Create(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("save issue report: %w", err)
	}
	report.ID = id

	s.Logger.Info("Issue reported", zap.String("id", id), zap.String("park", park), zap.String("type", string(req.IssueType)))
	return &report, nil
}

func (s *DefaultParkService) ListIssues(ctx context.Context) ([]models.IssueReport, error) {
	reports, err := s.Issues.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list issue reports: %w", err)
	}
	return reports, nil
}
