package issueRepo

import (
	"context"
	"time"

	"cityconnect/database"
	"cityconnect/models"

	"github.com/google/uuid"
)

var issueHeader = []string{"id", "park_name", "issue_type", "description", "created_at"}

type csvIssueRepo struct {
	path string
}

func NewCSVIssueRepo(path string) IssueRepository {
	return &csvIssueRepo{path: path}
}

func (r *csvIssueRepo) List(ctx context.Context) ([]models.IssueReport, error) {
	t, err := database.ReadTable(r.path, issueHeader)
	if err != nil {
		return nil, err
	}
	reports := make([]models.IssueReport, 0, len(t.Rows))
	for _, row := range t.Rows {
		created, _ := time.Parse(time.RFC3339, t.Get(row, "created_at"))
		reports = append(reports, models.IssueReport{
			ID:          t.Get(row, "id"),
			ParkName:    t.Get(row, "park_name"),
			IssueType:   models.IssueType(t.Get(row, "issue_type")),
			Description: t.Get(row, "description"),
			CreatedAt:   created,
		})
	}
	return reports, nil
}

// Create inserts a new report and returns its ID.
func (r *csvIssueRepo) Create(ctx context.Context, report models.IssueReport) (string, error) {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	lock := database.FileLock(r.path)
	lock.Lock()
	defer lock.Unlock()

	t, err := database.ReadTable(r.path, issueHeader)
	if err != nil {
		return "", err
	}
	t.AppendRecord(issueHeader, []string{
		report.ID,
		report.ParkName,
		string(report.IssueType),
		report.Description,
		report.CreatedAt.Format(time.RFC3339),
	})
	if err := database.WriteTable(r.path, t); err != nil {
		return "", err
	}
	return report.ID, nil
}
