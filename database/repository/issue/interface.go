package issueRepo

import (
	"context"

	"cityconnect/models"
)

type IssueRepository interface {
	Create(ctx context.Context, report models.IssueReport) (string, error)
	List(ctx context.Context) ([]models.IssueReport, error)
}
