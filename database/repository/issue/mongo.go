package issueRepo

import (
	"context"
	"fmt"
	"time"

	"cityconnect/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoIssueRepo struct {
	coll *mongo.Collection
}

func NewMongoIssueRepo(db *mongo.Database) IssueRepository {
	return &mongoIssueRepo{coll: db.Collection("issue_reports")}
}

// Create inserts a new report and returns its ID.
func (r *mongoIssueRepo) Create(ctx context.Context, report models.IssueReport) (string, error) {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, report); err != nil {
		return "", fmt.Errorf("failed to insert issue report: %w", err)
	}
	return report.ID, nil
}

func (r *mongoIssueRepo) List(ctx context.Context) ([]models.IssueReport, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch issue reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []models.IssueReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("error decoding issue reports: %w", err)
	}
	return reports, nil
}
