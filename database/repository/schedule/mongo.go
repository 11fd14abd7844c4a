package scheduleRepo

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"cityconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo stores entries in the "schedule" collection with dates
// normalized to YYYY-MM-DD.
func NewMongoScheduleRepo(db *mongo.Database) ScheduleRepository {
	return &mongoScheduleRepo{coll: db.Collection("schedule")}
}

func parkFilter(park string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(strings.TrimSpace(park)) + "$", Options: "i"}
}

func (repo *mongoScheduleRepo) ReadAll(ctx context.Context) ([]models.ScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ScheduleEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding schedule: %w", err)
	}
	return entries, nil
}

func (repo *mongoScheduleRepo) WriteAll(ctx context.Context, entries []models.ScheduleEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear schedule: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		if d, ok := e.ParsedDate(); ok {
			e.Date = d.Format(models.DateLayout)
		}
		docs = append(docs, e)
	}
	if _, err := repo.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}
	return nil
}

func (repo *mongoScheduleRepo) ListParks(ctx context.Context) ([]string, error) {
	entries, err := repo.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return parkNames(entries), nil
}

func (repo *mongoScheduleRepo) AvailableDates(ctx context.Context, park string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"park_name": parkFilter(park),
		"status":    models.SlotAvailable,
	}
	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch available dates: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ScheduleEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding schedule: %w", err)
	}
	return availableDates(entries, park), nil
}

func (repo *mongoScheduleRepo) AvailableSlots(ctx context.Context, park string, day time.Time) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"park_name": parkFilter(park),
		"date":      day.Format(models.DateLayout),
		"status":    models.SlotAvailable,
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch available slots: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ScheduleEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding schedule: %w", err)
	}
	return availableSlots(entries, park, day), nil
}

// MarkBooked is a conditional update on status=available, so two sessions
// racing for one slot cannot both flip it.
func (repo *mongoScheduleRepo) MarkBooked(ctx context.Context, park string, day time.Time, slot string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"park_name": parkFilter(park),
		"date":      day.Format(models.DateLayout),
		"time_slot": strings.TrimSpace(slot),
		"status":    models.SlotAvailable,
	}
	update := bson.M{"$set": bson.M{"status": models.SlotBooked}}

	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to mark slot booked: %w", err)
	}
	return res.ModifiedCount == 1, nil
}
