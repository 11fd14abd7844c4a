package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"cityconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoReservationRepo struct {
	coll *mongo.Collection
}

func NewMongoReservationRepo(db *mongo.Database) ReservationRepository {
	return &mongoReservationRepo{coll: db.Collection("reservations")}
}

func (r *mongoReservationRepo) ReadAll(ctx context.Context) ([]models.ReservationRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.ReservationRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return records, nil
}

func (r *mongoReservationRepo) WriteAll(ctx context.Context, records []models.ReservationRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear reservations: %w", err)
	}
	if len(records) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(records))
	for _, rec := range records {
		docs = append(docs, rec)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert reservations: %w", err)
	}
	return nil
}

func (r *mongoReservationRepo) Append(ctx context.Context, record models.ReservationRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to append reservation: %w", err)
	}
	return nil
}
