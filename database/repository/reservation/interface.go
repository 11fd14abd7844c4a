package reservationRepo

import (
	"context"

	"cityconnect/models"
)

// ReservationRepository is the append-only reservation log.
type ReservationRepository interface {
	ReadAll(ctx context.Context) ([]models.ReservationRecord, error)
	WriteAll(ctx context.Context, records []models.ReservationRecord) error
	Append(ctx context.Context, record models.ReservationRecord) error
}
