// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"time"

	"cityconnect/models"
)

// ScheduleRepository is the park schedule: which (park, date, slot) units exist
// and whether each is still available.
type ScheduleRepository interface {
	ReadAll(ctx context.Context) ([]models.ScheduleEntry, error)
	WriteAll(ctx context.Context, entries []models.ScheduleEntry) error
	ListParks(ctx context.Context) ([]string, error)
	AvailableDates(ctx context.Context, park string) ([]string, error)
	AvailableSlots(ctx context.Context, park string, day time.Time) ([]string, error)
	// MarkBooked flips at most one matching available entry to booked and
	// reports whether one was flipped.
	MarkBooked(ctx context.Context, park string, day time.Time, slot string) (bool, error)
}
