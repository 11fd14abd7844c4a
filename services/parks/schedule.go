package parks

import (
	"context"
	"fmt"

	"cityconnect/models"
)

// ListSchedule returns every schedule entry, booked or not, in file order.
func (s *DefaultParkService) ListSchedule(ctx context.Context) ([]models.ScheduleEntry, error) {
	entries, err := s.Schedule.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read schedule: %w", err)
	}
	return entries, nil
}
