package parks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cityconnect/models"
	"cityconnect/services/amenity"
)

func (s *DefaultParkService) ListParks(ctx context.Context) ([]string, error) {
	parks, err := s.Schedule.ListParks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list parks: %w", err)
	}
	return parks, nil
}

// resolvePark returns the schedule's spelling of park.
func (s *DefaultParkService) resolvePark(ctx context.Context, park string) (string, error) {
	parks, err := s.ListParks(ctx)
	if err != nil {
		return "", err
	}
	for _, p := range parks {
		if strings.EqualFold(p, strings.TrimSpace(park)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownPark, park)
}

// Availability lists available dates for park, or the available slots on date when one is given.
func (s *DefaultParkService) Availability(ctx context.Context, park, date string) (*models.ParkAvailability, error) {
	name, err := s.resolvePark(ctx, park)
	if err != nil {
		return nil, err
	}

	out := &models.ParkAvailability{Park: name}
	if strings.TrimSpace(date) == "" {
		dates, err := s.Schedule.AvailableDates(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("available dates: %w", err)
		}
		out.Dates = dates
		return out, nil
	}

	day, err := models.ParseUserDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	slots, err := s.Schedule.AvailableSlots(ctx, name, day)
	if err != nil {
		return nil, fmt.Errorf("available slots: %w", err)
	}
	out.Date = day.Format(models.DateLayout)
	out.Slots = slots
	return out, nil
}

func (s *DefaultParkService) ParkAmenities(ctx context.Context, park string) ([]string, error) {
	has, err := s.Matcher.ParkAmenities(ctx, park)
	if errors.Is(err, amenity.ErrUnknownPark) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPark, park)
	}
	return has, err
}
