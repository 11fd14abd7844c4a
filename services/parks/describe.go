package parks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cityconnect/models"

	"go.uber.org/zap"
)

// DescribePark asks the assistant for a short visitor-facing description of a
// park listed in the amenity table.
func (s *DefaultParkService) DescribePark(ctx context.Context, park string) (*models.ParkDescription, error) {
	name := strings.TrimSpace(park)
	has, err := s.ParkAmenities(ctx, name)
	if err != nil {
		return nil, err
	}

	if s.AssistantTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.AssistantTimeout)
		defer cancel()
	}

	reply, err := s.Assistant.Complete(ctx, []models.ChatMessage{
		{Role: models.RoleUser, Content: describePrompt(name, has)},
	})
	if err == nil && strings.TrimSpace(reply) == "" {
		err = errors.New("empty reply")
	}
	if err != nil {
		s.Logger.Error("Park description failed", zap.String("park", name), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAssistantOffline, err)
	}
	return &models.ParkDescription{Park: name, Amenities: has, Description: strings.TrimSpace(reply)}, nil
}

func describePrompt(park string, amenities []string) string {
	prompt := fmt.Sprintf("As an expert local guide, write a friendly two-sentence description of %s in San Jose.", park)
	if len(amenities) > 0 {
		prompt += " It has: " + strings.Join(amenities, ", ") + "."
	}
	return prompt
}
