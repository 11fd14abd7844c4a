package chat

import (
	"context"
	"time"

	"cityconnect/models"
	"cityconnect/services/amenity"
	"cityconnect/services/booking"
	ai "cityconnect/services/intelligence"

	"go.uber.org/zap"
)

// ChatService drives conversations: one call per user message.
type ChatService interface {
	StartSession(ctx context.Context) (*models.ChatSession, error)
	GetSession(ctx context.Context, id string) (*models.ChatSession, error)
	HandleMessage(ctx context.Context, id, text string) (*models.ChatResponse, error)
	Render(ctx context.Context, id string) (*models.ChatResponse, error)
	EndSession(ctx context.Context, id string) error
}

// Availability is the part of the schedule the dialogue reads.
type Availability interface {
	AvailableDates(ctx context.Context, park string) ([]string, error)
	AvailableSlots(ctx context.Context, park string, day time.Time) ([]string, error)
}

// Committer books a completed draft.
type Committer interface {
	Commit(ctx context.Context, draft models.ReservationDraft) (*booking.CommitResult, error)
}

// AmenitySearcher finds parks mentioned by amenity keywords.
type AmenitySearcher interface {
	Search(ctx context.Context, text string) (*amenity.Result, error)
}

// DefaultChatService implements ChatService.
type DefaultChatService struct {
	Sessions         SessionStore
	Schedule         Availability
	Reservations     Committer
	Amenities        AmenitySearcher
	Assistant        ai.Assistant
	AssistantTimeout time.Duration
	Logger           *zap.Logger

	locks keyedMutex
}

func NewDefaultChatService(
	sessions SessionStore,
	schedule Availability,
	reservations Committer,
	amenities AmenitySearcher,
	assistant ai.Assistant,
	assistantTimeout time.Duration,
	logger *zap.Logger,
) *DefaultChatService {
	return &DefaultChatService{
		Sessions:         sessions,
		Schedule:         schedule,
		Reservations:     reservations,
		Amenities:        amenities,
		Assistant:        assistant,
		AssistantTimeout: assistantTimeout,
		Logger:           logger,
	}
}
