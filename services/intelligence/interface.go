package ai

import (
	"context"

	"cityconnect/models"
)

// Assistant answers a conversation with a single text reply.
type Assistant interface {
	Complete(ctx context.Context, history []models.ChatMessage) (string, error)
}

// SystemPrompt frames the general-purpose chat around the parks service.
const SystemPrompt = "You are City Connect, a friendly assistant for San Jose city parks. " +
	"Help people find parks and amenities, and answer questions about park visits. " +
	"To book a time slot, tell them to say \"book\" and you will collect their details."
