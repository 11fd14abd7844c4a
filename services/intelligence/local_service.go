// File: services/intelligence/local_service.go
package ai

import (
	"context"
	"strings"

	"cityconnect/models"
)

// LocalAssistant answers without a model. It is used when no API key is configured.
type LocalAssistant struct{}

func NewLocalAssistant() *LocalAssistant {
	return &LocalAssistant{}
}

func (LocalAssistant) Complete(ctx context.Context, history []models.ChatMessage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var last string
	if len(history) > 0 {
		last = strings.ToLower(history[len(history)-1].Content)
	}

	switch {
	case strings.Contains(last, "hello") || strings.Contains(last, "hi "):
		return "Hi there! Ask me about parks and amenities, or say \"book\" to make a reservation.", nil
	case strings.Contains(last, "park"):
		return "I can show parks with amenities like playgrounds, tennis courts or BBQ areas. " +
			"Tell me what you're looking for, or say \"book\" to reserve a time slot.", nil
	default:
		return "How can I help you today? You can ask about park amenities or start a reservation.", nil
	}
}
