package ai

import (
	"context"
	"testing"

	"cityconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiRole(t *testing.T) {
	tests := []struct {
		role models.Role
		want string
	}{
		{models.RoleAssistant, "model"},
		{models.RoleUser, "user"},
		{models.Role("system"), "user"},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, geminiRole(tt.role))
		})
	}
}

func TestGeminiAssistant_EmptyHistory(t *testing.T) {
	_, err := (&GeminiAssistant{}).Complete(context.Background(), nil)
	assert.Error(t, err)
}

func TestLocalAssistant_Complete(t *testing.T) {
	tests := []struct {
		name     string
		history  []models.ChatMessage
		contains string
	}{
		{"greeting", []models.ChatMessage{{Role: models.RoleUser, Content: "Hello!"}}, "Hi there"},
		{"park question", []models.ChatMessage{{Role: models.RoleUser, Content: "Which park is best for kids?"}}, "playgrounds"},
		{"anything else", []models.ChatMessage{{Role: models.RoleUser, Content: "what's the weather"}}, "How can I help"},
		{"empty history", nil, "How can I help"},
		{"answers the last message", []models.ChatMessage{
			{Role: models.RoleUser, Content: "hello"},
			{Role: models.RoleAssistant, Content: "Hi there!"},
			{Role: models.RoleUser, Content: "tell me about a park"},
		}, "playgrounds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := NewLocalAssistant().Complete(context.Background(), tt.history)
			require.NoError(t, err)
			assert.Contains(t, reply, tt.contains)
		})
	}
}

func TestLocalAssistant_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reply, err := NewLocalAssistant().Complete(ctx, []models.ChatMessage{{Role: models.RoleUser, Content: "hello"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, reply)
}
