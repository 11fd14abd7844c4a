// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cityconnect/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrEmptyCompletion = errors.New("assistant returned no text")

type GeminiAssistant struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiAssistant(ctx context.Context, apiKey, modelName string) (*GeminiAssistant, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(SystemPrompt)}}
	return &GeminiAssistant{client: client, model: model}, nil
}

// Complete replays every message but the last as chat history and sends the last one.
func (g *GeminiAssistant) Complete(ctx context.Context, history []models.ChatMessage) (string, error) {
	if len(history) == 0 {
		return "", errors.New("empty conversation")
	}

	chat := g.model.StartChat()
	for _, m := range history[:len(history)-1] {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		chat.History = append(chat.History, &genai.Content{
			Role:  geminiRole(m.Role),
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}

	last := history[len(history)-1]
	resp, err := chat.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyCompletion
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyCompletion
	}
	return sb.String(), nil
}

func (g *GeminiAssistant) Close() error {
	return g.client.Close()
}

func geminiRole(r models.Role) string {
	if r == models.RoleAssistant {
		return "model"
	}
	return "user"
}
