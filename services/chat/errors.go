package chat

import "errors"

var (
	ErrSessionNotFound = errors.New("chat session not found or expired")
	ErrEmptyMessage    = errors.New("message text is empty")
)
