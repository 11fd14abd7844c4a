package parks

import "errors"

var (
	ErrUnknownPark        = errors.New("unknown park")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidIssueType   = errors.New("invalid issue type")
	ErrMissingDescription = errors.New("issue description is required")
	ErrAssistantOffline   = errors.New("assistant unavailable")
)
