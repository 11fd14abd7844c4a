package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunHealthChecks(t *testing.T) {
	status := RunHealthChecks(context.Background(), map[string]HealthCheck{
		"csv":   func(ctx context.Context) error { return nil },
		"redis": func(ctx context.Context) error { return errors.New("connection refused") },
	})

	assert.Equal(t, map[string]bool{"csv": true, "redis": false}, status.Services)

	snapshot := GetHealthStatus()
	assert.Equal(t, status.Services, snapshot.Services)

	// The snapshot is a copy.
	snapshot.Services["redis"] = true
	assert.False(t, GetHealthStatus().Services["redis"])
}
