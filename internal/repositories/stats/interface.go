package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/gamenightlabs/gamenight/internal/repositories/stats Repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a user has no stats row for a game
var ErrNotFound = errors.New("user stats not found")

// Repository defines the persistence interface for per-user game stats
type Repository interface {
	// UpdateStats additively upserts a user's win/loss counts for a game
	UpdateStats(ctx context.Context, input *UpdateStatsInput) error

	// GetStats retrieves a user's stats for a game; ErrNotFound when the
	// user has never finished a round of it
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)
}
