package settings

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/gamenightlabs/gamenight/internal/repositories/settings Repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a guild has no settings row, the "server not
// configured" state
var ErrNotFound = errors.New("server settings not found")

// Repository defines the persistence interface for per-guild settings
type Repository interface {
	// GetSettings retrieves a guild's settings; ErrNotFound when the
	// guild has never been set up
	GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error)

	// UpdateSettings creates or overwrites a guild's settings
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) error
}
