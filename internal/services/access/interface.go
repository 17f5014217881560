package access

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/gamenightlabs/gamenight/internal/services/access Service

import (
	"context"
)

// Service gates game commands on the per-guild allowed-role list.
type Service interface {
	// Authorize checks whether a member holding the given roles may run
	// game commands in the guild. Returns ErrNotConfigured when the guild
	// has never been set up, ErrNotAllowed when the member holds none of
	// the allowed roles, and nil when the member may proceed.
	Authorize(ctx context.Context, input *AuthorizeInput) error

	// Configure replaces the guild's allowed-role list
	Configure(ctx context.Context, input *ConfigureInput) error

	// AllowedRoles retrieves the guild's configured role list
	AllowedRoles(ctx context.Context, input *AllowedRolesInput) (*AllowedRolesOutput, error)
}
