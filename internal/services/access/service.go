package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/gamenightlabs/gamenight/internal/models"
	settingsRepo "github.com/gamenightlabs/gamenight/internal/repositories/settings"
)

// Define errors
var (
	// ErrNotConfigured means the guild has never run setup
	ErrNotConfigured = errors.New("server has not been set up")
	// ErrNotAllowed means the member holds none of the allowed roles
	ErrNotAllowed = errors.New("you do not have permission to use this command")
	// ErrNoRoles means a configure call carried an empty role list
	ErrNoRoles = errors.New("at least one role is required")
)

// service implements the Service interface
type service struct {
	settingsRepo settingsRepo.Repository
}

// Config holds the dependencies for the access service
type Config struct {
	SettingsRepo settingsRepo.Repository
}

// New creates a new access service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.SettingsRepo == nil {
		return nil, errors.New("settings repository cannot be nil")
	}

	return &service{
		settingsRepo: cfg.SettingsRepo,
	}, nil
}

// Authorize checks whether a member holding the given roles may run game
// commands in the guild
func (s *service) Authorize(ctx context.Context, input *AuthorizeInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if input.GuildID == "" {
		return errors.New("guild ID cannot be empty")
	}

	out, err := s.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, settingsRepo.ErrNotFound) {
			return ErrNotConfigured
		}
		return fmt.Errorf("failed to load server settings: %w", err)
	}

	if !out.Settings.Allows(input.RoleNames) {
		return ErrNotAllowed
	}

	return nil
}

// Configure replaces the guild's allowed-role list
func (s *service) Configure(ctx context.Context, input *ConfigureInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if input.GuildID == "" {
		return errors.New("guild ID cannot be empty")
	}
	if len(input.AllowedRoles) == 0 {
		return ErrNoRoles
	}

	err := s.settingsRepo.UpdateSettings(ctx, &settingsRepo.UpdateSettingsInput{
		Settings: &models.ServerSettings{
			GuildID:      input.GuildID,
			AllowedRoles: input.AllowedRoles,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to save server settings: %w", err)
	}

	return nil
}

// AllowedRoles retrieves the guild's configured role list
func (s *service) AllowedRoles(ctx context.Context, input *AllowedRolesInput) (*AllowedRolesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, settingsRepo.ErrNotFound) {
			return nil, ErrNotConfigured
		}
		return nil, fmt.Errorf("failed to load server settings: %w", err)
	}

	return &AllowedRolesOutput{
		AllowedRoles: out.Settings.AllowedRoles,
	}, nil
}
