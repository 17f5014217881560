package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gamenightlabs/gamenight/internal/models"
)

// Config holds configuration for the Postgres settings repository
type Config struct {
	// Pool is the pgx connection pool
	Pool *pgxpool.Pool
}

// postgresRepository implements the Repository interface using PostgreSQL
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new Postgres-backed settings repository
func NewPostgres(cfg *Config) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Pool == nil {
		return nil, errors.New("connection pool cannot be nil")
	}

	return &postgresRepository{pool: cfg.Pool}, nil
}

// rolesPayload is the serialized form of the allow list, kept compatible
// with a plain JSON object so rows stay readable in psql.
type rolesPayload struct {
	AllowedRoles []string `json:"allowed_roles"`
}

// GetSettings retrieves a guild's settings
func (r *postgresRepository) GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	const query = `SELECT allowed_roles FROM server_settings WHERE guild_id = $1`

	var raw string
	err := r.pool.QueryRow(ctx, query, input.GuildID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query server settings: %w", err)
	}

	var payload rolesPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode allowed roles: %w", err)
	}

	return &GetSettingsOutput{
		Settings: &models.ServerSettings{
			GuildID:      input.GuildID,
			AllowedRoles: payload.AllowedRoles,
		},
	}, nil
}

// UpdateSettings creates or overwrites a guild's settings
func (r *postgresRepository) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("input and settings cannot be nil")
	}

	raw, err := json.Marshal(rolesPayload{AllowedRoles: input.Settings.AllowedRoles})
	if err != nil {
		return fmt.Errorf("failed to encode allowed roles: %w", err)
	}

	const query = `
		INSERT INTO server_settings (guild_id, allowed_roles)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE SET allowed_roles = EXCLUDED.allowed_roles
	`

	if _, err := r.pool.Exec(ctx, query, input.Settings.GuildID, string(raw)); err != nil {
		return fmt.Errorf("failed to update server settings: %w", err)
	}

	return nil
}
