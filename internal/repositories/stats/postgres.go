package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gamenightlabs/gamenight/internal/models"
)

// Config holds configuration for the Postgres stats repository
type Config struct {
	// Pool is the pgx connection pool
	Pool *pgxpool.Pool
}

// postgresRepository implements the Repository interface using PostgreSQL
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new Postgres-backed stats repository
func NewPostgres(cfg *Config) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Pool == nil {
		return nil, errors.New("connection pool cannot be nil")
	}

	return &postgresRepository{pool: cfg.Pool}, nil
}

// UpdateStats additively upserts a user's win/loss counts for a game
func (r *postgresRepository) UpdateStats(ctx context.Context, input *UpdateStatsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	const query = `
		INSERT INTO user_stats (user_id, guild_id, game_name, wins, losses, last_played)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, guild_id, game_name) DO UPDATE SET
			wins = user_stats.wins + EXCLUDED.wins,
			losses = user_stats.losses + EXCLUDED.losses,
			last_played = EXCLUDED.last_played
	`

	_, err := r.pool.Exec(ctx, query,
		input.UserID, input.GuildID, string(input.GameKind),
		input.Wins, input.Losses, input.LastPlayed,
	)
	if err != nil {
		return fmt.Errorf("failed to update user stats: %w", err)
	}

	return nil
}

// GetStats retrieves a user's stats for a game
func (r *postgresRepository) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	const query = `
		SELECT wins, losses, last_played
		FROM user_stats
		WHERE user_id = $1 AND guild_id = $2 AND game_name = $3
	`

	stats := &models.UserStats{
		UserID:   input.UserID,
		GuildID:  input.GuildID,
		GameKind: input.GameKind,
	}

	err := r.pool.QueryRow(ctx, query, input.UserID, input.GuildID, string(input.GameKind)).
		Scan(&stats.Wins, &stats.Losses, &stats.LastPlayed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query user stats: %w", err)
	}

	return &GetStatsOutput{Stats: stats}, nil
}
