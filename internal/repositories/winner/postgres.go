package winner

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gamenightlabs/gamenight/internal/models"
)

// Config holds configuration for the Postgres winner repository
type Config struct {
	// Pool is the pgx connection pool
	Pool *pgxpool.Pool
}

// postgresRepository implements the Repository interface using PostgreSQL
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new Postgres-backed winner repository
func NewPostgres(cfg *Config) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Pool == nil {
		return nil, errors.New("connection pool cannot be nil")
	}

	return &postgresRepository{pool: cfg.Pool}, nil
}

// AddWinner appends an entry to a guild's ledger
func (r *postgresRepository) AddWinner(ctx context.Context, input *AddWinnerInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	entry := input.Entry
	if entry.ID == "" {
		return errors.New("winner entry ID cannot be empty")
	}

	const query = `
		INSERT INTO winners (id, user_id, username, game_name, host_id, host_name, recorded_at, guild_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID, entry.UserID, entry.Username, string(entry.GameKind),
		entry.HostID, entry.HostName, entry.Timestamp, entry.GuildID,
	)
	if err != nil {
		return fmt.Errorf("failed to add winner: %w", err)
	}

	return nil
}

// GetRecentWinners retrieves a guild's entries, most recent first
func (r *postgresRepository) GetRecentWinners(ctx context.Context, input *GetRecentWinnersInput) (*GetRecentWinnersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	const query = `
		SELECT id, user_id, username, game_name, host_id, host_name, recorded_at, guild_id
		FROM winners
		WHERE guild_id = $1
		ORDER BY recorded_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, input.GuildID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query winners: %w", err)
	}
	defer rows.Close()

	var entries []*models.WinnerEntry
	for rows.Next() {
		var entry models.WinnerEntry
		var gameName string
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Username, &gameName,
			&entry.HostID, &entry.HostName, &entry.Timestamp, &entry.GuildID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan winner row: %w", err)
		}
		entry.GameKind = models.GameKind(gameName)
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read winner rows: %w", err)
	}

	return &GetRecentWinnersOutput{Entries: entries}, nil
}

// HasWinner reports whether a user already has an entry on a guild's ledger
func (r *postgresRepository) HasWinner(ctx context.Context, input *HasWinnerInput) (*HasWinnerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	const query = `SELECT EXISTS (SELECT 1 FROM winners WHERE guild_id = $1 AND user_id = $2)`

	var present bool
	if err := r.pool.QueryRow(ctx, query, input.GuildID, input.UserID).Scan(&present); err != nil {
		return nil, fmt.Errorf("failed to check winner membership: %w", err)
	}

	return &HasWinnerOutput{Present: present}, nil
}

// CountWinners returns the number of entries on a guild's ledger
func (r *postgresRepository) CountWinners(ctx context.Context, input *CountWinnersInput) (*CountWinnersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	const query = `SELECT COUNT(*) FROM winners WHERE guild_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, input.GuildID).Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to count winners: %w", err)
	}

	return &CountWinnersOutput{Count: count}, nil
}

// ClearWinners deletes every entry on a guild's ledger
func (r *postgresRepository) ClearWinners(ctx context.Context, input *ClearWinnersInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if _, err := r.pool.Exec(ctx, `DELETE FROM winners WHERE guild_id = $1`, input.GuildID); err != nil {
		return fmt.Errorf("failed to clear winners: %w", err)
	}

	return nil
}
