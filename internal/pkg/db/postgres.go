// Package db provides the PostgreSQL connection pool and schema bootstrap.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/gamenightlabs/gamenight/internal/config"
)

// Pool wraps pgxpool.Pool.
type Pool struct {
	*pgxpool.Pool
}

// NewPool creates a new PostgreSQL connection pool and verifies the
// connection.
func NewPool(ctx context.Context, cfg *config.DatabaseConfig) (*Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.PoolSize)
	poolConfig.MinConns = int32(cfg.PoolSize / 4)
	if poolConfig.MinConns < 1 {
		poolConfig.MinConns = 1
	}

	if cfg.ConnectTimeout > 0 {
		poolConfig.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	} else {
		poolConfig.ConnConfig.ConnectTimeout = 10 * time.Second
	}
	if cfg.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	poolConfig.HealthCheckPeriod = 30 * time.Second

	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Name).
		Msg("Connecting to PostgreSQL")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// EnsureSchema creates the bot's tables when they do not exist yet: the
// guild-scoped winners ledger, per-user game stats, and per-guild settings.
func (p *Pool) EnsureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS winners (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			username TEXT,
			game_name TEXT NOT NULL,
			host_id TEXT,
			host_name TEXT,
			recorded_at TIMESTAMPTZ NOT NULL,
			guild_id TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS winners_guild_recorded_idx
			ON winners (guild_id, recorded_at DESC);

		CREATE TABLE IF NOT EXISTS user_stats (
			user_id TEXT NOT NULL,
			guild_id TEXT NOT NULL,
			game_name TEXT NOT NULL,
			wins INT NOT NULL DEFAULT 0,
			losses INT NOT NULL DEFAULT 0,
			last_played TIMESTAMPTZ,
			PRIMARY KEY (user_id, guild_id, game_name)
		);

		CREATE TABLE IF NOT EXISTS server_settings (
			guild_id TEXT PRIMARY KEY,
			allowed_roles TEXT NOT NULL
		);
	`

	if _, err := p.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	log.Info().Msg("Database schema is ready")
	return nil
}

// Close closes the connection pool.
func (p *Pool) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
}
