package stats

import (
	"time"

	"github.com/gamenightlabs/gamenight/internal/models"
)

// UpdateStatsInput contains the additive deltas for one upsert
type UpdateStatsInput struct {
	UserID     string
	GuildID    string
	GameKind   models.GameKind
	Wins       int
	Losses     int
	LastPlayed time.Time
}

// GetStatsInput contains parameters for reading a user's stats
type GetStatsInput struct {
	UserID   string
	GuildID  string
	GameKind models.GameKind
}

// GetStatsOutput contains a user's stats for one game
type GetStatsOutput struct {
	Stats *models.UserStats
}
