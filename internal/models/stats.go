package models

import "time"

// UserStats tracks a user's cumulative results for one game in one guild.
// Rows are upserted additively and keyed by (user, guild, game).
type UserStats struct {
	// UserID is the Discord user ID
	UserID string

	// GuildID is the guild the stats belong to
	GuildID string

	// GameKind is the game the stats are for
	GameKind GameKind

	// Wins is the cumulative win count
	Wins int

	// Losses is the cumulative loss count
	Losses int

	// LastPlayed is when the user last finished a round of this game
	LastPlayed time.Time
}
