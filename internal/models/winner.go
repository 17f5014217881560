package models

import "time"

// WinnerEntry is one row of the guild-scoped winners ledger. Entries are
// immutable once written and are only removed by a leaderboard reset.
type WinnerEntry struct {
	// ID is the unique identifier for the entry
	ID string

	// UserID is the Discord user ID of the winner
	UserID string

	// Username is the winner's display name at the time of the win
	Username string

	// GameKind is the game the entry was earned in
	GameKind GameKind

	// HostID is the Discord user ID of the user who hosted the game
	HostID string

	// HostName is the host's display name at the time of the win
	HostName string

	// GuildID is the guild the win belongs to
	GuildID string

	// Timestamp is when the win was recorded
	Timestamp time.Time
}
