package leaderboard

import "github.com/gamenightlabs/gamenight/internal/models"

// RecordWinnerInput contains parameters for appending a win to the ledger
type RecordWinnerInput struct {
	GuildID  string
	UserID   string
	Username string
	GameKind models.GameKind
	HostID   string
	HostName string
}

// RecordWinnerOutput describes what happened to the ledger
type RecordWinnerOutput struct {
	// Accepted is false when the user was already on the ledger
	Accepted bool
	// AlreadyPresent is true when the user had an earlier entry
	AlreadyPresent bool
	// Count is the number of entries after the call
	Count int
	// Full is true when the ledger has reached capacity
	Full bool
}

// RecentWinnersInput contains parameters for reading the ledger
type RecentWinnersInput struct {
	GuildID string
	// Limit caps the entries returned; 0 means the ledger capacity
	Limit int
}

// RecentWinnersOutput contains ledger entries, most recent first
type RecentWinnersOutput struct {
	Entries []*models.WinnerEntry
}

// IsFullInput contains parameters for the capacity check
type IsFullInput struct {
	GuildID string
}

// IsFullOutput contains the result of the capacity check
type IsFullOutput struct {
	Full  bool
	Count int
}

// ResetInput contains parameters for clearing the ledger
type ResetInput struct {
	GuildID string
}

// AddGameWinInput contains parameters for bumping a user's win count
type AddGameWinInput struct {
	GuildID  string
	UserID   string
	GameKind models.GameKind
}

// GetUserStatsInput contains parameters for reading a user's stats
type GetUserStatsInput struct {
	GuildID  string
	UserID   string
	GameKind models.GameKind
}

// GetUserStatsOutput contains a user's stats for one game
type GetUserStatsOutput struct {
	Stats *models.UserStats
}
