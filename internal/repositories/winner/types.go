package winner

import "github.com/gamenightlabs/gamenight/internal/models"

// AddWinnerInput contains parameters for appending a ledger entry
type AddWinnerInput struct {
	Entry *models.WinnerEntry
}

// GetRecentWinnersInput contains parameters for reading a guild's ledger
type GetRecentWinnersInput struct {
	GuildID string
	Limit   int
}

// GetRecentWinnersOutput contains a guild's entries, most recent first
type GetRecentWinnersOutput struct {
	Entries []*models.WinnerEntry
}

// HasWinnerInput contains parameters for the membership check
type HasWinnerInput struct {
	GuildID string
	UserID  string
}

// HasWinnerOutput contains the result of the membership check
type HasWinnerOutput struct {
	Present bool
}

// CountWinnersInput contains parameters for counting a guild's entries
type CountWinnersInput struct {
	GuildID string
}

// CountWinnersOutput contains the entry count
type CountWinnersOutput struct {
	Count int
}

// ClearWinnersInput contains parameters for clearing a guild's ledger
type ClearWinnersInput struct {
	GuildID string
}
