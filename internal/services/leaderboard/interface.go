package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/gamenightlabs/gamenight/internal/services/leaderboard Service

import (
	"context"
)

// Service owns the guild winners ledger and the per-user game stats.
type Service interface {
	// RecordWinner appends a game win to the guild's ledger. A user already
	// on the ledger is rejected, not errored: Accepted comes back false and
	// the ledger is unchanged.
	RecordWinner(ctx context.Context, input *RecordWinnerInput) (*RecordWinnerOutput, error)

	// RecentWinners retrieves the guild's ledger, most recent first
	RecentWinners(ctx context.Context, input *RecentWinnersInput) (*RecentWinnersOutput, error)

	// IsFull reports whether the guild's ledger has reached capacity
	IsFull(ctx context.Context, input *IsFullInput) (*IsFullOutput, error)

	// Reset clears the guild's ledger
	Reset(ctx context.Context, input *ResetInput) error

	// AddGameWin additively bumps a user's per-game win count
	AddGameWin(ctx context.Context, input *AddGameWinInput) error

	// GetUserStats retrieves a user's stats for one game
	GetUserStats(ctx context.Context, input *GetUserStatsInput) (*GetUserStatsOutput, error)

	// BeginCeremony claims the guild's reset ceremony. Returns false when a
	// ceremony is already running for the guild, so only one ledger-full
	// event triggers the announce-and-reset flow.
	BeginCeremony(guildID string) bool

	// FinishCeremony releases the guild's ceremony claim
	FinishCeremony(guildID string)
}
