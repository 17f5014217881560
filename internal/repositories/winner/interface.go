package winner

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/gamenightlabs/gamenight/internal/repositories/winner Repository

import (
	"context"
)

// Repository defines the persistence interface for the winners ledger
type Repository interface {
	// AddWinner appends an entry to a guild's ledger
	AddWinner(ctx context.Context, input *AddWinnerInput) error

	// GetRecentWinners retrieves a guild's entries, most recent first
	GetRecentWinners(ctx context.Context, input *GetRecentWinnersInput) (*GetRecentWinnersOutput, error)

	// HasWinner reports whether a user already has an entry on a guild's ledger
	HasWinner(ctx context.Context, input *HasWinnerInput) (*HasWinnerOutput, error)

	// CountWinners returns the number of entries on a guild's ledger
	CountWinners(ctx context.Context, input *CountWinnersInput) (*CountWinnersOutput, error)

	// ClearWinners deletes every entry on a guild's ledger
	ClearWinners(ctx context.Context, input *ClearWinnersInput) error
}
