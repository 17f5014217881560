package rotation

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/gamenightlabs/gamenight/internal/repositories/rotation Repository

import (
	"context"
)

// Repository tracks which bank items a guild has already seen, so question
// and word selection is round-robin: nothing repeats until the pool is
// exhausted and the used-set is cleared.
type Repository interface {
	// GetUsed retrieves the items a guild has already been served from a bank
	GetUsed(ctx context.Context, input *GetUsedInput) (*GetUsedOutput, error)

	// MarkUsed records that an item has been served to a guild
	MarkUsed(ctx context.Context, input *MarkUsedInput) error

	// ClearUsed forgets a guild's used items for a bank
	ClearUsed(ctx context.Context, input *ClearUsedInput) error
}
