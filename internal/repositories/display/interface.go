package display

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/gamenightlabs/gamenight/internal/repositories/display Repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a channel has no tracked leaderboard message
var ErrNotFound = errors.New("no leaderboard message tracked for channel")

// Repository remembers the last leaderboard message the bot posted in each
// channel, so the display is edited in place instead of reposted.
type Repository interface {
	// GetLastMessage retrieves the tracked message for a channel
	GetLastMessage(ctx context.Context, input *GetLastMessageInput) (*GetLastMessageOutput, error)

	// SetLastMessage records the message to edit on the next refresh
	SetLastMessage(ctx context.Context, input *SetLastMessageInput) error
}
