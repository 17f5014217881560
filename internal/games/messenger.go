package games

//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go github.com/gamenightlabs/gamenight/internal/games Messenger

import (
	"context"
)

// Embed colors
const (
	ColorInfo    = 0x3498DB
	ColorSuccess = 0x2ECC71
	ColorWarning = 0xF1C40F
	ColorDanger  = 0xE74C3C
	ColorGold    = 0xFFD700
)

// EmbedField is one name/value pair on an embed
type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// Embed is a platform-neutral rich message
type Embed struct {
	Title       string
	Description string
	Color       int
	Fields      []EmbedField
	Footer      string
}

// Messenger is the platform surface the game engines talk through. The
// Discord handler implements it over a live session; tests implement it
// with a recorder.
type Messenger interface {
	// Send posts a plain message, returning its ID
	Send(ctx context.Context, channelID, content string) (string, error)

	// SendEmbed posts an embed, returning its ID
	SendEmbed(ctx context.Context, channelID string, embed *Embed) (string, error)

	// EditEmbed replaces an earlier embed in place
	EditEmbed(ctx context.Context, channelID, messageID string, embed *Embed) error

	// React adds the bot's reaction to a message
	React(ctx context.Context, channelID, messageID, emoji string) error

	// LockChannel revokes the everyone-role's permission to send in the
	// channel, used during the number-guess lobby
	LockChannel(ctx context.Context, guildID, channelID string) error

	// UnlockChannel restores the permission LockChannel revoked
	UnlockChannel(ctx context.Context, guildID, channelID string) error

	// GrantRole ensures a role with the given name exists in the guild and
	// assigns it to every listed user
	GrantRole(ctx context.Context, guildID, roleName string, userIDs []string) error
}
