package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/gamenightlabs/gamenight/internal/bank"
	"github.com/gamenightlabs/gamenight/internal/games"
	"github.com/gamenightlabs/gamenight/internal/services/access"
	"github.com/gamenightlabs/gamenight/internal/session"
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption

	// AdminOnly defaults the command to members with Manage Server
	AdminOnly bool
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	cmd := &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
	if c.AdminOnly {
		perms := int64(discordgo.PermissionManageServer)
		cmd.DefaultMemberPermissions = &perms
	}
	return cmd
}

// RespondWithMessage sends a simple text message response to an interaction
func RespondWithMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
}

// RespondWithEphemeralMessage sends a response only the invoker can see
func RespondWithEphemeralMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondWithEmbed sends an embed response to an interaction
func RespondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// expectedErrors are user-facing conditions: the command was understood but
// cannot run. They answer the invoker privately, in the error's own words.
var expectedErrors = []error{
	access.ErrNotConfigured,
	access.ErrNotAllowed,
	access.ErrNoRoles,
	session.ErrSessionActive,
	session.ErrNoSession,
	games.ErrWrongGame,
	games.ErrBadDuration,
	games.ErrBadRange,
	games.ErrBadPick,
	bank.ErrMissingBank,
	bank.ErrCorruptBank,
	bank.ErrEmptyBank,
	bank.ErrUnknownCategory,
}

// RespondWithError maps a command failure to an interaction response.
// Expected conditions are told to the invoker ephemerally; anything else
// gets a generic apology and should be logged by the caller.
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	for _, expected := range expectedErrors {
		if errors.Is(err, expected) {
			return RespondWithEphemeralMessage(s, i, "⚠️ "+expected.Error())
		}
	}
	return RespondWithEphemeralMessage(s, i, "⚠️ Something went wrong. Please try again.")
}
