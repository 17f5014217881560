package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/gamenightlabs/gamenight/internal/games"
)

// sessionMessenger implements games.Messenger over a live Discord session
type sessionMessenger struct {
	session *discordgo.Session
}

func (m *sessionMessenger) Send(_ context.Context, channelID, content string) (string, error) {
	msg, err := m.session.ChannelMessageSend(channelID, content)
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}
	return msg.ID, nil
}

func (m *sessionMessenger) SendEmbed(_ context.Context, channelID string, embed *games.Embed) (string, error) {
	msg, err := m.session.ChannelMessageSendEmbed(channelID, toMessageEmbed(embed))
	if err != nil {
		return "", fmt.Errorf("failed to send embed: %w", err)
	}
	return msg.ID, nil
}

func (m *sessionMessenger) EditEmbed(_ context.Context, channelID, messageID string, embed *games.Embed) error {
	_, err := m.session.ChannelMessageEditEmbed(channelID, messageID, toMessageEmbed(embed))
	if err != nil {
		return fmt.Errorf("failed to edit embed: %w", err)
	}
	return nil
}

func (m *sessionMessenger) React(_ context.Context, channelID, messageID, emoji string) error {
	if err := m.session.MessageReactionAdd(channelID, messageID, emoji); err != nil {
		return fmt.Errorf("failed to add reaction: %w", err)
	}
	return nil
}

// LockChannel denies the everyone role permission to send in the channel.
// The guild ID doubles as the everyone role's ID.
func (m *sessionMessenger) LockChannel(_ context.Context, guildID, channelID string) error {
	err := m.session.ChannelPermissionSet(channelID, guildID,
		discordgo.PermissionOverwriteTypeRole, 0, discordgo.PermissionSendMessages)
	if err != nil {
		return fmt.Errorf("failed to lock channel: %w", err)
	}
	return nil
}

// UnlockChannel removes the overwrite LockChannel added
func (m *sessionMessenger) UnlockChannel(_ context.Context, guildID, channelID string) error {
	if err := m.session.ChannelPermissionDelete(channelID, guildID); err != nil {
		return fmt.Errorf("failed to unlock channel: %w", err)
	}
	return nil
}

// GrantRole assigns the named role to every listed member, creating the
// role first if the guild does not have it yet
func (m *sessionMessenger) GrantRole(_ context.Context, guildID, roleName string, userIDs []string) error {
	roles, err := m.session.GuildRoles(guildID)
	if err != nil {
		return fmt.Errorf("failed to list roles: %w", err)
	}

	var roleID string
	for _, role := range roles {
		if role.Name == roleName {
			roleID = role.ID
			break
		}
	}

	if roleID == "" {
		created, err := m.session.GuildRoleCreate(guildID, &discordgo.RoleParams{
			Name: roleName,
		})
		if err != nil {
			return fmt.Errorf("failed to create role %q: %w", roleName, err)
		}
		roleID = created.ID
	}

	for _, userID := range userIDs {
		if err := m.session.GuildMemberRoleAdd(guildID, userID, roleID); err != nil {
			return fmt.Errorf("failed to grant role to %s: %w", userID, err)
		}
	}

	return nil
}

func toMessageEmbed(embed *games.Embed) *discordgo.MessageEmbed {
	out := &discordgo.MessageEmbed{
		Title:       embed.Title,
		Description: embed.Description,
		Color:       embed.Color,
	}
	for _, f := range embed.Fields {
		out.Fields = append(out.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	if embed.Footer != "" {
		out.Footer = &discordgo.MessageEmbedFooter{Text: embed.Footer}
	}
	return out
}
