package games

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gamenightlabs/gamenight/internal/models"
	"github.com/gamenightlabs/gamenight/internal/services/leaderboard"
	"github.com/gamenightlabs/gamenight/internal/session"
)

// Role granted when the host lets the prompt lapse
const defaultChampionRole = "Game Night Champion"

// runCeremony handles a full ledger: announce it, render the final board,
// ask the host to name the champions role, grant the role to everyone on
// the ledger, and clear it for the next season. The per-guild ceremony
// claim makes sure two wins landing together trigger this once.
func (e *Engine) runCeremony(s *session.Session) {
	guildID := s.Key
	if !e.leaderboard.BeginCeremony(guildID) {
		return
	}
	defer e.leaderboard.FinishCeremony(guildID)

	// The session may end while the ceremony is mid-prompt, so the
	// ceremony runs on the bot's context, not the session's.
	ctx, cancel := context.WithTimeout(e.baseCtx, e.timings.CeremonyPrompt+time.Minute)
	defer cancel()

	out, err := e.leaderboard.RecentWinners(ctx, &leaderboard.RecentWinnersInput{
		GuildID: guildID,
	})
	if err != nil {
		e.logger.Error().Err(err).Str("guild_id", guildID).Msg("ceremony could not read the ledger")
		return
	}
	if len(out.Entries) == 0 {
		return
	}

	e.send(ctx, s.ChannelID, "🎊 **The leaderboard is full!** Ten champions stand. Time for the ceremony!")

	if err := e.refreshLeaderboard(ctx, guildID); err != nil {
		e.logger.Error().Err(err).Str("guild_id", guildID).Msg("ceremony could not render the final board")
	}

	roleName := e.promptForRoleName(ctx, guildID, s.HostID, s.HostName)

	userIDs := make([]string, 0, len(out.Entries))
	names := make([]string, 0, len(out.Entries))
	for _, entry := range out.Entries {
		userIDs = append(userIDs, entry.UserID)
		names = append(names, entry.Username)
	}

	if err := e.messenger.GrantRole(ctx, guildID, roleName, userIDs); err != nil {
		e.logger.Error().Err(err).
			Str("guild_id", guildID).
			Str("role", roleName).
			Msg("ceremony could not grant the champions role")
		e.sendf(ctx, s.ChannelID, "⚠️ Could not grant the **%s** role. A moderator may need to do it by hand.", roleName)
	} else {
		e.sendf(ctx, s.ChannelID, "👑 %s now wear the **%s** role!", strings.Join(names, ", "), roleName)
	}

	if err := e.leaderboard.Reset(ctx, &leaderboard.ResetInput{GuildID: guildID}); err != nil {
		e.logger.Error().Err(err).Str("guild_id", guildID).Msg("ceremony could not clear the ledger")
		return
	}

	if err := e.refreshLeaderboard(ctx, guildID); err != nil {
		e.logger.Error().Err(err).Str("guild_id", guildID).Msg("ceremony could not render the cleared board")
	}

	e.send(ctx, s.ChannelID, "The leaderboard has been reset. A new season begins!")

	e.logger.Info().
		Str("guild_id", guildID).
		Str("role", roleName).
		Int("champions", len(userIDs)).
		Msg("ceremony complete")
}

// promptForRoleName asks the host, in the private channel when one is
// configured, what to call the champions role. The default name is used
// when the prompt times out.
func (e *Engine) promptForRoleName(ctx context.Context, guildID, hostID, hostName string) string {
	promptChannel := e.privateChannelID
	if promptChannel == "" {
		return defaultChampionRole
	}

	e.send(ctx, promptChannel, fmt.Sprintf(
		"%s, what should the champions role be called? Reply here within %d minutes or **%s** is used.",
		hostName, int(e.timings.CeremonyPrompt.Minutes()), defaultChampionRole))

	promptCtx, cancel := context.WithTimeout(ctx, e.timings.CeremonyPrompt)
	defer cancel()

	reply, err := e.registry.AwaitMessage(promptCtx, func(m models.InboundMessage) bool {
		return m.GuildID == guildID && m.ChannelID == promptChannel && m.AuthorID == hostID
	})
	if err != nil {
		return defaultChampionRole
	}

	name := strings.TrimSpace(reply.Content)
	if name == "" {
		return defaultChampionRole
	}
	return name
}
