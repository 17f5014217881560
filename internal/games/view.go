package games

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gamenightlabs/gamenight/internal/models"
	"github.com/gamenightlabs/gamenight/internal/repositories/display"
	"github.com/gamenightlabs/gamenight/internal/services/access"
	"github.com/gamenightlabs/gamenight/internal/services/leaderboard"
)

// LeaderboardEmbed renders the guild's winners board. Also used by the
// on-demand leaderboard command.
func LeaderboardEmbed(entries []*models.WinnerEntry) *Embed {
	embed := &Embed{
		Title: "🏆 Winners Leaderboard",
		Color: ColorGold,
		Footer: fmt.Sprintf("%d/%d spots claimed", len(entries),
			leaderboard.DefaultCapacity),
	}

	if len(entries) == 0 {
		embed.Description = "No winners yet. Win a game to claim the first spot!"
		return embed
	}

	var b strings.Builder
	// Ledger reads come back most recent first; the board shows spots in
	// the order they were claimed.
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		fmt.Fprintf(&b, "%d. **%s** · %s (hosted by %s)\n",
			len(entries)-i, entry.Username, entry.GameKind, entry.HostName)
	}
	embed.Description = b.String()

	return embed
}

// Leaderboard renders the guild's current board for an on-demand command.
func (e *Engine) Leaderboard(ctx context.Context, guildID string) (*Embed, error) {
	out, err := e.leaderboard.RecentWinners(ctx, &leaderboard.RecentWinnersInput{
		GuildID: guildID,
	})
	if err != nil {
		return nil, err
	}
	return LeaderboardEmbed(out.Entries), nil
}

// ResetLeaderboard clears the guild ledger on an authorized moderator
// command and re-renders the board. No ceremony runs; this is the manual
// escape hatch.
func (e *Engine) ResetLeaderboard(ctx context.Context, guildID string, roleNames []string) error {
	if err := e.access.Authorize(ctx, &access.AuthorizeInput{
		GuildID:   guildID,
		RoleNames: roleNames,
	}); err != nil {
		return err
	}

	if err := e.leaderboard.Reset(ctx, &leaderboard.ResetInput{GuildID: guildID}); err != nil {
		return err
	}

	if err := e.refreshLeaderboard(ctx, guildID); err != nil {
		e.logger.Error().Err(err).Str("guild_id", guildID).Msg("failed to refresh leaderboard display")
	}
	return nil
}

// refreshLeaderboard re-renders the board in the leaderboard channel,
// editing the last posted message in place when one is tracked.
func (e *Engine) refreshLeaderboard(ctx context.Context, guildID string) error {
	if e.leaderboardChannelID == "" {
		return nil
	}

	out, err := e.leaderboard.RecentWinners(ctx, &leaderboard.RecentWinnersInput{
		GuildID: guildID,
	})
	if err != nil {
		return err
	}

	embed := LeaderboardEmbed(out.Entries)

	last, err := e.displayRepo.GetLastMessage(ctx, &display.GetLastMessageInput{
		ChannelID: e.leaderboardChannelID,
	})
	if err == nil {
		if editErr := e.messenger.EditEmbed(ctx, e.leaderboardChannelID, last.MessageID, embed); editErr == nil {
			return nil
		}
		// The tracked message may have been deleted; fall through and post
		// a fresh one.
	} else if !errors.Is(err, display.ErrNotFound) {
		return err
	}

	messageID, err := e.messenger.SendEmbed(ctx, e.leaderboardChannelID, embed)
	if err != nil {
		return err
	}

	return e.displayRepo.SetLastMessage(ctx, &display.SetLastMessageInput{
		ChannelID: e.leaderboardChannelID,
		MessageID: messageID,
	})
}
