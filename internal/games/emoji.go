package games

import (
	"context"
	"fmt"
	"strings"

	"github.com/gamenightlabs/gamenight/internal/bank"
	"github.com/gamenightlabs/gamenight/internal/match"
	"github.com/gamenightlabs/gamenight/internal/models"
	"github.com/gamenightlabs/gamenight/internal/scheduler"
)

// StartEmoji begins an emoji-decode run: 60-second rounds of emoji clues
// with two staged letter hints. Each round win goes straight on the
// leaderboard.
func (e *Engine) StartEmoji(ctx context.Context, input *StartInput) error {
	s, err := e.begin(ctx, models.GameKindEmoji, input)
	if err != nil {
		return err
	}

	clues, err := e.banks.Clues()
	if err != nil {
		e.registry.Release(s)
		return err
	}

	byEmoji := make(map[string]bank.Clue, len(clues))
	keys := make([]string, 0, len(clues))
	for _, c := range clues {
		byEmoji[c.Emoji] = c
		keys = append(keys, c.Emoji)
	}

	go func() {
		e.send(s.Context(), s.ChannelID, fmt.Sprintf(
			"🧩 **Emoji Decode!** %s is hosting. Work out what the emojis spell; every round win claims a leaderboard spot.",
			s.HostName))

		e.runRoundLoop(s, 0,
			func(roundCtx context.Context) (*round, error) {
				key, err := e.picker.Pick(roundCtx, s.Key, bankEmoji, keys)
				if err != nil {
					return nil, err
				}
				c := byEmoji[key]
				return &round{
					embed: &Embed{
						Title:       "🧩 Emoji Decode",
						Description: c.Emoji,
						Color:       ColorInfo,
						Footer:      fmt.Sprintf("%d seconds on the clock", int(e.timings.EmojiRound.Seconds())),
					},
					duration: e.timings.EmojiRound,
					hints: []scheduler.Stage{
						{
							After: e.timings.EmojiFirstHint,
							Run: func(hintCtx context.Context) {
								e.sendf(hintCtx, s.ChannelID, "💡 Hint: it starts with **%s**.", leadingLetters(c.Answer, 1))
							},
						},
						{
							After: e.timings.EmojiSecondHint,
							Run: func(hintCtx context.Context) {
								if len([]rune(strings.TrimSpace(c.Answer))) < 2 {
									e.sendf(hintCtx, s.ChannelID, "💡 Hint: it is a single letter.")
									return
								}
								e.sendf(hintCtx, s.ChannelID, "💡 Hint: it starts with **%s**.", leadingLetters(c.Answer, 2))
							},
						},
					},
					correct: func(m models.InboundMessage) bool {
						return match.Fold(m.Content, c.Answer)
					},
					answer: c.Answer,
				}, nil
			},
			func(awardCtx context.Context, m models.InboundMessage, _ int) bool {
				e.sendf(awardCtx, s.ChannelID, "✅ **%s** decoded it!", m.AuthorName)
				e.recordStat(awardCtx, s.Key, m.AuthorID, s.Kind)
				return e.recordLedger(awardCtx, s, m.AuthorID, m.AuthorName)
			},
		)
	}()

	return nil
}

// leadingLetters uppercases the first n runes of the trimmed answer.
func leadingLetters(answer string, n int) string {
	trimmed := strings.TrimSpace(answer)
	runes := []rune(trimmed)
	if len(runes) < n {
		n = len(runes)
	}
	return strings.ToUpper(string(runes[:n]))
}
