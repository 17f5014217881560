package games

import (
	"context"
	"fmt"

	"github.com/gamenightlabs/gamenight/internal/bank"
	"github.com/gamenightlabs/gamenight/internal/match"
	"github.com/gamenightlabs/gamenight/internal/models"
)

// LyricsInput contains parameters for starting a lyrics-guess game
type LyricsInput struct {
	Start StartInput

	// Category selects the song bank; one of bank.LyricsCategories
	Category string
}

// StartLyrics begins a lyrics-guess run: 30-second rounds showing a song
// line from the chosen category, answered with the song title. Punctuation
// and spacing in answers are ignored. Each round win goes straight on the
// leaderboard.
func (e *Engine) StartLyrics(ctx context.Context, input *LyricsInput) error {
	if input == nil {
		return bank.ErrUnknownCategory
	}

	s, err := e.begin(ctx, models.GameKindLyrics, &input.Start)
	if err != nil {
		return err
	}

	lyrics, err := e.banks.Lyrics(input.Category)
	if err != nil {
		e.registry.Release(s)
		return err
	}

	byLine := make(map[string]bank.Lyric, len(lyrics))
	keys := make([]string, 0, len(lyrics))
	for _, l := range lyrics {
		byLine[l.Line] = l
		keys = append(keys, l.Line)
	}

	bankName := bankLyrics + ":" + input.Category

	go func() {
		e.send(s.Context(), s.ChannelID, fmt.Sprintf(
			"🎵 **Lyrics Guess (%s)!** %s is hosting. Name the song; every round win claims a leaderboard spot.",
			input.Category, s.HostName))

		e.runRoundLoop(s, 0,
			func(roundCtx context.Context) (*round, error) {
				key, err := e.picker.Pick(roundCtx, s.Key, bankName, keys)
				if err != nil {
					return nil, err
				}
				l := byLine[key]
				return &round{
					embed: &Embed{
						Title:       "🎵 Name That Song",
						Description: fmt.Sprintf("_%s_", l.Line),
						Color:       ColorInfo,
						Footer:      fmt.Sprintf("%d seconds on the clock", int(e.timings.LyricsRound.Seconds())),
					},
					duration: e.timings.LyricsRound,
					correct: func(m models.InboundMessage) bool {
						return match.Alnum(m.Content, l.Answer)
					},
					answer: l.Answer,
				}, nil
			},
			func(awardCtx context.Context, m models.InboundMessage, _ int) bool {
				e.sendf(awardCtx, s.ChannelID, "✅ **%s** named it!", m.AuthorName)
				e.recordStat(awardCtx, s.Key, m.AuthorID, s.Kind)
				return e.recordLedger(awardCtx, s, m.AuthorID, m.AuthorName)
			},
		)
	}()

	return nil
}
