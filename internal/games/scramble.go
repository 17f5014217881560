package games

import (
	"context"
	"fmt"

	"github.com/gamenightlabs/gamenight/internal/match"
	"github.com/gamenightlabs/gamenight/internal/models"
)

// StartScramble begins a scramble run: 30-second rounds of shuffled words
// from the word bank, scored the same way as trivia.
func (e *Engine) StartScramble(ctx context.Context, input *StartInput) error {
	s, err := e.begin(ctx, models.GameKindScramble, input)
	if err != nil {
		return err
	}

	words, err := e.banks.Words()
	if err != nil {
		e.registry.Release(s)
		return err
	}

	go func() {
		e.send(s.Context(), s.ChannelID, fmt.Sprintf(
			"🔤 **Word Scramble!** %s is hosting. Unscramble the word; **%d round wins** claims a leaderboard spot.",
			s.HostName, runWinTarget))

		e.runRoundLoop(s, runWinTarget,
			func(roundCtx context.Context) (*round, error) {
				word, err := e.picker.Pick(roundCtx, s.Key, bankScramble, words)
				if err != nil {
					return nil, err
				}
				scrambled := e.random.ShuffleString(word)
				return &round{
					embed: &Embed{
						Title:       "🔤 Scramble",
						Description: fmt.Sprintf("Unscramble: **%s**", scrambled),
						Color:       ColorInfo,
						Footer:      fmt.Sprintf("%d seconds on the clock", int(e.timings.ScrambleRound.Seconds())),
					},
					duration: e.timings.ScrambleRound,
					correct: func(m models.InboundMessage) bool {
						return match.Fold(m.Content, word)
					},
					answer: word,
				}, nil
			},
			func(awardCtx context.Context, m models.InboundMessage, runWins int) bool {
				return e.awardRunWin(awardCtx, s, m, runWins)
			},
		)
	}()

	return nil
}
