package games

import (
	"context"
	"fmt"

	"github.com/gamenightlabs/gamenight/internal/bank"
	"github.com/gamenightlabs/gamenight/internal/match"
	"github.com/gamenightlabs/gamenight/internal/models"
	"github.com/gamenightlabs/gamenight/internal/session"
)

// StartTrivia begins a trivia run: 30-second rounds of questions from the
// trivia bank, first correct answer wins each round, five round wins in one
// run claims a leaderboard spot.
func (e *Engine) StartTrivia(ctx context.Context, input *StartInput) error {
	s, err := e.begin(ctx, models.GameKindTrivia, input)
	if err != nil {
		return err
	}

	questions, err := e.banks.Questions()
	if err != nil {
		e.registry.Release(s)
		return err
	}

	byPrompt := make(map[string]bank.Question, len(questions))
	keys := make([]string, 0, len(questions))
	for _, q := range questions {
		byPrompt[q.Question] = q
		keys = append(keys, q.Question)
	}

	go func() {
		e.send(s.Context(), s.ChannelID, fmt.Sprintf(
			"🧠 **Trivia time!** %s is hosting. First correct answer wins each round; **%d round wins** claims a leaderboard spot.",
			s.HostName, runWinTarget))

		e.runRoundLoop(s, runWinTarget,
			func(roundCtx context.Context) (*round, error) {
				key, err := e.picker.Pick(roundCtx, s.Key, bankTrivia, keys)
				if err != nil {
					return nil, err
				}
				q := byPrompt[key]
				return &round{
					embed: &Embed{
						Title:       "🧠 Trivia",
						Description: q.Question,
						Color:       ColorInfo,
						Footer:      fmt.Sprintf("%d seconds on the clock", int(e.timings.TriviaRound.Seconds())),
					},
					duration: e.timings.TriviaRound,
					correct: func(m models.InboundMessage) bool {
						return match.Fold(m.Content, q.Answer)
					},
					answer: q.Answer,
				}, nil
			},
			func(awardCtx context.Context, m models.InboundMessage, runWins int) bool {
				return e.awardRunWin(awardCtx, s, m, runWins)
			},
		)
	}()

	return nil
}

// awardRunWin handles a round win in the run-scored games. Every round win
// counts toward stats; the leaderboard spot is claimed when the winner
// reaches the run target, after which the round loop's cap keeps them from
// resolving further rounds. Returns true when the win filled the ledger.
func (e *Engine) awardRunWin(ctx context.Context, s *session.Session, m models.InboundMessage, runWins int) bool {
	e.recordStat(ctx, s.Key, m.AuthorID, s.Kind)

	if runWins < runWinTarget {
		e.sendf(ctx, s.ChannelID, "✅ **%s** got it! That's **%d/%d** this run.", m.AuthorName, runWins, runWinTarget)
		return false
	}

	e.sendf(ctx, s.ChannelID, "🌟 **%s** hit **%d** wins this run!", m.AuthorName, runWinTarget)
	return e.recordLedger(ctx, s, m.AuthorID, m.AuthorName)
}
