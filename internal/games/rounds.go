package games

import (
	"context"
	"time"

	"github.com/gamenightlabs/gamenight/internal/models"
	"github.com/gamenightlabs/gamenight/internal/scheduler"
	"github.com/gamenightlabs/gamenight/internal/session"
)

// round is one prompt in a looping game.
type round struct {
	embed    *Embed
	duration time.Duration
	hints    []scheduler.Stage

	// correct decides whether a message answers the prompt
	correct func(models.InboundMessage) bool

	// answer is revealed when the round times out
	answer string
}

// runRoundLoop drives a looping game: fetch a round, post it, wait for the
// first correct answer or the timeout, repeat. The loop stops on a stop
// command, after maxUnansweredRounds consecutive silent rounds, or when
// award reports the run is over (the ledger filled and was reset). award is
// called with the winner's run win count, starting at 1. A winCap above
// zero excludes users who already hit it from resolving rounds, so others
// can still win.
func (e *Engine) runRoundLoop(s *session.Session, winCap int, next func(context.Context) (*round, error), award func(ctx context.Context, m models.InboundMessage, runWins int) bool) {
	ctx := s.Context()
	defer e.registry.Release(s)

	unanswered := 0
	runWins := make(map[string]int)

	for {
		r, err := next(ctx)
		if err != nil {
			e.logger.Error().Err(err).
				Str("guild_id", s.Key).
				Str("game", string(s.Kind)).
				Msg("failed to load next round")
			e.send(ctx, s.ChannelID, "⚠️ Could not load the next round. Stopping the game.")
			return
		}

		correct := r.correct
		if winCap > 0 {
			correct = func(m models.InboundMessage) bool {
				if runWins[m.AuthorID] >= winCap {
					return false
				}
				return r.correct(m)
			}
		}

		e.sendEmbed(ctx, s.ChannelID, r.embed)

		m, won := e.playRound(s, r.duration, r.hints, correct)
		if s.Stopped() {
			return
		}

		if !won {
			unanswered++
			e.sendf(ctx, s.ChannelID, "⏰ Time's up! The answer was **%s**.", r.answer)
			if unanswered >= maxUnansweredRounds {
				e.send(ctx, s.ChannelID, "Three rounds with no answer. Wrapping up, thanks for playing!")
				return
			}
			continue
		}

		unanswered = 0
		runWins[m.AuthorID]++
		if award(ctx, m, runWins[m.AuthorID]) {
			return
		}
	}
}
