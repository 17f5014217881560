package games

import (
	"context"
	"fmt"
	"strings"

	"github.com/gamenightlabs/gamenight/internal/models"
	"github.com/gamenightlabs/gamenight/internal/session"
)

// beats maps each RPS pick to the pick that defeats it
var beats = map[string]string{
	"rock":     "paper",
	"paper":    "scissors",
	"scissors": "rock",
}

// NormalizeRPSPick canonicalizes an RPS pick, accepting the common
// "scissor" spelling. Returns false for anything else.
func NormalizeRPSPick(pick string) (string, bool) {
	p := strings.ToLower(strings.TrimSpace(pick))
	if p == "scissor" {
		p = "scissors"
	}
	if _, ok := beats[p]; !ok {
		return "", false
	}
	return p, true
}

// RPSInput contains parameters for starting an RPS game
type RPSInput struct {
	Start StartInput

	// HostPick is the host's secret pick; players race to name what beats it
	HostPick string
}

// StartRPS begins a single-round RPS game: the host locks in a pick and
// players have 60 seconds to call out the pick that beats it. The winner
// goes straight on the leaderboard.
func (e *Engine) StartRPS(ctx context.Context, input *RPSInput) error {
	if input == nil {
		return ErrBadPick
	}

	pick, ok := NormalizeRPSPick(input.HostPick)
	if !ok {
		return ErrBadPick
	}

	s, err := e.begin(ctx, models.GameKindRPS, &input.Start)
	if err != nil {
		return err
	}

	go e.runRPS(s, pick)
	return nil
}

func (e *Engine) runRPS(s *session.Session, pick string) {
	ctx := s.Context()
	defer e.registry.Release(s)

	winning := beats[pick]

	e.sendEmbed(ctx, s.ChannelID, &Embed{
		Title: "✊ Rock, Paper, Scissors",
		Description: fmt.Sprintf(
			"%s has locked in a secret pick. Call out the move that **beats** it! First correct call in **%d seconds** wins.",
			s.HostName, int(e.timings.RPSRound.Seconds())),
		Color: ColorInfo,
	})

	m, won := e.playRound(s, e.timings.RPSRound, nil, func(m models.InboundMessage) bool {
		guess, ok := NormalizeRPSPick(m.Content)
		return ok && guess == winning
	})

	if s.Stopped() && !won {
		return
	}

	if !won {
		e.sendf(ctx, s.ChannelID, "⏰ Time's up! %s picked **%s**, so **%s** would have won.", s.HostName, pick, winning)
		return
	}

	e.sendf(ctx, s.ChannelID, "🎉 **%s** called **%s**, which beats %s's **%s**!", m.AuthorName, winning, s.HostName, pick)
	e.recordStat(ctx, s.Key, m.AuthorID, s.Kind)
	e.recordLedger(ctx, s, m.AuthorID, m.AuthorName)
}
