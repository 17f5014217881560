package games

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gamenightlabs/gamenight/internal/match"
	"github.com/gamenightlabs/gamenight/internal/models"
	"github.com/gamenightlabs/gamenight/internal/scheduler"
	"github.com/gamenightlabs/gamenight/internal/session"
)

// Lobby display shows at most this many joined players by name
const lobbyDisplayLimit = 10

// NumberGuessInput contains parameters for starting a number-guess game
type NumberGuessInput struct {
	Start StartInput

	// Max is the top of the guessing range [1, Max]
	Max int

	// Duration is how long the guessing phase runs
	Duration time.Duration
}

// StartNumberGuess begins a number-guess game: a locked-channel lobby that
// players join by reacting, then a timed guessing phase with two staged
// hints. Returns once the game is underway; the round runs on its own
// goroutine.
func (e *Engine) StartNumberGuess(ctx context.Context, input *NumberGuessInput) error {
	if input == nil {
		return ErrBadRange
	}
	if input.Max < 2 {
		return ErrBadRange
	}
	if input.Duration < e.timings.GuessMin || input.Duration > e.timings.GuessMax {
		return ErrBadDuration
	}

	s, err := e.begin(ctx, models.GameKindNumberGuess, &input.Start)
	if err != nil {
		return err
	}

	go e.runNumberGuess(s, input.Max, input.Duration)
	return nil
}

func (e *Engine) runNumberGuess(s *session.Session, max int, duration time.Duration) {
	ctx := s.Context()
	defer e.registry.Release(s)

	// The secret exists from the start so a stop at any point can reveal it
	secret := e.random.Between(1, max)

	locked := false
	lock := func(c context.Context) {
		if err := e.messenger.LockChannel(c, s.Key, s.ChannelID); err != nil {
			e.logger.Error().Err(err).Str("channel_id", s.ChannelID).Msg("failed to lock channel")
			return
		}
		locked = true
	}
	unlock := func(c context.Context) {
		if !locked {
			return
		}
		locked = false
		if err := e.messenger.UnlockChannel(c, s.Key, s.ChannelID); err != nil {
			e.logger.Error().Err(err).Str("channel_id", s.ChannelID).Msg("failed to unlock channel")
		}
	}
	// The channel must come back no matter how the game ends.
	defer func() { unlock(e.baseCtx) }()

	lock(ctx)

	announceID := e.sendEmbed(ctx, s.ChannelID, e.lobbyEmbed(max, nil))
	if announceID != "" {
		if err := e.messenger.React(ctx, s.ChannelID, announceID, joinEmoji); err != nil {
			e.logger.Error().Err(err).Msg("failed to seed join reaction")
		}
	}

	if !e.runLobby(s, announceID, max) {
		e.sendf(e.baseCtx, s.ChannelID, "🛑 The game has been stopped. The number was **%d**.", secret)
		return
	}

	unlock(ctx)

	e.sendEmbed(ctx, s.ChannelID, &Embed{
		Title: "🔓 Go!",
		Description: fmt.Sprintf(
			"**%d** player(s) are in. Guess the number between **1** and **%d**. You have **%d seconds**!",
			s.ParticipantCount(), max, int(duration.Seconds())),
		Color: ColorSuccess,
	})

	hints := []scheduler.Stage{
		{
			After: duration * 3 / 10,
			Run: func(hintCtx context.Context) {
				e.sendf(hintCtx, s.ChannelID, "💡 Hint 1: the number is **%s**.", midpointHint(secret, max))
			},
		},
		{
			After: duration * 7 / 10,
			Run: func(hintCtx context.Context) {
				e.sendf(hintCtx, s.ChannelID, "💡 Hint 2: the number is **%s**.", quartileHint(secret, max))
			},
		},
	}

	m, won := e.playRound(s, duration, hints, func(m models.InboundMessage) bool {
		if !s.HasParticipant(m.AuthorID) {
			return false
		}
		guess, ok := match.Number(m.Content, max)
		return ok && guess == secret
	})

	if s.Stopped() && !won {
		e.sendf(e.baseCtx, s.ChannelID, "🛑 The game has been stopped. The number was **%d**.", secret)
		return
	}

	// Terminal sequence: lock the channel, hold a beat, announce, unlock.
	e.send(ctx, s.ChannelID, "🔒 Locking the channel to announce the result...")
	lock(ctx)
	select {
	case <-time.After(e.timings.RevealPause):
	case <-s.Done():
	}

	if won {
		e.sendf(ctx, s.ChannelID, "🎉 **%s** guessed it! The number was **%d**.", m.AuthorName, secret)
	} else {
		e.sendf(ctx, s.ChannelID, "⏰ No one guessed it in time. The number was **%d**. No winner this time.", secret)
	}
	unlock(ctx)

	if won {
		e.recordStat(ctx, s.Key, m.AuthorID, s.Kind)
		e.recordLedger(ctx, s, m.AuthorID, m.AuthorName)
	}
}

// runLobby collects join reactions until the lobby countdown expires,
// editing the announce embed as players join. Returns false if the session
// was stopped mid-lobby.
func (e *Engine) runLobby(s *session.Session, announceID string, max int) bool {
	countdown := scheduler.Start(s.Context(), scheduler.Stage{
		After: e.timings.Lobby,
		Run:   func(context.Context) {},
	})
	defer countdown.Stop()

	var joined []string

	for {
		select {
		case <-s.Done():
			return false
		case <-countdown.Expired():
			return true
		case r := <-s.Reactions():
			if r.MessageID != announceID || r.Emoji != joinEmoji {
				continue
			}
			if !s.AddParticipant(r.UserID) {
				continue
			}
			joined = append(joined, r.UserID)
			if announceID == "" {
				continue
			}
			if err := e.messenger.EditEmbed(s.Context(), s.ChannelID, announceID, e.lobbyEmbed(max, joined)); err != nil {
				e.logger.Error().Err(err).Str("message_id", announceID).Msg("failed to update lobby roster")
			}
		}
	}
}

// lobbyEmbed renders the join announcement with the current roster, showing
// the first lobbyDisplayLimit players and a count of the rest.
func (e *Engine) lobbyEmbed(max int, joined []string) *Embed {
	roster := "*No one yet*"
	if len(joined) > 0 {
		shown := joined
		extra := 0
		if len(shown) > lobbyDisplayLimit {
			extra = len(shown) - lobbyDisplayLimit
			shown = shown[:lobbyDisplayLimit]
		}
		mentions := make([]string, len(shown))
		for i, id := range shown {
			mentions[i] = "<@" + id + ">"
		}
		roster = strings.Join(mentions, "\n")
		if extra > 0 {
			roster += fmt.Sprintf("\n...and **%d more players**!", extra)
		}
	}

	return &Embed{
		Title: "🔢 Guess the Number",
		Description: fmt.Sprintf(
			"I'm thinking of a number between **1** and **%d**.\nReact with %s to join. The game starts in %d seconds.",
			max, joinEmoji, int(e.timings.Lobby.Seconds())),
		Color:  ColorInfo,
		Fields: []EmbedField{{Name: "👥 Players Joined", Value: roster}},
		Footer: fmt.Sprintf("Chat is paused for %d seconds for fair gameplay.", int(e.timings.Lobby.Seconds())),
	}
}

// midpointHint places the secret relative to the midpoint of the range.
func midpointHint(secret, max int) string {
	mid := max / 2
	if secret > mid {
		return fmt.Sprintf("greater than %d", mid)
	}
	return fmt.Sprintf("less than or equal to %d", mid)
}

// quartileHint places the secret relative to the middle half of the range.
func quartileHint(secret, max int) string {
	quarter := max / 4
	threeQuarters := 3 * quarter
	switch {
	case secret >= quarter && secret <= threeQuarters:
		return fmt.Sprintf("between %d and %d", quarter, threeQuarters)
	case secret > threeQuarters:
		return fmt.Sprintf("greater than %d", threeQuarters)
	default:
		return fmt.Sprintf("less than %d", quarter)
	}
}
