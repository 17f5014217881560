// Package games holds the engines for the six chat games. Each engine runs
// one game as a goroutine that owns a session: it posts prompts through the
// Messenger, races the session inbox against a staged countdown, and records
// wins on the leaderboard when a round resolves.
package games

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gamenightlabs/gamenight/internal/bank"
	"github.com/gamenightlabs/gamenight/internal/models"
	"github.com/gamenightlabs/gamenight/internal/repositories/display"
	"github.com/gamenightlabs/gamenight/internal/rng"
	"github.com/gamenightlabs/gamenight/internal/scheduler"
	"github.com/gamenightlabs/gamenight/internal/services/access"
	"github.com/gamenightlabs/gamenight/internal/services/leaderboard"
	"github.com/gamenightlabs/gamenight/internal/session"
)

const (
	joinEmoji = "🎯"

	// A looping game stops itself after this many rounds in a row end
	// with nobody answering
	maxUnansweredRounds = 3

	// Round wins a player needs in one trivia or scramble run to claim a
	// leaderboard spot
	runWinTarget = 5
)

// Timings are the clocks the games run on. Production uses the defaults;
// they are configurable so deployments can tune round pacing.
type Timings struct {
	// Lobby is the number-guess join window
	Lobby time.Duration

	// GuessMin and GuessMax bound the host-chosen guessing duration
	GuessMin time.Duration
	GuessMax time.Duration

	TriviaRound   time.Duration
	ScrambleRound time.Duration

	EmojiRound      time.Duration
	EmojiFirstHint  time.Duration
	EmojiSecondHint time.Duration

	LyricsRound time.Duration
	RPSRound    time.Duration

	// RevealPause is the dramatic beat between locking the channel and
	// announcing a number-guess result
	RevealPause time.Duration

	// CeremonyPrompt is how long the host has to name the champions role
	CeremonyPrompt time.Duration
}

// DefaultTimings returns the standard game pacing
func DefaultTimings() Timings {
	return Timings{
		Lobby:           10 * time.Second,
		GuessMin:        30 * time.Second,
		GuessMax:        600 * time.Second,
		TriviaRound:     30 * time.Second,
		ScrambleRound:   30 * time.Second,
		EmojiRound:      60 * time.Second,
		EmojiFirstHint:  20 * time.Second,
		EmojiSecondHint: 35 * time.Second,
		LyricsRound:     30 * time.Second,
		RPSRound:        60 * time.Second,
		RevealPause:     3 * time.Second,
		CeremonyPrompt:  2 * time.Minute,
	}
}

// Bank names used for per-guild round-robin rotation
const (
	bankTrivia   = "trivia"
	bankScramble = "scramble"
	bankEmoji    = "emoji"
	bankLyrics   = "lyrics" // suffixed with the category
)

// Define errors
var (
	// ErrWrongGame means the stop command named a game other than the one
	// running
	ErrWrongGame = errors.New("a different game is active in this server")
	// ErrBadDuration means a number-guess duration outside the allowed window
	ErrBadDuration = errors.New("duration must be between 30 and 600 seconds")
	// ErrBadRange means a number-guess upper bound below 2
	ErrBadRange = errors.New("the highest number must be at least 2")
	// ErrBadPick means an RPS host pick that is not rock, paper, or scissors
	ErrBadPick = errors.New("pick must be rock, paper, or scissors")
)

// Engine runs the chat games. One Engine serves every guild; per-game state
// lives in sessions.
type Engine struct {
	registry    *session.Registry
	access      access.Service
	leaderboard leaderboard.Service
	banks       *bank.Store
	picker      *bank.Picker
	random      *rng.Source
	messenger   Messenger
	displayRepo display.Repository
	logger      zerolog.Logger

	leaderboardChannelID string
	privateChannelID     string
	timings              Timings

	// baseCtx parents every session so bot shutdown stops running games
	baseCtx context.Context
}

// Config holds the dependencies for the game engine
type Config struct {
	Registry    *session.Registry
	Access      access.Service
	Leaderboard leaderboard.Service
	Banks       *bank.Store
	Picker      *bank.Picker
	Random      *rng.Source
	Messenger   Messenger
	DisplayRepo display.Repository
	Logger      zerolog.Logger

	// LeaderboardChannelID is where the winners board is rendered.
	// Optional; with no channel the board is only shown on demand.
	LeaderboardChannelID string

	// PrivateChannelID is where the reset ceremony prompts the host.
	// Optional; without one the ceremony skips the prompt and uses the
	// default role name.
	PrivateChannelID string

	// Timings overrides the game pacing. Optional.
	Timings *Timings

	// BaseContext parents game sessions. Optional; defaults to Background.
	BaseContext context.Context
}

// New creates a new game engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Registry == nil {
		return nil, errors.New("session registry cannot be nil")
	}
	if cfg.Access == nil {
		return nil, errors.New("access service cannot be nil")
	}
	if cfg.Leaderboard == nil {
		return nil, errors.New("leaderboard service cannot be nil")
	}
	if cfg.Banks == nil {
		return nil, errors.New("bank store cannot be nil")
	}
	if cfg.Picker == nil {
		return nil, errors.New("picker cannot be nil")
	}
	if cfg.Random == nil {
		return nil, errors.New("randomness source cannot be nil")
	}
	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}
	if cfg.DisplayRepo == nil {
		return nil, errors.New("display repository cannot be nil")
	}

	baseCtx := cfg.BaseContext
	if baseCtx == nil {
		baseCtx = context.Background()
	}

	timings := DefaultTimings()
	if cfg.Timings != nil {
		timings = *cfg.Timings
	}

	return &Engine{
		registry:             cfg.Registry,
		access:               cfg.Access,
		leaderboard:          cfg.Leaderboard,
		banks:                cfg.Banks,
		picker:               cfg.Picker,
		random:               cfg.Random,
		messenger:            cfg.Messenger,
		displayRepo:          cfg.DisplayRepo,
		logger:               cfg.Logger,
		leaderboardChannelID: cfg.LeaderboardChannelID,
		privateChannelID:     cfg.PrivateChannelID,
		timings:              timings,
		baseCtx:              baseCtx,
	}, nil
}

// StartInput carries the fields every start command shares
type StartInput struct {
	GuildID   string
	ChannelID string
	HostID    string
	HostName  string
	// RoleNames are the invoking member's role names, for the access check
	RoleNames []string
}

// begin runs the shared start guard: the invoker must be authorized and the
// guild must have no running game. On success the session occupies the
// guild's scope key.
func (e *Engine) begin(ctx context.Context, kind models.GameKind, input *StartInput) (*session.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.GuildID == "" || input.ChannelID == "" {
		return nil, errors.New("guild ID and channel ID are required")
	}

	if err := e.access.Authorize(ctx, &access.AuthorizeInput{
		GuildID:   input.GuildID,
		RoleNames: input.RoleNames,
	}); err != nil {
		return nil, err
	}

	s := session.New(e.baseCtx, input.GuildID, kind, input.ChannelID, input.HostID, input.HostName)
	if err := e.registry.Add(s); err != nil {
		return nil, err
	}

	return s, nil
}

// Stop ends the named game in a guild. ErrNoSession when nothing is running,
// ErrWrongGame when another game holds the guild.
func (e *Engine) Stop(ctx context.Context, guildID string, kind models.GameKind) error {
	s, ok := e.registry.Get(guildID)
	if !ok {
		return session.ErrNoSession
	}
	if s.Kind != kind {
		return ErrWrongGame
	}

	if _, err := e.registry.Stop(guildID); err != nil {
		return err
	}

	e.logger.Info().
		Str("guild_id", guildID).
		Str("game", string(kind)).
		Msg("game stopped by command")
	return nil
}

// playRound posts nothing itself; it consumes the session inbox until a
// message satisfies the predicate, the countdown expires, or the session is
// stopped. First correct answer resolves the round.
func (e *Engine) playRound(s *session.Session, duration time.Duration, hints []scheduler.Stage, correct func(models.InboundMessage) bool) (models.InboundMessage, bool) {
	s.ResetRound()

	stages := make([]scheduler.Stage, 0, len(hints)+1)
	stages = append(stages, hints...)
	stages = append(stages, scheduler.Stage{After: duration, Run: func(context.Context) {}})

	countdown := scheduler.Start(s.Context(), stages...)
	defer countdown.Stop()

	for {
		select {
		case <-s.Done():
			return models.InboundMessage{}, false
		case <-countdown.Expired():
			return models.InboundMessage{}, false
		case m := <-s.Inbox():
			if !correct(m) {
				continue
			}
			if !s.Resolve(m.AuthorID, m.AuthorName) {
				continue
			}
			return m, true
		}
	}
}

// recordStat bumps the winner's per-game win count. Stats are best effort;
// a storage failure does not interrupt the game.
func (e *Engine) recordStat(ctx context.Context, guildID, userID string, kind models.GameKind) {
	err := e.leaderboard.AddGameWin(ctx, &leaderboard.AddGameWinInput{
		GuildID:  guildID,
		UserID:   userID,
		GameKind: kind,
	})
	if err != nil {
		e.logger.Error().Err(err).
			Str("guild_id", guildID).
			Str("user_id", userID).
			Msg("failed to record game win stat")
	}
}

// recordLedger appends the winner to the guild ledger, announces the
// outcome, refreshes the board, and runs the reset ceremony when the ledger
// fills. A winner already on the ledger keeps the win but claims no spot.
// Returns true when the ledger filled and the ceremony ran, which ends any
// looping game.
func (e *Engine) recordLedger(ctx context.Context, s *session.Session, userID, username string) bool {
	out, err := e.leaderboard.RecordWinner(ctx, &leaderboard.RecordWinnerInput{
		GuildID:  s.Key,
		UserID:   userID,
		Username: username,
		GameKind: s.Kind,
		HostID:   s.HostID,
		HostName: s.HostName,
	})
	if err != nil {
		e.logger.Error().Err(err).
			Str("guild_id", s.Key).
			Str("user_id", userID).
			Msg("failed to record ledger winner")
		e.send(ctx, s.ChannelID, "⚠️ The win could not be recorded on the leaderboard.")
		return false
	}

	if !out.Accepted {
		e.sendf(ctx, s.ChannelID, "**%s** is already on the leaderboard, so this win claims no new spot. Let others have a chance!", username)
		return false
	}

	e.sendf(ctx, s.ChannelID, "🏆 **%s** claims leaderboard spot %d/%d!", username, out.Count, leaderboard.DefaultCapacity)

	if err := e.refreshLeaderboard(ctx, s.Key); err != nil {
		e.logger.Error().Err(err).Str("guild_id", s.Key).Msg("failed to refresh leaderboard display")
	}

	if out.Full {
		e.runCeremony(s)
		return true
	}
	return false
}

func (e *Engine) send(ctx context.Context, channelID, content string) {
	if _, err := e.messenger.Send(ctx, channelID, content); err != nil {
		e.logger.Error().Err(err).Str("channel_id", channelID).Msg("failed to send message")
	}
}

func (e *Engine) sendf(ctx context.Context, channelID, format string, args ...interface{}) {
	e.send(ctx, channelID, fmt.Sprintf(format, args...))
}

func (e *Engine) sendEmbed(ctx context.Context, channelID string, embed *Embed) string {
	id, err := e.messenger.SendEmbed(ctx, channelID, embed)
	if err != nil {
		e.logger.Error().Err(err).Str("channel_id", channelID).Msg("failed to send embed")
		return ""
	}
	return id
}
