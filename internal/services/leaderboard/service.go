package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gamenightlabs/gamenight/internal/common/clock"
	"github.com/gamenightlabs/gamenight/internal/common/uuid"
	"github.com/gamenightlabs/gamenight/internal/models"
	statsRepo "github.com/gamenightlabs/gamenight/internal/repositories/stats"
	winnerRepo "github.com/gamenightlabs/gamenight/internal/repositories/winner"
)

// DefaultCapacity is how many winners a guild's ledger holds before the
// reset ceremony runs
const DefaultCapacity = 10

// service implements the Service interface
type service struct {
	winnerRepo winnerRepo.Repository
	statsRepo  statsRepo.Repository
	clock      clock.Clock
	uuid       uuid.UUID
	capacity   int

	mu         sync.Mutex
	ceremonies map[string]bool
}

// Config holds the dependencies for the leaderboard service
type Config struct {
	WinnerRepo winnerRepo.Repository
	StatsRepo  statsRepo.Repository

	// Optional. Defaults to the system clock
	Clock clock.Clock

	// Optional. Defaults to random UUIDs
	UUID uuid.UUID

	// Optional. Defaults to DefaultCapacity
	Capacity int
}

// New creates a new leaderboard service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.WinnerRepo == nil {
		return nil, errors.New("winner repository cannot be nil")
	}
	if cfg.StatsRepo == nil {
		return nil, errors.New("stats repository cannot be nil")
	}

	clockImpl := cfg.Clock
	if clockImpl == nil {
		clockImpl = clock.New()
	}

	uuidImpl := cfg.UUID
	if uuidImpl == nil {
		uuidImpl = uuid.New()
	}

	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &service{
		winnerRepo: cfg.WinnerRepo,
		statsRepo:  cfg.StatsRepo,
		clock:      clockImpl,
		uuid:       uuidImpl,
		capacity:   capacity,
		ceremonies: make(map[string]bool),
	}, nil
}

// RecordWinner appends a game win to the guild's ledger
func (s *service) RecordWinner(ctx context.Context, input *RecordWinnerInput) (*RecordWinnerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("guild ID and user ID are required")
	}

	has, err := s.winnerRepo.HasWinner(ctx, &winnerRepo.HasWinnerInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check ledger membership: %w", err)
	}

	if has.Present {
		count, err := s.count(ctx, input.GuildID)
		if err != nil {
			return nil, err
		}
		return &RecordWinnerOutput{
			Accepted:       false,
			AlreadyPresent: true,
			Count:          count,
			Full:           count >= s.capacity,
		}, nil
	}

	err = s.winnerRepo.AddWinner(ctx, &winnerRepo.AddWinnerInput{
		Entry: &models.WinnerEntry{
			ID:        s.uuid.NewUUID(),
			UserID:    input.UserID,
			Username:  input.Username,
			GameKind:  input.GameKind,
			HostID:    input.HostID,
			HostName:  input.HostName,
			GuildID:   input.GuildID,
			Timestamp: s.clock.Now(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record winner: %w", err)
	}

	count, err := s.count(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	return &RecordWinnerOutput{
		Accepted: true,
		Count:    count,
		Full:     count >= s.capacity,
	}, nil
}

// RecentWinners retrieves the guild's ledger, most recent first
func (s *service) RecentWinners(ctx context.Context, input *RecentWinnersInput) (*RecentWinnersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.capacity
	}

	out, err := s.winnerRepo.GetRecentWinners(ctx, &winnerRepo.GetRecentWinnersInput{
		GuildID: input.GuildID,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	return &RecentWinnersOutput{Entries: out.Entries}, nil
}

// IsFull reports whether the guild's ledger has reached capacity
func (s *service) IsFull(ctx context.Context, input *IsFullInput) (*IsFullOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	count, err := s.count(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	return &IsFullOutput{
		Full:  count >= s.capacity,
		Count: count,
	}, nil
}

// Reset clears the guild's ledger
func (s *service) Reset(ctx context.Context, input *ResetInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := s.winnerRepo.ClearWinners(ctx, &winnerRepo.ClearWinnersInput{
		GuildID: input.GuildID,
	}); err != nil {
		return fmt.Errorf("failed to clear ledger: %w", err)
	}

	return nil
}

// AddGameWin additively bumps a user's per-game win count
func (s *service) AddGameWin(ctx context.Context, input *AddGameWinInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	err := s.statsRepo.UpdateStats(ctx, &statsRepo.UpdateStatsInput{
		UserID:     input.UserID,
		GuildID:    input.GuildID,
		GameKind:   input.GameKind,
		Wins:       1,
		LastPlayed: s.clock.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to update stats: %w", err)
	}

	return nil
}

// GetUserStats retrieves a user's stats for one game
func (s *service) GetUserStats(ctx context.Context, input *GetUserStatsInput) (*GetUserStatsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.statsRepo.GetStats(ctx, &statsRepo.GetStatsInput{
		UserID:   input.UserID,
		GuildID:  input.GuildID,
		GameKind: input.GameKind,
	})
	if err != nil {
		if errors.Is(err, statsRepo.ErrNotFound) {
			return &GetUserStatsOutput{
				Stats: &models.UserStats{
					UserID:   input.UserID,
					GuildID:  input.GuildID,
					GameKind: input.GameKind,
				},
			}, nil
		}
		return nil, fmt.Errorf("failed to read stats: %w", err)
	}

	return &GetUserStatsOutput{Stats: out.Stats}, nil
}

// BeginCeremony claims the guild's reset ceremony
func (s *service) BeginCeremony(guildID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ceremonies[guildID] {
		return false
	}
	s.ceremonies[guildID] = true
	return true
}

// FinishCeremony releases the guild's ceremony claim
func (s *service) FinishCeremony(guildID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ceremonies, guildID)
}

func (s *service) count(ctx context.Context, guildID string) (int, error) {
	out, err := s.winnerRepo.CountWinners(ctx, &winnerRepo.CountWinnersInput{
		GuildID: guildID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}
	return out.Count, nil
}
