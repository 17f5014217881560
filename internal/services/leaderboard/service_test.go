package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/gamenightlabs/gamenight/internal/common/clock/mocks"
	uuidMocks "github.com/gamenightlabs/gamenight/internal/common/uuid/mocks"
	"github.com/gamenightlabs/gamenight/internal/models"
	statsRepo "github.com/gamenightlabs/gamenight/internal/repositories/stats"
	statsMocks "github.com/gamenightlabs/gamenight/internal/repositories/stats/mocks"
	winnerRepo "github.com/gamenightlabs/gamenight/internal/repositories/winner"
	winnerMocks "github.com/gamenightlabs/gamenight/internal/repositories/winner/mocks"
)

type LeaderboardServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	winnerRepo *winnerMocks.MockRepository
	statsRepo  *statsMocks.MockRepository
	clock      *clockMocks.MockClock
	uuid       *uuidMocks.MockUUID
	now        time.Time
	service    *service
}

func (s *LeaderboardServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.winnerRepo = winnerMocks.NewMockRepository(s.ctrl)
	s.statsRepo = statsMocks.NewMockRepository(s.ctrl)
	s.clock = clockMocks.NewMockClock(s.ctrl)
	s.uuid = uuidMocks.NewMockUUID(s.ctrl)
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	svc, err := New(&Config{
		WinnerRepo: s.winnerRepo,
		StatsRepo:  s.statsRepo,
		Clock:      s.clock,
		UUID:       s.uuid,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *LeaderboardServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLeaderboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardServiceTestSuite))
}

func (s *LeaderboardServiceTestSuite) TestRecordWinnerAccepted() {
	s.winnerRepo.EXPECT().
		HasWinner(s.ctx, &winnerRepo.HasWinnerInput{GuildID: "guild-1", UserID: "user-1"}).
		Return(&winnerRepo.HasWinnerOutput{Present: false}, nil)
	s.uuid.EXPECT().NewUUID().Return("entry-1")
	s.clock.EXPECT().Now().Return(s.now)
	s.winnerRepo.EXPECT().
		AddWinner(s.ctx, &winnerRepo.AddWinnerInput{
			Entry: &models.WinnerEntry{
				ID:        "entry-1",
				UserID:    "user-1",
				Username:  "alice",
				GameKind:  models.GameKindTrivia,
				HostID:    "host-1",
				HostName:  "bob",
				GuildID:   "guild-1",
				Timestamp: s.now,
			},
		}).
		Return(nil)
	s.winnerRepo.EXPECT().
		CountWinners(s.ctx, &winnerRepo.CountWinnersInput{GuildID: "guild-1"}).
		Return(&winnerRepo.CountWinnersOutput{Count: 4}, nil)

	out, err := s.service.RecordWinner(s.ctx, &RecordWinnerInput{
		GuildID:  "guild-1",
		UserID:   "user-1",
		Username: "alice",
		GameKind: models.GameKindTrivia,
		HostID:   "host-1",
		HostName: "bob",
	})
	s.Require().NoError(err)
	s.True(out.Accepted)
	s.False(out.AlreadyPresent)
	s.Equal(4, out.Count)
	s.False(out.Full)
}

func (s *LeaderboardServiceTestSuite) TestRecordWinnerAlreadyPresent() {
	s.winnerRepo.EXPECT().
		HasWinner(s.ctx, gomock.Any()).
		Return(&winnerRepo.HasWinnerOutput{Present: true}, nil)
	s.winnerRepo.EXPECT().
		CountWinners(s.ctx, gomock.Any()).
		Return(&winnerRepo.CountWinnersOutput{Count: 7}, nil)

	out, err := s.service.RecordWinner(s.ctx, &RecordWinnerInput{
		GuildID: "guild-1",
		UserID:  "user-1",
	})
	s.Require().NoError(err)
	s.False(out.Accepted)
	s.True(out.AlreadyPresent)
	s.Equal(7, out.Count)
}

func (s *LeaderboardServiceTestSuite) TestRecordWinnerFillsLedger() {
	s.winnerRepo.EXPECT().
		HasWinner(s.ctx, gomock.Any()).
		Return(&winnerRepo.HasWinnerOutput{Present: false}, nil)
	s.uuid.EXPECT().NewUUID().Return("entry-10")
	s.clock.EXPECT().Now().Return(s.now)
	s.winnerRepo.EXPECT().AddWinner(s.ctx, gomock.Any()).Return(nil)
	s.winnerRepo.EXPECT().
		CountWinners(s.ctx, gomock.Any()).
		Return(&winnerRepo.CountWinnersOutput{Count: 10}, nil)

	out, err := s.service.RecordWinner(s.ctx, &RecordWinnerInput{
		GuildID: "guild-1",
		UserID:  "user-10",
	})
	s.Require().NoError(err)
	s.True(out.Accepted)
	s.True(out.Full)
}

func (s *LeaderboardServiceTestSuite) TestRecentWinnersDefaultLimit() {
	s.winnerRepo.EXPECT().
		GetRecentWinners(s.ctx, &winnerRepo.GetRecentWinnersInput{GuildID: "guild-1", Limit: 10}).
		Return(&winnerRepo.GetRecentWinnersOutput{
			Entries: []*models.WinnerEntry{{ID: "entry-1"}},
		}, nil)

	out, err := s.service.RecentWinners(s.ctx, &RecentWinnersInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Len(out.Entries, 1)
}

func (s *LeaderboardServiceTestSuite) TestIsFull() {
	s.winnerRepo.EXPECT().
		CountWinners(s.ctx, gomock.Any()).
		Return(&winnerRepo.CountWinnersOutput{Count: 10}, nil)

	out, err := s.service.IsFull(s.ctx, &IsFullInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.True(out.Full)
	s.Equal(10, out.Count)
}

func (s *LeaderboardServiceTestSuite) TestReset() {
	s.winnerRepo.EXPECT().
		ClearWinners(s.ctx, &winnerRepo.ClearWinnersInput{GuildID: "guild-1"}).
		Return(nil)

	s.NoError(s.service.Reset(s.ctx, &ResetInput{GuildID: "guild-1"}))
}

func (s *LeaderboardServiceTestSuite) TestAddGameWin() {
	s.clock.EXPECT().Now().Return(s.now)
	s.statsRepo.EXPECT().
		UpdateStats(s.ctx, &statsRepo.UpdateStatsInput{
			UserID:     "user-1",
			GuildID:    "guild-1",
			GameKind:   models.GameKindScramble,
			Wins:       1,
			LastPlayed: s.now,
		}).
		Return(nil)

	err := s.service.AddGameWin(s.ctx, &AddGameWinInput{
		GuildID:  "guild-1",
		UserID:   "user-1",
		GameKind: models.GameKindScramble,
	})
	s.NoError(err)
}

func (s *LeaderboardServiceTestSuite) TestGetUserStatsNeverPlayed() {
	s.statsRepo.EXPECT().
		GetStats(s.ctx, gomock.Any()).
		Return(nil, statsRepo.ErrNotFound)

	out, err := s.service.GetUserStats(s.ctx, &GetUserStatsInput{
		GuildID:  "guild-1",
		UserID:   "user-1",
		GameKind: models.GameKindTrivia,
	})
	s.Require().NoError(err)
	s.Equal(0, out.Stats.Wins)
	s.Equal("user-1", out.Stats.UserID)
}

func (s *LeaderboardServiceTestSuite) TestCeremonyGuard() {
	s.True(s.service.BeginCeremony("guild-1"))
	s.False(s.service.BeginCeremony("guild-1"))

	// other guilds are unaffected
	s.True(s.service.BeginCeremony("guild-2"))

	s.service.FinishCeremony("guild-1")
	s.True(s.service.BeginCeremony("guild-1"))
}
