package games

import (
	"go.uber.org/mock/gomock"

	"github.com/gamenightlabs/gamenight/internal/models"
	"github.com/gamenightlabs/gamenight/internal/services/leaderboard"
)

func (s *EngineTestSuite) fullLedgerEntries() []*models.WinnerEntry {
	return []*models.WinnerEntry{
		{UserID: "bob-id", Username: "bob"},
		{UserID: "alice-id", Username: "alice"},
	}
}

func (s *EngineTestSuite) TestCeremonyRunsWhenLedgerFills() {
	s.expectAuthorized()
	s.leaderboard.EXPECT().AddGameWin(gomock.Any(), gomock.Any()).Return(nil)
	s.leaderboard.EXPECT().
		RecordWinner(gomock.Any(), gomock.Any()).
		Return(&leaderboard.RecordWinnerOutput{Accepted: true, Count: 10, Full: true}, nil)
	s.leaderboard.EXPECT().BeginCeremony("guild-1").Return(true)
	s.leaderboard.EXPECT().
		RecentWinners(gomock.Any(), gomock.Any()).
		Return(&leaderboard.RecentWinnersOutput{Entries: s.fullLedgerEntries()}, nil)
	s.leaderboard.EXPECT().
		Reset(gomock.Any(), &leaderboard.ResetInput{GuildID: "guild-1"}).
		Return(nil)
	s.leaderboard.EXPECT().FinishCeremony("guild-1")

	s.Require().NoError(s.engine.StartRPS(s.ctx, &RPSInput{
		Start:    *s.startInput(),
		HostPick: "rock",
	}))
	s.waitFor("Rock, Paper, Scissors")
	s.say("alice-id", "alice", "paper")

	s.waitFor("leaderboard is full")

	// no private channel is configured, so the default role name is used
	role := s.waitForKind("role")
	s.Equal("Game Night Champion", role.roleName)
	s.ElementsMatch([]string{"bob-id", "alice-id"}, role.userIDs)

	s.waitFor("has been reset")
	s.waitForRelease()
}

func (s *EngineTestSuite) TestCeremonySkippedWhenAlreadyClaimed() {
	s.expectAuthorized()
	s.leaderboard.EXPECT().AddGameWin(gomock.Any(), gomock.Any()).Return(nil)
	s.leaderboard.EXPECT().
		RecordWinner(gomock.Any(), gomock.Any()).
		Return(&leaderboard.RecordWinnerOutput{Accepted: true, Count: 10, Full: true}, nil)
	// another win's ceremony is underway; this one must do nothing more
	s.leaderboard.EXPECT().BeginCeremony("guild-1").Return(false)

	s.Require().NoError(s.engine.StartRPS(s.ctx, &RPSInput{
		Start:    *s.startInput(),
		HostPick: "rock",
	}))
	s.waitFor("Rock, Paper, Scissors")
	s.say("alice-id", "alice", "paper")

	s.waitFor("claims leaderboard spot 10/10")
	s.waitForRelease()
}

func (s *EngineTestSuite) TestCeremonyUsesHostNamedRole() {
	engine := s.engineWithChannels("board-1", "private-1")

	s.expectAuthorized()
	s.leaderboard.EXPECT().AddGameWin(gomock.Any(), gomock.Any()).Return(nil)
	s.leaderboard.EXPECT().
		RecordWinner(gomock.Any(), gomock.Any()).
		Return(&leaderboard.RecordWinnerOutput{Accepted: true, Count: 10, Full: true}, nil)
	s.leaderboard.EXPECT().BeginCeremony("guild-1").Return(true)
	s.leaderboard.EXPECT().
		RecentWinners(gomock.Any(), gomock.Any()).
		Return(&leaderboard.RecentWinnersOutput{Entries: s.fullLedgerEntries()}, nil).
		AnyTimes()
	s.leaderboard.EXPECT().Reset(gomock.Any(), gomock.Any()).Return(nil)
	s.leaderboard.EXPECT().FinishCeremony("guild-1")

	s.Require().NoError(engine.StartRPS(s.ctx, &RPSInput{
		Start:    *s.startInput(),
		HostPick: "rock",
	}))
	s.waitFor("Rock, Paper, Scissors")
	s.say("alice-id", "alice", "paper")

	prompt := s.waitFor("champions role")
	s.Equal("private-1", prompt.channelID)

	s.registry.DispatchMessage(models.InboundMessage{
		GuildID:    "guild-1",
		ChannelID:  "private-1",
		AuthorID:   "host-1",
		AuthorName: "hostess",
		Content:    "  Legends  ",
	})

	role := s.waitForKind("role")
	s.Equal("Legends", role.roleName)
	s.waitForRelease()
}

func (s *EngineTestSuite) TestCeremonyDefaultRoleOnPromptTimeout() {
	engine := s.engineWithChannels("", "private-1")

	s.expectAuthorized()
	s.leaderboard.EXPECT().AddGameWin(gomock.Any(), gomock.Any()).Return(nil)
	s.leaderboard.EXPECT().
		RecordWinner(gomock.Any(), gomock.Any()).
		Return(&leaderboard.RecordWinnerOutput{Accepted: true, Count: 10, Full: true}, nil)
	s.leaderboard.EXPECT().BeginCeremony("guild-1").Return(true)
	s.leaderboard.EXPECT().
		RecentWinners(gomock.Any(), gomock.Any()).
		Return(&leaderboard.RecentWinnersOutput{Entries: s.fullLedgerEntries()}, nil)
	s.leaderboard.EXPECT().Reset(gomock.Any(), gomock.Any()).Return(nil)
	s.leaderboard.EXPECT().FinishCeremony("guild-1")

	s.Require().NoError(engine.StartRPS(s.ctx, &RPSInput{
		Start:    *s.startInput(),
		HostPick: "rock",
	}))
	s.waitFor("Rock, Paper, Scissors")
	s.say("alice-id", "alice", "paper")

	s.waitFor("champions role")

	// the host never replies; the prompt lapses to the default name
	role := s.waitForKind("role")
	s.Equal("Game Night Champion", role.roleName)
	s.waitForRelease()
}
