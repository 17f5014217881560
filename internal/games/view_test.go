package games

import (
	"go.uber.org/mock/gomock"

	"github.com/gamenightlabs/gamenight/internal/models"
	"github.com/gamenightlabs/gamenight/internal/services/access"
	"github.com/gamenightlabs/gamenight/internal/services/leaderboard"
)

func (s *EngineTestSuite) TestLeaderboardEmbedOrdersOldestFirst() {
	// repository order is most recent first
	embed := LeaderboardEmbed([]*models.WinnerEntry{
		{Username: "carol", GameKind: models.GameKindRPS, HostName: "hostess"},
		{Username: "bob", GameKind: models.GameKindTrivia, HostName: "hostess"},
		{Username: "alice", GameKind: models.GameKindScramble, HostName: "hostess"},
	})

	s.Contains(embed.Description, "1. **alice**")
	s.Contains(embed.Description, "3. **carol**")
	s.Contains(embed.Footer, "3/10")
}

func (s *EngineTestSuite) TestLeaderboardEmbedEmpty() {
	embed := LeaderboardEmbed(nil)
	s.Contains(embed.Description, "No winners yet")
	s.Contains(embed.Footer, "0/10")
}

func (s *EngineTestSuite) TestBoardPostedThenEditedInPlace() {
	engine := s.engineWithChannels("board-1", "")

	s.expectAuthorized()
	s.expectAuthorized()
	s.leaderboard.EXPECT().AddGameWin(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.leaderboard.EXPECT().
		RecordWinner(gomock.Any(), gomock.Any()).
		Return(&leaderboard.RecordWinnerOutput{Accepted: true, Count: 1}, nil)
	s.leaderboard.EXPECT().
		RecordWinner(gomock.Any(), gomock.Any()).
		Return(&leaderboard.RecordWinnerOutput{Accepted: true, Count: 2}, nil)
	s.leaderboard.EXPECT().
		RecentWinners(gomock.Any(), gomock.Any()).
		Return(&leaderboard.RecentWinnersOutput{
			Entries: []*models.WinnerEntry{{UserID: "alice-id", Username: "alice"}},
		}, nil).
		Times(2)

	s.Require().NoError(engine.StartRPS(s.ctx, &RPSInput{
		Start:    *s.startInput(),
		HostPick: "rock",
	}))
	s.waitFor("Rock, Paper, Scissors")
	s.say("alice-id", "alice", "paper")

	// first refresh posts a fresh board message
	first := s.waitForKind("embed")
	for first.channelID != "board-1" {
		first = s.waitForKind("embed")
	}
	s.waitForRelease()

	s.Require().NoError(engine.StartRPS(s.ctx, &RPSInput{
		Start:    *s.startInput(),
		HostPick: "rock",
	}))
	s.waitFor("Rock, Paper, Scissors")
	s.say("bob-id", "bob", "paper")

	// the second refresh edits that same message instead of reposting
	edit := s.waitForKind("edit")
	s.Equal("board-1", edit.channelID)
	s.Equal(first.messageID, edit.messageID)
	s.waitForRelease()
}

func (s *EngineTestSuite) TestLeaderboardOnDemand() {
	s.leaderboard.EXPECT().
		RecentWinners(gomock.Any(), &leaderboard.RecentWinnersInput{GuildID: "guild-1"}).
		Return(&leaderboard.RecentWinnersOutput{
			Entries: []*models.WinnerEntry{{Username: "alice", GameKind: models.GameKindEmoji, HostName: "hostess"}},
		}, nil)

	embed, err := s.engine.Leaderboard(s.ctx, "guild-1")
	s.Require().NoError(err)
	s.Contains(embed.Description, "alice")
}

func (s *EngineTestSuite) TestResetLeaderboardRequiresAuthorization() {
	s.access.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(access.ErrNotAllowed)

	err := s.engine.ResetLeaderboard(s.ctx, "guild-1", []string{"Members"})
	s.ErrorIs(err, access.ErrNotAllowed)
}

func (s *EngineTestSuite) TestResetLeaderboardClears() {
	s.expectAuthorized()
	s.leaderboard.EXPECT().
		Reset(gomock.Any(), &leaderboard.ResetInput{GuildID: "guild-1"}).
		Return(nil)

	s.NoError(s.engine.ResetLeaderboard(s.ctx, "guild-1", []string{"Game Master"}))
}
