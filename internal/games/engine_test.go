package games

import (
	"strconv"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/gamenightlabs/gamenight/internal/bank"
	"github.com/gamenightlabs/gamenight/internal/models"
	"github.com/gamenightlabs/gamenight/internal/services/access"
	"github.com/gamenightlabs/gamenight/internal/services/leaderboard"
	"github.com/gamenightlabs/gamenight/internal/session"
)

const triviaBank = `[{"question": "Capital of France?", "answer": "Paris"}]`

func (s *EngineTestSuite) TestStartDeniedWhenUnauthorized() {
	s.writeBank("trivia_questions.json", triviaBank)
	s.access.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(access.ErrNotAllowed)

	err := s.engine.StartTrivia(s.ctx, s.startInput())
	s.ErrorIs(err, access.ErrNotAllowed)
	s.Equal(0, s.registry.ActiveCount())
}

func (s *EngineTestSuite) TestStartDeniedWhenNotConfigured() {
	s.writeBank("trivia_questions.json", triviaBank)
	s.access.EXPECT().Authorize(gomock.Any(), gomock.Any()).Return(access.ErrNotConfigured)

	err := s.engine.StartTrivia(s.ctx, s.startInput())
	s.ErrorIs(err, access.ErrNotConfigured)
}

func (s *EngineTestSuite) TestStartBlockedByActiveSession() {
	s.writeBank("trivia_questions.json", triviaBank)
	s.expectAuthorized()
	s.expectAuthorized()

	s.Require().NoError(s.engine.StartTrivia(s.ctx, s.startInput()))
	s.waitFor("Trivia time")

	err := s.engine.StartTrivia(s.ctx, s.startInput())
	s.ErrorIs(err, session.ErrSessionActive)

	s.Require().NoError(s.engine.Stop(s.ctx, "guild-1", models.GameKindTrivia))
}

func (s *EngineTestSuite) TestStartFailsOnMissingBankAndReleasesKey() {
	s.expectAuthorized()
	s.expectAuthorized()

	err := s.engine.StartTrivia(s.ctx, s.startInput())
	s.ErrorIs(err, bank.ErrMissingBank)

	// the failed start must not hold the guild's scope key
	s.writeBank("trivia_questions.json", triviaBank)
	s.Require().NoError(s.engine.StartTrivia(s.ctx, s.startInput()))
	s.Require().NoError(s.engine.Stop(s.ctx, "guild-1", models.GameKindTrivia))
}

func (s *EngineTestSuite) TestStopWrongGame() {
	s.writeBank("trivia_questions.json", triviaBank)
	s.expectAuthorized()

	s.Require().NoError(s.engine.StartTrivia(s.ctx, s.startInput()))

	err := s.engine.Stop(s.ctx, "guild-1", models.GameKindRPS)
	s.ErrorIs(err, ErrWrongGame)

	s.Require().NoError(s.engine.Stop(s.ctx, "guild-1", models.GameKindTrivia))
}

func (s *EngineTestSuite) TestStopWithNothingRunning() {
	err := s.engine.Stop(s.ctx, "guild-1", models.GameKindTrivia)
	s.ErrorIs(err, session.ErrNoSession)
}

func (s *EngineTestSuite) TestTriviaRoundWin() {
	s.writeBank("trivia_questions.json", triviaBank)
	s.expectAuthorized()
	s.leaderboard.EXPECT().
		AddGameWin(gomock.Any(), &leaderboard.AddGameWinInput{
			GuildID:  "guild-1",
			UserID:   "alice-id",
			GameKind: models.GameKindTrivia,
		}).
		Return(nil)

	s.Require().NoError(s.engine.StartTrivia(s.ctx, s.startInput()))
	s.waitFor("Capital of France?")

	s.say("bob-id", "bob", "London")
	s.say("alice-id", "alice", "paris")

	ev := s.waitFor("got it")
	s.Contains(ev.content, "alice")
	s.Contains(ev.content, "1/5")

	s.Require().NoError(s.engine.Stop(s.ctx, "guild-1", models.GameKindTrivia))
}

func (s *EngineTestSuite) TestTriviaFifthWinClaimsSpotCappedUserThenExcluded() {
	s.writeBank("trivia_questions.json", triviaBank)
	s.expectAuthorized()
	// five wins for alice plus one for bob; alice's post-cap answers must
	// never reach the stats
	s.leaderboard.EXPECT().AddGameWin(gomock.Any(), gomock.Any()).Return(nil).Times(6)
	s.leaderboard.EXPECT().
		RecordWinner(gomock.Any(), &leaderboard.RecordWinnerInput{
			GuildID:  "guild-1",
			UserID:   "alice-id",
			Username: "alice",
			GameKind: models.GameKindTrivia,
			HostID:   "host-1",
			HostName: "hostess",
		}).
		Return(&leaderboard.RecordWinnerOutput{Accepted: true, Count: 3}, nil)

	s.Require().NoError(s.engine.StartTrivia(s.ctx, s.startInput()))

	for i := 0; i < 4; i++ {
		s.waitFor("Capital of France?")
		s.say("alice-id", "alice", "Paris")
		s.waitFor("got it")
	}

	s.waitFor("Capital of France?")
	s.say("alice-id", "alice", "Paris")
	s.waitFor("claims leaderboard spot 3/10")

	// alice is capped now; her answer cannot take the round, so bob's
	// later one wins it
	s.waitFor("Capital of France?")
	s.say("alice-id", "alice", "Paris")
	s.say("bob-id", "bob", "Paris")

	ev := s.waitFor("got it")
	s.Contains(ev.content, "bob")
	s.Contains(ev.content, "1/5")

	s.Require().NoError(s.engine.Stop(s.ctx, "guild-1", models.GameKindTrivia))
}

func (s *EngineTestSuite) TestTriviaStopsAfterThreeSilentRounds() {
	s.writeBank("trivia_questions.json", triviaBank)
	s.expectAuthorized()

	s.Require().NoError(s.engine.StartTrivia(s.ctx, s.startInput()))

	for i := 0; i < 3; i++ {
		s.waitFor("Time's up")
	}
	s.waitFor("Wrapping up")
	s.waitForRelease()
}

func (s *EngineTestSuite) TestScrambleWin() {
	s.writeBank("scramble_words.json", `["banana"]`)
	s.expectAuthorized()
	s.leaderboard.EXPECT().AddGameWin(gomock.Any(), gomock.Any()).Return(nil)

	s.Require().NoError(s.engine.StartScramble(s.ctx, s.startInput()))

	ev := s.waitFor("Unscramble")
	// the prompt must not leak the answer
	s.NotContains(ev.embed.Description, "**banana**")

	s.say("alice-id", "alice", " BANANA ")
	s.waitFor("got it")

	s.Require().NoError(s.engine.Stop(s.ctx, "guild-1", models.GameKindScramble))
}

func (s *EngineTestSuite) TestEmojiWinGoesStraightToLedger() {
	s.writeBank("emoji_clues.json", `[{"emoji": "🐝🎥", "answer": "Bee Movie"}]`)
	s.expectAuthorized()
	s.leaderboard.EXPECT().AddGameWin(gomock.Any(), gomock.Any()).Return(nil)
	s.leaderboard.EXPECT().
		RecordWinner(gomock.Any(), gomock.Any()).
		Return(&leaderboard.RecordWinnerOutput{Accepted: true, Count: 1}, nil)

	s.Require().NoError(s.engine.StartEmoji(s.ctx, s.startInput()))
	s.waitFor("🐝🎥")

	s.say("alice-id", "alice", "bee movie")
	s.waitFor("decoded it")
	s.waitFor("claims leaderboard spot 1/10")

	s.Require().NoError(s.engine.Stop(s.ctx, "guild-1", models.GameKindEmoji))
}

func (s *EngineTestSuite) TestEmojiRunEndsWhenLedgerFills() {
	s.writeBank("emoji_clues.json", `[{"emoji": "🐝🎥", "answer": "Bee Movie"}]`)
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

	s.Require().NoError(s.engine.StartEmoji(s.ctx, s.startInput()))
	s.waitFor("🐝🎥")

	s.say("alice-id", "alice", "bee movie")
	s.waitFor("has been reset")

	// the filled ledger ends the run; no further round may be posted
	s.waitForRelease()
	for {
		select {
		case ev := <-s.messenger.events:
			if ev.embed != nil {
				s.Failf("round posted after the ceremony", "embed %q", ev.embed.Description)
			}
		default:
			return
		}
	}
}

func (s *EngineTestSuite) TestEmojiHintsFire() {
	s.writeBank("emoji_clues.json", `[{"emoji": "🐝🎥", "answer": "Bee Movie"}]`)
	s.expectAuthorized()

	s.Require().NoError(s.engine.StartEmoji(s.ctx, s.startInput()))
	s.waitFor("🐝🎥")

	first := s.waitFor("Hint")
	s.Contains(first.content, "**B**")
	second := s.waitFor("Hint")
	s.Contains(second.content, "**BE**")

	s.Require().NoError(s.engine.Stop(s.ctx, "guild-1", models.GameKindEmoji))
}

func (s *EngineTestSuite) TestLyricsPunctuationInsensitiveMatch() {
	s.writeBank("lyrics_global.json", `[{"line": "is this the real life", "answer": "Bohemian Rhapsody"}]`)
	s.expectAuthorized()
	s.leaderboard.EXPECT().AddGameWin(gomock.Any(), gomock.Any()).Return(nil)
	s.leaderboard.EXPECT().
		RecordWinner(gomock.Any(), gomock.Any()).
		Return(&leaderboard.RecordWinnerOutput{Accepted: true, Count: 2}, nil)

	s.Require().NoError(s.engine.StartLyrics(s.ctx, &LyricsInput{
		Start:    *s.startInput(),
		Category: "global",
	}))
	s.waitFor("real life")

	s.say("alice-id", "alice", "bohemian-rhapsody!!")
	s.waitFor("named it")

	s.Require().NoError(s.engine.Stop(s.ctx, "guild-1", models.GameKindLyrics))
}

func (s *EngineTestSuite) TestLyricsUnknownCategory() {
	s.expectAuthorized()

	err := s.engine.StartLyrics(s.ctx, &LyricsInput{
		Start:    *s.startInput(),
		Category: "mars",
	})
	s.ErrorIs(err, bank.ErrUnknownCategory)
	s.Equal(0, s.registry.ActiveCount())
}

func (s *EngineTestSuite) TestRPSScissorAliasWins() {
	s.expectAuthorized()
	s.leaderboard.EXPECT().AddGameWin(gomock.Any(), gomock.Any()).Return(nil)
	s.leaderboard.EXPECT().
		RecordWinner(gomock.Any(), gomock.Any()).
		Return(&leaderboard.RecordWinnerOutput{Accepted: true, Count: 1}, nil)

	// host picks paper; scissors beats it, and the singular form counts
	s.Require().NoError(s.engine.StartRPS(s.ctx, &RPSInput{
		Start:    *s.startInput(),
		HostPick: "paper",
	}))
	s.waitFor("Rock, Paper, Scissors")

	s.say("bob-id", "bob", "rock")
	s.say("alice-id", "alice", "scissor")

	ev := s.waitFor("beats")
	s.Contains(ev.content, "alice")
	s.waitForRelease()
}

func (s *EngineTestSuite) TestRPSTimeoutRevealsPick() {
	s.expectAuthorized()

	s.Require().NoError(s.engine.StartRPS(s.ctx, &RPSInput{
		Start:    *s.startInput(),
		HostPick: "rock",
	}))
	s.waitFor("Rock, Paper, Scissors")

	ev := s.waitFor("Time's up")
	s.Contains(ev.content, "paper")
	s.waitForRelease()
}

func (s *EngineTestSuite) TestRPSBadPick() {
	err := s.engine.StartRPS(s.ctx, &RPSInput{
		Start:    *s.startInput(),
		HostPick: "lizard",
	})
	s.ErrorIs(err, ErrBadPick)
}

func (s *EngineTestSuite) TestDuplicateWinnerKeepsWinButClaimsNoSpot() {
	s.expectAuthorized()
	s.leaderboard.EXPECT().AddGameWin(gomock.Any(), gomock.Any()).Return(nil)
	s.leaderboard.EXPECT().
		RecordWinner(gomock.Any(), gomock.Any()).
		Return(&leaderboard.RecordWinnerOutput{AlreadyPresent: true, Count: 5}, nil)

	s.Require().NoError(s.engine.StartRPS(s.ctx, &RPSInput{
		Start:    *s.startInput(),
		HostPick: "rock",
	}))
	s.waitFor("Rock, Paper, Scissors")

	s.say("alice-id", "alice", "paper")
	s.waitFor("already on the leaderboard")
	s.waitForRelease()
}

func (s *EngineTestSuite) TestNumberGuessFlow() {
	s.expectAuthorized()
	s.leaderboard.EXPECT().AddGameWin(gomock.Any(), gomock.Any()).Return(nil)
	s.leaderboard.EXPECT().
		RecordWinner(gomock.Any(), gomock.Any()).
		Return(&leaderboard.RecordWinnerOutput{Accepted: true, Count: 1}, nil)

	s.Require().NoError(s.engine.StartNumberGuess(s.ctx, &NumberGuessInput{
		Start:    *s.startInput(),
		Max:      5,
		Duration: time.Second,
	}))

	s.waitForKind("lock")
	announce := s.waitFor("Guess the Number")
	s.waitForKind("react")

	s.registry.DispatchReaction(models.InboundReaction{
		MessageID: announce.messageID,
		GuildID:   "guild-1",
		ChannelID: "chan-1",
		UserID:    "alice-id",
		Emoji:     "🎯",
	})

	// the join updates the lobby roster in place
	edit := s.waitForKind("edit")
	s.Equal(announce.messageID, edit.messageID)
	s.Require().NotEmpty(edit.embed.Fields)
	s.Contains(edit.embed.Fields[0].Value, "<@alice-id>")

	s.waitFor("Go!")
	s.waitForKind("unlock")

	// with Max 5 every value can be guessed inside the window
	for n := 1; n <= 5; n++ {
		s.say("alice-id", "alice", strconv.Itoa(n))
	}

	// the result is announced behind a brief channel lock
	s.waitFor("Locking the channel")
	s.waitForKind("lock")
	ev := s.waitFor("guessed it")
	s.Contains(ev.content, "alice")
	s.waitForKind("unlock")
	s.waitForRelease()
}

func (s *EngineTestSuite) TestNumberGuessIgnoresNonParticipants() {
	s.expectAuthorized()

	s.Require().NoError(s.engine.StartNumberGuess(s.ctx, &NumberGuessInput{
		Start:    *s.startInput(),
		Max:      3,
		Duration: 400 * time.Millisecond,
	}))

	announce := s.waitFor("Guess the Number")
	s.registry.DispatchReaction(models.InboundReaction{
		MessageID: announce.messageID,
		GuildID:   "guild-1",
		ChannelID: "chan-1",
		UserID:    "alice-id",
		Emoji:     "🎯",
	})

	s.waitFor("Go!")

	// bob never joined, so even exhaustive guessing wins nothing
	s.say("bob-id", "bob", "1")
	s.say("bob-id", "bob", "2")
	s.say("bob-id", "bob", "3")

	ev := s.waitFor("No one guessed it")
	s.Contains(ev.content, "No winner")
	s.waitForRelease()
}

func (s *EngineTestSuite) TestNumberGuessRunsFullRoundWithNoPlayers() {
	s.expectAuthorized()

	s.Require().NoError(s.engine.StartNumberGuess(s.ctx, &NumberGuessInput{
		Start:    *s.startInput(),
		Max:      10,
		Duration: 200 * time.Millisecond,
	}))

	s.waitForKind("lock")
	s.waitFor("Guess the Number")

	// nobody reacts, but the round still runs to its timeout and reveals
	ev := s.waitFor("Go!")
	s.Contains(ev.embed.Description, "**0** player(s)")

	reveal := s.waitFor("No one guessed it")
	s.Contains(reveal.content, "The number was")
	s.waitForRelease()
}

func (s *EngineTestSuite) TestNumberGuessStopRevealsSecret() {
	s.expectAuthorized()

	s.Require().NoError(s.engine.StartNumberGuess(s.ctx, &NumberGuessInput{
		Start:    *s.startInput(),
		Max:      10,
		Duration: 2 * time.Second,
	}))

	s.waitFor("Guess the Number")
	s.Require().NoError(s.engine.Stop(s.ctx, "guild-1", models.GameKindNumberGuess))

	ev := s.waitFor("has been stopped")
	s.Contains(ev.content, "The number was")
	s.waitForRelease()
}

func (s *EngineTestSuite) TestNumberGuessHintWording() {
	s.Equal("greater than 5", midpointHint(7, 10))
	s.Equal("less than or equal to 5", midpointHint(5, 10))

	s.Equal("between 25 and 75", quartileHint(50, 100))
	s.Equal("greater than 75", quartileHint(90, 100))
	s.Equal("less than 25", quartileHint(3, 100))
}

func (s *EngineTestSuite) TestDefaultTimings() {
	timings := DefaultTimings()
	s.Equal(30*time.Second, timings.LyricsRound)
	s.Equal(60*time.Second, timings.EmojiRound)
	s.Equal(3*time.Second, timings.RevealPause)
}

func (s *EngineTestSuite) TestNumberGuessValidation() {
	err := s.engine.StartNumberGuess(s.ctx, &NumberGuessInput{
		Start:    *s.startInput(),
		Max:      1,
		Duration: time.Second,
	})
	s.ErrorIs(err, ErrBadRange)

	err = s.engine.StartNumberGuess(s.ctx, &NumberGuessInput{
		Start:    *s.startInput(),
		Max:      10,
		Duration: time.Hour,
	})
	s.ErrorIs(err, ErrBadDuration)
}
