package models

// GameKind identifies one of the supported chat games. The string value is
// what gets written to ledger entries and user stats rows.
type GameKind string

const (
	// GameKindNumberGuess is the single-round number guessing game
	GameKindNumberGuess GameKind = "Guess the Number"

	// GameKindTrivia is the looping question-and-answer game
	GameKindTrivia GameKind = "Trivia"

	// GameKindScramble is the looping unscramble-the-word game
	GameKindScramble GameKind = "Scramble"

	// GameKindEmoji is the looping emoji-clue decoding game
	GameKindEmoji GameKind = "Emoji Decode"

	// GameKindLyrics is the looping guess-the-song game
	GameKindLyrics GameKind = "Lyrics"

	// GameKindRPS is the single-round rock-paper-scissors counter game
	GameKindRPS GameKind = "RPS"
)

// String returns the display name of the game
func (k GameKind) String() string {
	return string(k)
}
