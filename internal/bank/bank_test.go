package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	dir   string
	store *Store
}

func (s *StoreTestSuite) SetupTest() {
	s.dir = s.T().TempDir()

	store, err := NewStore(&Config{Dir: s.dir})
	s.Require().NoError(err)
	s.store = store
}

func (s *StoreTestSuite) write(name, content string) {
	err := os.WriteFile(filepath.Join(s.dir, name), []byte(content), 0o644)
	s.Require().NoError(err)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) TestNewStoreValidation() {
	_, err := NewStore(nil)
	s.Error(err)

	_, err = NewStore(&Config{})
	s.Error(err)
}

func (s *StoreTestSuite) TestQuestions() {
	s.write("trivia_questions.json", `[
		{"question": "Capital of France?", "answer": "Paris"},
		{"question": "Largest planet?", "answer": "Jupiter"}
	]`)

	questions, err := s.store.Questions()
	s.Require().NoError(err)
	s.Len(questions, 2)
	s.Equal("Capital of France?", questions[0].Question)
	s.Equal("Paris", questions[0].Answer)
}

func (s *StoreTestSuite) TestQuestionsMissingFile() {
	_, err := s.store.Questions()
	s.ErrorIs(err, ErrMissingBank)
}

func (s *StoreTestSuite) TestQuestionsCorruptFile() {
	s.write("trivia_questions.json", `{"not": "a list"`)

	_, err := s.store.Questions()
	s.ErrorIs(err, ErrCorruptBank)
}

func (s *StoreTestSuite) TestQuestionsEmptyFile() {
	s.write("trivia_questions.json", `[]`)

	_, err := s.store.Questions()
	s.ErrorIs(err, ErrEmptyBank)
}

func (s *StoreTestSuite) TestWords() {
	s.write("scramble_words.json", `["banana", "guitar"]`)

	words, err := s.store.Words()
	s.Require().NoError(err)
	s.Equal([]string{"banana", "guitar"}, words)
}

func (s *StoreTestSuite) TestClues() {
	s.write("emoji_clues.json", `[{"emoji": "🐝🎥", "answer": "bee movie"}]`)

	clues, err := s.store.Clues()
	s.Require().NoError(err)
	s.Len(clues, 1)
	s.Equal("🐝🎥", clues[0].Emoji)
	s.Equal("bee movie", clues[0].Answer)
}

func (s *StoreTestSuite) TestLyrics() {
	s.write("lyrics_india.json", `[{"line": "some opening line", "answer": "song title"}]`)

	lyrics, err := s.store.Lyrics("india")
	s.Require().NoError(err)
	s.Len(lyrics, 1)
	s.Equal("song title", lyrics[0].Answer)
}

func (s *StoreTestSuite) TestLyricsUnknownCategory() {
	_, err := s.store.Lyrics("antarctica")
	s.ErrorIs(err, ErrUnknownCategory)
}

func (s *StoreTestSuite) TestLyricsMissingCategoryFile() {
	_, err := s.store.Lyrics("global")
	s.ErrorIs(err, ErrMissingBank)
}
