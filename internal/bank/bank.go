package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrMissingBank is returned when a data file does not exist
	ErrMissingBank = errors.New("question bank file is missing")
	// ErrCorruptBank is returned when a data file cannot be parsed
	ErrCorruptBank = errors.New("question bank file is corrupt")
	// ErrEmptyBank is returned when a data file holds no entries
	ErrEmptyBank = errors.New("question bank file is empty")
	// ErrUnknownCategory is returned for a lyrics category with no bank
	ErrUnknownCategory = errors.New("unknown lyrics category")
)

// LyricsCategories are the song banks shipped with the bot, in the order
// they are offered to hosts.
var LyricsCategories = []string{"india", "pakistan", "nigeria", "global"}

// Question is a trivia prompt with its expected answer.
type Question struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Clue is an emoji sequence describing a word or phrase.
type Clue struct {
	Emoji  string `json:"emoji"`
	Answer string `json:"answer"`
}

// Lyric is a song line with the title of the song it belongs to.
type Lyric struct {
	Line   string `json:"line"`
	Answer string `json:"answer"`
}

// Store loads the JSON question banks from a data directory. Files are read
// on every call so a broken deployment surfaces when a game is started, not
// at boot.
type Store struct {
	dir string
}

// Config for the bank store
type Config struct {
	// Dir holds the JSON bank files
	Dir string
}

// NewStore creates a new bank store
func NewStore(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.Dir == "" {
		return nil, errors.New("data directory is required")
	}

	return &Store{dir: cfg.Dir}, nil
}

// Questions returns the trivia bank.
func (s *Store) Questions() ([]Question, error) {
	var out []Question
	if err := s.load("trivia_questions.json", &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: trivia_questions.json", ErrEmptyBank)
	}
	return out, nil
}

// Words returns the scramble word list.
func (s *Store) Words() ([]string, error) {
	var out []string
	if err := s.load("scramble_words.json", &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: scramble_words.json", ErrEmptyBank)
	}
	return out, nil
}

// Clues returns the emoji clue bank.
func (s *Store) Clues() ([]Clue, error) {
	var out []Clue
	if err := s.load("emoji_clues.json", &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: emoji_clues.json", ErrEmptyBank)
	}
	return out, nil
}

// Lyrics returns the song bank for a category.
func (s *Store) Lyrics(category string) ([]Lyric, error) {
	if !validCategory(category) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	name := fmt.Sprintf("lyrics_%s.json", category)
	var out []Lyric
	if err := s.load(name, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyBank, name)
	}
	return out, nil
}

func (s *Store) load(name string, target interface{}) error {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrMissingBank, name)
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorruptBank, name, err)
	}

	return nil
}

func validCategory(category string) bool {
	for _, c := range LyricsCategories {
		if c == category {
			return true
		}
	}
	return false
}
