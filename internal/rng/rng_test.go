package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestBetween(t *testing.T) {
	source := New(&Config{Seed: 42})

	for i := 0; i < 1000; i++ {
		got := source.Between(1, 100)
		assert.GreaterOrEqual(t, got, 1)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestBetweenDegenerate(t *testing.T) {
	source := New(&Config{Seed: 42})

	assert.Equal(t, 5, source.Between(5, 5))
	assert.Equal(t, 5, source.Between(5, 3))
}

func TestIntnSmall(t *testing.T) {
	source := New(&Config{Seed: 42})

	assert.Equal(t, 0, source.Intn(0))
	assert.Equal(t, 0, source.Intn(1))
}

func TestShuffleStringPreservesRunes(t *testing.T) {
	source := New(&Config{Seed: 42})

	rapid.Check(t, func(t *rapid.T) {
		in := rapid.StringMatching(`[a-z]{1,12}`).Draw(t, "in")
		out := source.ShuffleString(in)

		assert.ElementsMatch(t, []rune(in), []rune(out))
	})
}

func TestShuffleStringChangesDistinct(t *testing.T) {
	source := New(&Config{Seed: 42})

	for i := 0; i < 100; i++ {
		out := source.ShuffleString("banana")
		assert.NotEqual(t, "banana", out)
	}
}

func TestShuffleStringUniform(t *testing.T) {
	source := New(&Config{Seed: 42})

	assert.Equal(t, "a", source.ShuffleString("a"))
	assert.Equal(t, "", source.ShuffleString(""))
	// all runes identical, nothing to change
	assert.Equal(t, "aaa", source.ShuffleString("aaa"))
}
