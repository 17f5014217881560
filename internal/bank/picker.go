package bank

import (
	"context"
	"errors"

	"github.com/gamenightlabs/gamenight/internal/repositories/rotation"
	"github.com/gamenightlabs/gamenight/internal/rng"
)

// Picker selects bank items round-robin per guild: an item is not served
// again until every item in the pool has been used, at which point the
// used-set is cleared and the rotation starts over.
type Picker struct {
	repo   rotation.Repository
	random *rng.Source
}

// PickerConfig for the picker
type PickerConfig struct {
	RotationRepo rotation.Repository
	Random       *rng.Source
}

// NewPicker creates a new round-robin picker
func NewPicker(cfg *PickerConfig) (*Picker, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.RotationRepo == nil {
		return nil, errors.New("rotation repository is required")
	}
	if cfg.Random == nil {
		return nil, errors.New("randomness source is required")
	}

	return &Picker{
		repo:   cfg.RotationRepo,
		random: cfg.Random,
	}, nil
}

// Pick returns a random key from the pool that the guild has not seen in
// the current rotation, and marks it used. When every key has been served
// the rotation resets and all keys become available again.
func (p *Picker) Pick(ctx context.Context, guildID, bank string, keys []string) (string, error) {
	if len(keys) == 0 {
		return "", ErrEmptyBank
	}

	used, err := p.repo.GetUsed(ctx, &rotation.GetUsedInput{
		GuildID: guildID,
		Bank:    bank,
	})
	if err != nil {
		return "", err
	}

	available := subtract(keys, used.Items)
	if len(available) == 0 {
		if err := p.repo.ClearUsed(ctx, &rotation.ClearUsedInput{
			GuildID: guildID,
			Bank:    bank,
		}); err != nil {
			return "", err
		}
		available = keys
	}

	chosen := available[p.random.Intn(len(available))]

	if err := p.repo.MarkUsed(ctx, &rotation.MarkUsedInput{
		GuildID: guildID,
		Bank:    bank,
		Item:    chosen,
	}); err != nil {
		return "", err
	}

	return chosen, nil
}

func subtract(keys, used []string) []string {
	seen := make(map[string]struct{}, len(used))
	for _, u := range used {
		seen[u] = struct{}{}
	}

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}
