package rotation

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Key prefix for Redis
const usedKeyPrefix = "rotation_used:"

// Config holds configuration for the Redis rotation repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis sets
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed rotation repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{client: cfg.RedisClient}, nil
}

func usedKey(guildID, bank string) string {
	return fmt.Sprintf("%s%s:%s", usedKeyPrefix, guildID, bank)
}

// GetUsed retrieves the items a guild has already been served from a bank
func (r *redisRepository) GetUsed(ctx context.Context, input *GetUsedInput) (*GetUsedOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	items, err := r.client.SMembers(ctx, usedKey(input.GuildID, input.Bank)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read used items: %w", err)
	}

	return &GetUsedOutput{Items: items}, nil
}

// MarkUsed records that an item has been served to a guild
func (r *redisRepository) MarkUsed(ctx context.Context, input *MarkUsedInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if input.Item == "" {
		return errors.New("item cannot be empty")
	}

	if err := r.client.SAdd(ctx, usedKey(input.GuildID, input.Bank), input.Item).Err(); err != nil {
		return fmt.Errorf("failed to mark item used: %w", err)
	}

	return nil
}

// ClearUsed forgets a guild's used items for a bank
func (r *redisRepository) ClearUsed(ctx context.Context, input *ClearUsedInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := r.client.Del(ctx, usedKey(input.GuildID, input.Bank)).Err(); err != nil {
		return fmt.Errorf("failed to clear used items: %w", err)
	}

	return nil
}
