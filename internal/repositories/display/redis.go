package display

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Key prefix for Redis
const lastMessageKeyPrefix = "leaderboard_message:"

// Config holds configuration for the Redis display repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed display repository
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

// GetLastMessage retrieves the tracked message for a channel
func (r *redisRepository) GetLastMessage(ctx context.Context, input *GetLastMessageInput) (*GetLastMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messageID, err := r.client.Get(ctx, lastMessageKeyPrefix+input.ChannelID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read tracked message: %w", err)
	}

	return &GetLastMessageOutput{MessageID: messageID}, nil
}

// SetLastMessage records the message to edit on the next refresh
func (r *redisRepository) SetLastMessage(ctx context.Context, input *SetLastMessageInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if input.MessageID == "" {
		return errors.New("message ID cannot be empty")
	}

	if err := r.client.Set(ctx, lastMessageKeyPrefix+input.ChannelID, input.MessageID, 0).Err(); err != nil {
		return fmt.Errorf("failed to track message: %w", err)
	}

	return nil
}
