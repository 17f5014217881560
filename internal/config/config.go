// Package config loads bot configuration with viper. Values come from an
// optional config.yaml and from environment variables (DISCORD_TOKEN,
// DATABASE_HOST, REDIS_ADDR, ...), with the environment taking precedence so
// hosted deployments need no file at all.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Discord  DiscordConfig  `mapstructure:"discord"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Channels ChannelsConfig `mapstructure:"channels"`
	Data     DataConfig     `mapstructure:"data"`
	HTTP     HTTPConfig     `mapstructure:"http"`
}

// DiscordConfig holds the Discord connection configuration.
type DiscordConfig struct {
	Token         string `mapstructure:"token"`
	ApplicationID string `mapstructure:"application_id"`
	// GuildID scopes command registration to one guild during development
	GuildID string `mapstructure:"guild_id"`
}

// DatabaseConfig holds the PostgreSQL connection configuration.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	PoolSize        int           `mapstructure:"pool_size"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`
}

// RedisConfig holds the Redis connection configuration.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ChannelsConfig names the channels the leaderboard ceremony uses.
type ChannelsConfig struct {
	// LeaderboardID is where the pinned leaderboard display lives
	LeaderboardID string `mapstructure:"leaderboard_id"`
	// PrivateID is where the host is prompted for the winners' role
	PrivateID string `mapstructure:"private_id"`
}

// DataConfig points at the question/word/clue bank files.
type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// HTTPConfig holds the keep-alive endpoint configuration. Hosting platforms
// that expect an HTTP listener set PORT; leaving it empty disables the
// listener.
type HTTPConfig struct {
	Port string `mapstructure:"port"`
}

// DSN returns the PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name,
	)
}

// Load reads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// e.g. DISCORD_TOKEN, DATABASE_HOST, CHANNELS_LEADERBOARD_ID
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine, env vars can provide everything.
	}

	// Hosting platforms hand the listener port over as a bare PORT var.
	if port := v.GetString("PORT"); port != "" && v.GetString("http.port") == "" {
		v.Set("http.port", port)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("discord token is required (set DISCORD_TOKEN)")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "gamenight")
	v.SetDefault("database.name", "gamenight")
	v.SetDefault("database.pool_size", 10)
	v.SetDefault("database.connect_timeout", "10s")
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "30m")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("data.dir", "data")
}
