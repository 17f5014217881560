package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gamenightlabs/gamenight/internal/bank"
	"github.com/gamenightlabs/gamenight/internal/config"
	"github.com/gamenightlabs/gamenight/internal/games"
	"github.com/gamenightlabs/gamenight/internal/handlers/discord"
	"github.com/gamenightlabs/gamenight/internal/keepalive"
	"github.com/gamenightlabs/gamenight/internal/pkg/db"
	"github.com/gamenightlabs/gamenight/internal/repositories/display"
	"github.com/gamenightlabs/gamenight/internal/repositories/rotation"
	settingsRepo "github.com/gamenightlabs/gamenight/internal/repositories/settings"
	statsRepo "github.com/gamenightlabs/gamenight/internal/repositories/stats"
	winnerRepo "github.com/gamenightlabs/gamenight/internal/repositories/winner"
	"github.com/gamenightlabs/gamenight/internal/rng"
	"github.com/gamenightlabs/gamenight/internal/services/access"
	"github.com/gamenightlabs/gamenight/internal/services/leaderboard"
	"github.com/gamenightlabs/gamenight/internal/session"
)

func main() {
	// Local development convenience; missing .env is fine
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load("")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres
	bootCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	pool, err := db.NewPool(bootCtx, &cfg.Database)
	if err != nil {
		cancel()
		logger.Fatal().Err(err).Msg("failed to connect to PostgreSQL")
	}
	defer pool.Close()

	if err := pool.EnsureSchema(bootCtx); err != nil {
		cancel()
		logger.Fatal().Err(err).Msg("failed to ensure database schema")
	}
	cancel()

	// Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Repositories
	winners, err := winnerRepo.NewPostgres(&winnerRepo.Config{Pool: pool.Pool})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create winner repository")
	}

	settings, err := settingsRepo.NewPostgres(&settingsRepo.Config{Pool: pool.Pool})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create settings repository")
	}

	stats, err := statsRepo.NewPostgres(&statsRepo.Config{Pool: pool.Pool})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create stats repository")
	}

	rotationRepo, err := rotation.NewRedis(&rotation.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create rotation repository")
	}

	displayRepo, err := display.NewRedis(&display.Config{RedisClient: redisClient})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create display repository")
	}

	// Services
	accessService, err := access.New(&access.Config{SettingsRepo: settings})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create access service")
	}

	leaderboardService, err := leaderboard.New(&leaderboard.Config{
		WinnerRepo: winners,
		StatsRepo:  stats,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create leaderboard service")
	}

	// Question banks and selection
	banks, err := bank.NewStore(&bank.Config{Dir: cfg.Data.Dir})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create bank store")
	}

	random := rng.New(&rng.Config{})

	picker, err := bank.NewPicker(&bank.PickerConfig{
		RotationRepo: rotationRepo,
		Random:       random,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create picker")
	}

	registry := session.NewRegistry()

	// Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         cfg.Discord.Token,
		ApplicationID: cfg.Discord.ApplicationID,
		GuildID:       cfg.Discord.GuildID,
		Access:        accessService,
		Registry:      registry,
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	engine, err := games.New(&games.Config{
		Registry:             registry,
		Access:               accessService,
		Leaderboard:          leaderboardService,
		Banks:                banks,
		Picker:               picker,
		Random:               random,
		Messenger:            bot.Messenger(),
		DisplayRepo:          displayRepo,
		Logger:               logger,
		LeaderboardChannelID: cfg.Channels.LeaderboardID,
		PrivateChannelID:     cfg.Channels.PrivateID,
		BaseContext:          ctx,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create game engine")
	}
	bot.AttachEngine(engine)

	if err := bot.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	// Keep-alive HTTP server for the hosting platform. No port, no server.
	var keepAlive *keepalive.Server
	if cfg.HTTP.Port != "" {
		port, err := strconv.Atoi(cfg.HTTP.Port)
		if err != nil {
			logger.Fatal().Err(err).Str("port", cfg.HTTP.Port).Msg("invalid HTTP port")
		}

		keepAlive, err = keepalive.New(&keepalive.Config{Port: port, Logger: logger})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create keep-alive server")
		}
		keepAlive.Start()
	}

	logger.Info().Msg("gamenight is up")
	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if keepAlive != nil {
		if err := keepAlive.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("keep-alive shutdown failed")
		}
	}
	if err := bot.Stop(); err != nil {
		logger.Error().Err(err).Msg("bot shutdown failed")
	}
}
