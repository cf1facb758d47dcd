package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/ceelo/internal/common/clock"
	"github.com/KirkDiggler/ceelo/internal/common/config"
	"github.com/KirkDiggler/ceelo/internal/common/logger"
	"github.com/KirkDiggler/ceelo/internal/common/metrics"
	"github.com/KirkDiggler/ceelo/internal/common/uuid"
	"github.com/KirkDiggler/ceelo/internal/dice"
	"github.com/KirkDiggler/ceelo/internal/handlers/discord"
	"github.com/KirkDiggler/ceelo/internal/handlers/web"
	"github.com/KirkDiggler/ceelo/internal/repositories/admin_session"
	roundRepo "github.com/KirkDiggler/ceelo/internal/repositories/round"
	"github.com/KirkDiggler/ceelo/internal/services/admin"
	"github.com/KirkDiggler/ceelo/internal/services/messaging"
	"github.com/KirkDiggler/ceelo/internal/services/round"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.Init(&logger.Options{Level: cfg.LogLevel})

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Initialize repositories
	rounds, err := roundRepo.NewRedis(&roundRepo.Config{
		RedisClient: redisClient,
		KeyPrefix:   cfg.RedisKeyPrefix,
	})
	if err != nil {
		return err
	}

	sessions, err := admin_session.NewRedis(&admin_session.Config{
		RedisClient: redisClient,
		KeyPrefix:   cfg.RedisKeyPrefix,
	})
	if err != nil {
		return err
	}

	recorder := metrics.NewPrometheus()
	clk := clock.New()

	// Initialize services
	roundSvc, err := round.New(&round.Config{
		MaxDraws:   cfg.MaxDraws,
		RoundRepo:  rounds,
		DiceRoller: dice.New(&dice.Config{Seed: cfg.DiceSeed}),
		Clock:      clk,
		Metrics:    recorder,
		Logger:     log,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seeded, err := roundSvc.SeedRoster(ctx, &round.SeedRosterInput{Names: cfg.InitialFriends})
	if err != nil {
		return err
	}
	if seeded.Seeded {
		log.Info("seeded roster from INITIAL_FRIENDS", "count", len(cfg.InitialFriends))
	}

	adminSvc, err := admin.New(&admin.Config{
		Password:      cfg.AdminPassword,
		SessionTTL:    cfg.AdminSessionTTL,
		SessionRepo:   sessions,
		Clock:         clk,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return err
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return err
	}

	handler, err := web.New(&web.Config{
		RoundService:     roundSvc,
		AdminService:     adminSvc,
		MessagingService: messagingSvc,
		MetricsHandler:   recorder.Handler(),
		StaticDir:        cfg.StaticDir,
		Logger:           log,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	var bot *discord.Bot
	if cfg.DiscordEnabled() {
		bot, err = discord.New(&discord.Config{
			Token:            cfg.DiscordToken,
			ApplicationID:    cfg.DiscordApplicationID,
			GuildID:          cfg.DiscordGuildID,
			RoundService:     roundSvc,
			MessagingService: messagingSvc,
			Logger:           log,
		})
		if err != nil {
			return err
		}
		if err := bot.Start(); err != nil {
			return err
		}
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if bot != nil {
		if err := bot.Stop(); err != nil {
			log.Warn("error stopping discord bot", "error", err)
		}
	}

	return srv.Shutdown(shutdownCtx)
}
