// Package main - точка входа для Discord-бота Advent of Code лидерборда.
//
// The bot answers five commands in the gated channel: !leaderboard, !rank,
// !keen, !daily and !stars. All of them read through one TTL'd standings
// cache so the AoC API is polled at most once per interval no matter how
// chatty the channel gets.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aoc-hub/aoc-discord-bot/config"
	"github.com/aoc-hub/aoc-discord-bot/internal/infrastructure/cache"
	"github.com/aoc-hub/aoc-discord-bot/internal/infrastructure/external/aoc"
	discordapi "github.com/aoc-hub/aoc-discord-bot/internal/infrastructure/external/discord"
	botiface "github.com/aoc-hub/aoc-discord-bot/internal/interface/discord"
	"github.com/aoc-hub/aoc-discord-bot/internal/interface/discord/handler"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. CONFIGURATION
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. LOGGING
	// ─────────────────────────────────────────────────────────────────────────
	log := setupLogger(cfg)
	log.Info("starting AoC leaderboard bot",
		"env", cfg.App.Environment,
		"debug", cfg.App.Debug,
		"poll_interval", cfg.AoC.PollInterval.String(),
		"channel_name", cfg.Discord.ChannelName,
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. AOC SOURCE AND STANDINGS CACHE
	// ─────────────────────────────────────────────────────────────────────────
	aocConfig := aoc.DefaultClientConfig(cfg.AoC.LeaderboardURL, cfg.AoC.SessionCookie)
	aocConfig.Timeout = cfg.AoC.RequestTimeout
	aocConfig.Logger = log
	aocConfig.Debug = cfg.App.Debug
	aocClient := aoc.NewClient(aocConfig)

	cacheConfig := cache.DefaultConfig()
	cacheConfig.TTL = cfg.AoC.PollInterval
	cacheConfig.Logger = log
	standingsCache := cache.NewStandingsCache(aocClient, cacheConfig)

	// ─────────────────────────────────────────────────────────────────────────
	// 4. DISCORD CLIENTS
	// ─────────────────────────────────────────────────────────────────────────
	discordConfig := discordapi.DefaultClientConfig(cfg.Discord.Token)
	discordConfig.Logger = log
	discordConfig.Debug = cfg.App.Debug
	discordClient := discordapi.NewClient(discordConfig)

	// ─────────────────────────────────────────────────────────────────────────
	// 5. COMMAND ROUTER AND HANDLERS
	// ─────────────────────────────────────────────────────────────────────────
	routerConfig := botiface.DefaultRouterConfig()
	routerConfig.Prefix = cfg.Discord.Prefix
	routerConfig.ChannelName = cfg.Discord.ChannelName
	routerConfig.Logger = log
	routerConfig.Debug = cfg.App.Debug
	router := botiface.NewRouter(routerConfig, discordClient, discordClient)

	router.Register("leaderboard", handler.NewLeaderboardHandler(standingsCache))
	router.Register("rank", handler.NewRankHandler(standingsCache))
	router.Register("keen", handler.NewKeenHandler(standingsCache))
	router.Register("daily", handler.NewDailyHandler(standingsCache))
	router.Register("stars", handler.NewStarsHandler(standingsCache))

	// ─────────────────────────────────────────────────────────────────────────
	// 6. GATEWAY SESSION
	// ─────────────────────────────────────────────────────────────────────────
	gatewayConfig := discordapi.DefaultGatewayConfig(cfg.Discord.Token)
	gatewayConfig.Logger = log
	gateway := discordapi.NewGateway(gatewayConfig, router.HandleMessage)

	errCh := make(chan error, 1)
	go func() {
		log.Info("connecting to Discord gateway")
		if err := gateway.Run(ctx); err != nil && ctx.Err() == nil {
			errCh <- fmt.Errorf("gateway error: %w", err)
		}
	}()

	// ─────────────────────────────────────────────────────────────────────────
	// 7. SHUTDOWN
	// ─────────────────────────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		log.Error("service error", "error", err)
		return err
	}

	log.Info("shutting down", "timeout", cfg.App.ShutdownTimeout.String())
	return nil
}

// setupLogger configures structured logging: JSON in production for log
// aggregators, text in development.
func setupLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	if cfg.App.Debug {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}
