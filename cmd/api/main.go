// Recipify API server: the tier-gated recipe generation, quota and
// entitlement engine behind the Recipify clients.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/recipify/v2/internal/application/account"
	"github.com/recipify/v2/internal/application/collections"
	"github.com/recipify/v2/internal/application/feed"
	"github.com/recipify/v2/internal/application/generation"
	"github.com/recipify/v2/internal/application/mealplan"
	"github.com/recipify/v2/internal/application/pantry"
	"github.com/recipify/v2/internal/application/progress"
	"github.com/recipify/v2/internal/application/quota"
	"github.com/recipify/v2/internal/domain/ingredient"
	"github.com/recipify/v2/internal/infrastructure/config"
	"github.com/recipify/v2/internal/infrastructure/generator"
	httpapi "github.com/recipify/v2/internal/infrastructure/http"
	"github.com/recipify/v2/internal/infrastructure/identity"
	"github.com/recipify/v2/internal/infrastructure/persistence/memory"
	redisrepo "github.com/recipify/v2/internal/infrastructure/persistence/redis"
	"github.com/recipify/v2/internal/ports/outbound"
	"github.com/recipify/v2/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "recipify: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: !cfg.IsProduction(),
	})
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	log.Info("starting recipify",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// State store: Redis when configured, in-memory otherwise.
	var repo outbound.StateRepository
	if cfg.Redis.Host != "" {
		client, err := redisrepo.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return err
		}
		defer client.Close()
		repo = redisrepo.NewRepository(client, log)
	} else {
		log.Warn("no redis host configured, state is held in memory only")
		repo = memory.NewRepository()
	}

	quotaSvc := quota.NewService(repo, log)
	progressSvc := progress.NewService(repo, log)
	collectionsSvc := collections.NewService(repo, progressSvc, log)
	pantrySvc := pantry.NewService(repo, ingredient.Default(), log)
	mealplanSvc := mealplan.NewService(repo, log)
	feedSvc := feed.NewService(repo, log)
	accountSvc := account.NewService(quotaSvc, progressSvc, log)

	generatorClient := generator.NewClient(cfg.Generator.BaseURL, cfg.Generator.Timeout, log)
	generationSvc := generation.NewService(quotaSvc, collectionsSvc, pantrySvc, progressSvc, generatorClient, log)

	verifier := identity.NewTokenVerifier(cfg.Auth, log)
	profiles := identity.NewClient(cfg.Identity.BaseURL, cfg.Identity.Timeout, log)

	metrics := httpapi.NewMetrics()
	api := httpapi.NewAPI(httpapi.Services{
		Account:     accountSvc,
		Collections: collectionsSvc,
		Feed:        feedSvc,
		Generation:  generationSvc,
		MealPlan:    mealplanSvc,
		Pantry:      pantrySvc,
		Progress:    progressSvc,
		Quota:       quotaSvc,
	}, metrics, log)

	router := httpapi.NewRouter(api, httpapi.RouterDeps{
		Auth:      httpapi.NewAuthenticator(verifier, profiles, log),
		RateLimit: httpapi.NewRateLimiter(cfg.RateLimit, log),
		Metrics:   metrics,
		Logger:    log,
	})

	server := httpapi.NewServer(cfg.Server, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if err := server.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	log.Info("server stopped")
	return nil
}
