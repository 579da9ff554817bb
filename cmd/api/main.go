package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusops/student-api/internal/api"
	"github.com/campusops/student-api/internal/core/service"
	"github.com/campusops/student-api/internal/infrastructure/config"
	mongodb "github.com/campusops/student-api/internal/infrastructure/db/mongo"
	redisdb "github.com/campusops/student-api/internal/infrastructure/db/redis"
	"github.com/campusops/student-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// devSessionSecret keeps local development friction-free; production must
// set SESSION_SECRET.
const devSessionSecret = "dev-only-session-secret"

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	secret := cfg.Session.Secret
	if secret == "" {
		if cfg.Env != "development" {
			log.Fatal().Msg("SESSION_SECRET is required outside development")
		}
		log.Warn().Msg("SESSION_SECRET not set, using development default")
		secret = devSessionSecret
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Store connectivity is fatal at startup: fail fast before accepting traffic.
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if derr := client.Disconnect(context.Background()); derr != nil {
			log.Error().Err(derr).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if cerr := rdb.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("redis close failed")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}

	if cfg.Admin.Username != "" && cfg.Admin.Password != "" {
		authService := service.NewAuthService(userRepo)
		if err := authService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			log.Fatal().Err(err).Msg("admin bootstrap failed")
		}
		log.Info().Str("username", cfg.Admin.Username).Msg("admin account ensured")
	}

	e := api.NewRouter(db, rdb, secret, cfg.Session.TTL, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if serr := e.Start(":" + cfg.Port); serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			log.Fatal().Err(serr).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
