package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mernapp/mern-api/internal/api"
	"github.com/mernapp/mern-api/internal/api/handler"
	"github.com/mernapp/mern-api/internal/core/service"
	mongodb "github.com/mernapp/mern-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mernapp/mern-api/internal/infrastructure/db/redis"
	"github.com/mernapp/mern-api/internal/pkg/config"
	"github.com/mernapp/mern-api/pkg/logger"
)

const (
	serviceName     = "mern-api"
	shutdownTimeout = 10 * time.Second
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.PrettyLogs(),
		Service: serviceName,
		Env:     cfg.Env,
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The store must be reachable before the listener binds.
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  serviceName,
	})
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer func() {
		if err := mongodb.Disconnect(context.Background(), client); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
			return
		}
		log.Info().Msg("MongoDB connection closed")
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("MongoDB connected")

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	users := mongodb.NewUserRepository(db)
	posts := mongodb.NewPostRepository(db)

	mongoPing := handler.PingFunc(func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	})
	readiness := []handler.Dependency{{Name: "mongodb", Pinger: mongoPing}}

	var locker service.SeedLocker
	redisCfg := redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if redisCfg.Enabled() {
		rdb, err := redisdb.Connect(ctx, redisCfg)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rdb.Close()

		locker = redisdb.NewSeedLock(rdb)
		readiness = append(readiness, handler.Dependency{
			Name:   "redis",
			Pinger: handler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		})
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connected")
	}

	deps := api.Dependencies{
		Users:        service.NewUserService(users, log),
		Posts:        service.NewPostService(posts, users, log),
		Health:       handler.NewHealthHandler(cfg.Env, mongoPing, readiness...),
		Logger:       log,
		ExposeErrors: cfg.IsDevelopment(),
	}
	if cfg.SeedAllowed() {
		deps.Seed = service.NewSeedService(users, posts, locker, log)
	} else {
		log.Info().Msg("seed endpoint disabled")
	}

	e := api.NewRouter(deps)

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		log.Info().
			Str("addr", cfg.Addr()).
			Str("api", "http://localhost:"+cfg.Port+"/api").
			Msg("server listening")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
