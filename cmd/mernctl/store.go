package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
	"go.mongodb.org/mongo-driver/mongo"

	mongodb "github.com/mernapp/mern-api/internal/infrastructure/db/mongo"
	"github.com/mernapp/mern-api/internal/pkg/config"
	"github.com/mernapp/mern-api/pkg/logger"
)

// session is the configuration, logger and open database shared by commands.
type session struct {
	cfg    *config.Config
	log    zerolog.Logger
	client *mongo.Client
	db     *mongo.Database
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.LoadWith(ctx, envconfig.OsLookuper())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  true,
		Service: "mernctl",
		Env:     cfg.Env,
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "mernctl",
	})
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	return &session{cfg: cfg, log: log, client: client, db: db}, nil
}

func (s *session) Close(ctx context.Context) {
	if err := mongodb.Disconnect(ctx, s.client); err != nil {
		s.log.Warn().Err(err).Msg("mongo disconnect failed")
	}
}
