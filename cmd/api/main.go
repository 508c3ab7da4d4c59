package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobhunter/platform/internal/api"
	"github.com/jobhunter/platform/internal/core/ports"
	"github.com/jobhunter/platform/internal/infrastructure/config"
	mongodb "github.com/jobhunter/platform/internal/infrastructure/db/mongo"
	redisdb "github.com/jobhunter/platform/internal/infrastructure/db/redis"
	"github.com/jobhunter/platform/internal/infrastructure/email"
	"github.com/jobhunter/platform/internal/infrastructure/queue"
	"github.com/jobhunter/platform/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        JobHunter API
// @version      1.0
// @description  Job board platform API: accounts, listings, applications and dashboards.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "api",
		Pretty:  cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	views := queue.NewViewDispatcher(0, mongodb.NewJobRepository(db), log)
	views.Start(ctx)

	var mailer ports.Mailer
	if cfg.SendGrid.APIKey != "" {
		mailer = email.NewSendGridMailer(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName, log)
	} else {
		log.Warn().Msg("SENDGRID_API_KEY not set, password reset emails are logged only")
		mailer = email.NewLogMailer(log)
	}

	e := api.NewRouter(cfg, db, rdb, views, mailer, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
