package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/elbuensabor/backoffice/internal/api"
	mongodb "github.com/elbuensabor/backoffice/internal/infrastructure/db/mongo"
	redisdb "github.com/elbuensabor/backoffice/internal/infrastructure/db/redis"
	"github.com/elbuensabor/backoffice/internal/pkg/config"
	"github.com/elbuensabor/backoffice/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	tz, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Timezone).Msg("invalid timezone")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Two separate connections on purpose: the credential store and the
	// operational store fail independently, and the provisioning saga
	// depends on observing those failures separately.
	opClient, opDB, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("operational store connection failed")
	}
	defer func() { _ = opClient.Disconnect(context.Background()) }()

	credClient, credDB, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.CredentialDatabase,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("credential store connection failed")
	}
	defer func() { _ = credClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	if err := mongodb.NewCredentialRepository(credDB).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("credential index creation failed")
	}
	if err := mongodb.NewOrderRepository(opDB).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("order index creation failed")
	}

	e, dispatcher := api.NewRouter(api.Dependencies{
		Operational:  opDB,
		Credential:   credDB,
		Redis:        rdb,
		JWTSecret:    cfg.JWTSecret,
		Timezone:     tz,
		EventWorkers: cfg.EventWorkers,
		Log:          log,
	})
	dispatcher.Start(ctx)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("timezone", cfg.Timezone).Msg("back-office API started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
