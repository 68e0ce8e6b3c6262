package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/connectpro/marketplace-api/internal/api"
	"github.com/connectpro/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/connectpro/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/connectpro/marketplace-api/internal/infrastructure/db/redis"
	"github.com/connectpro/marketplace-api/internal/infrastructure/queue"
	"github.com/connectpro/marketplace-api/pkg/logger"
)

// @title        ConnectPro Marketplace API
// @version      1.0
// @description  Home-services marketplace: session authority, provider approval, bookings and reviews.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Admin seed ---
	if err := mongodb.EnsureAdmin(ctx, mongodb.NewAdminRepository(db), cfg.Admin.Email, cfg.Admin.Password, log); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	// --- Booking audit dispatcher ---
	recorder := queue.NewAuditRecorder(mongodb.NewEventRepository(db))
	dispatcher := queue.NewDispatcher(cfg.QueueWorkers, recorder, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, cfg, dispatcher, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
