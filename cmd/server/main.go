package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clinicops/directory-admin/internal/api"
	"github.com/clinicops/directory-admin/internal/infrastructure/config"
	mongodb "github.com/clinicops/directory-admin/internal/infrastructure/db/mongo"
	redisdb "github.com/clinicops/directory-admin/internal/infrastructure/db/redis"
	"github.com/clinicops/directory-admin/internal/infrastructure/identity"
	"github.com/clinicops/directory-admin/internal/infrastructure/queue"
	"github.com/clinicops/directory-admin/pkg/logger"
)

// @title        Clinic Directory Admin API
// @version      1.0
// @description  Administrative frontend for a clinical-practice user directory.
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	idClient := identity.NewClient(identity.Config{
		URL:     cfg.Identity.URL,
		APIKey:  cfg.Identity.APIKey,
		Timeout: cfg.Identity.Timeout,
	})

	recorder := queue.NewRecorder(0, mongodb.NewAuditRepository(db), log)
	recorder.Start(ctx)

	e := api.NewRouter(api.Deps{
		Config:    cfg,
		Logger:    log,
		Identity:  idClient,
		Directory: idClient,
		Audit:     recorder,
		Mongo:     db,
		Redis:     rdb,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			stop()
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}
}
