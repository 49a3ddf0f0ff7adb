package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-intel-backend/internal/config"
	"health-intel-backend/internal/database"
	"health-intel-backend/internal/logger"
	"health-intel-backend/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 1. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	// 2. Initialize logging
	log := logger.New(cfg.Log)
	zerolog.DefaultContextLogger = &log
	log.Info().Str("addr", cfg.Addr()).Str("driver", cfg.Database.Driver).Msg("configuration loaded")

	// 3. Initialize database connection
	db, err := database.Connect(cfg.Database, cfg.IsRelease(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
		log.Info().Msg("database migrated")
	}

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), cfg.Database.AcquireTimeout)
	err = db.SeedAdmin(seedCtx, cfg.Admin, log)
	cancelSeed()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed bootstrap admin")
	}

	// 4. Setup Gin router
	gin.SetMode(cfg.Server.GinMode)
	engine, err := router.Setup(cfg, db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 5. Setup graceful shutdown
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
