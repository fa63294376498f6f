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

	"github.com/isdelr/portfolio-be/internal/api"
	"github.com/isdelr/portfolio-be/internal/auth"
	"github.com/isdelr/portfolio-be/internal/cache"
	"github.com/isdelr/portfolio-be/internal/config"
	"github.com/isdelr/portfolio-be/internal/database"
	"github.com/isdelr/portfolio-be/internal/logger"
	"github.com/isdelr/portfolio-be/internal/monitoring"
	"github.com/isdelr/portfolio-be/internal/services"
	"github.com/isdelr/portfolio-be/internal/store"
	"github.com/isdelr/portfolio-be/internal/websocket"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.IsDevelopment(), cfg.LogLevel)

	if cfg.JWTSecretDefaulted {
		log.Warn().Msg("JWT_SECRET is not set, using the built-in fallback secret")
	}

	// Set up the record store
	s, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize store")
	}
	defer s.Close()

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	err = store.Seed(seedCtx, s, store.AdminSeed{
		Username:     cfg.AdminUsername,
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
		BcryptCost:   cfg.BcryptCost,
	})
	cancelSeed()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed store")
	}

	// Set up WebSocket Hub
	hub := websocket.NewHub()
	go hub.Run()

	// Set up services
	listCache := cache.New(cfg.CacheTTL)
	eventService := services.NewEventService(hub)
	userService := services.NewUserService(s)
	projectService := services.NewProjectService(s, listCache, eventService)
	skillService := services.NewSkillService(s, listCache, eventService)
	offeringService := services.NewOfferingService(s, listCache, eventService)
	messageService := services.NewMessageService(s, eventService)
	statsService := services.NewStatsService(projectService, skillService, messageService)

	// Set up the unread message digest
	var digest *monitoring.Digest
	if cfg.DigestSchedule != "" {
		digest, err = monitoring.NewDigest(messageService, eventService, cfg.DigestSchedule)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to set up message digest")
		}
		digest.Start()
	}

	// Set up router
	router := api.NewRouter(api.Services{
		Users:     userService,
		Projects:  projectService,
		Skills:    skillService,
		Offerings: offeringService,
		Messages:  messageService,
		Stats:     statsService,
		Events:    eventService,
	}, auth.NewIssuer(cfg.JWTSecret), hub, cfg.CORSAllowedOrigins)

	// Set up server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Str("env", cfg.AppEnv).Msg("Server starting")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	if digest != nil {
		digest.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	hub.Stop()

	log.Info().Msg("Server exiting")
}

// openStore returns the SQLite store when DATABASE_PATH is set and the
// in-memory store otherwise.
func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.DatabasePath == "" {
		log.Info().Msg("Using in-memory store")
		return store.NewMemory(), nil
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	log.Info().Str("path", cfg.DatabasePath).Msg("Using SQLite store")
	return store.NewSQLite(db), nil
}
