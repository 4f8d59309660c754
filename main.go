package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MariamElsayed172/Notes-Management-API/internal/api"
	"github.com/MariamElsayed172/Notes-Management-API/internal/auth"
	"github.com/MariamElsayed172/Notes-Management-API/internal/config"
	"github.com/MariamElsayed172/Notes-Management-API/internal/crypto"
	"github.com/MariamElsayed172/Notes-Management-API/internal/database"
	"github.com/MariamElsayed172/Notes-Management-API/internal/logger"
	"github.com/MariamElsayed172/Notes-Management-API/internal/services"
	"github.com/MariamElsayed172/Notes-Management-API/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.AppEnv)

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Crypto helpers; secrets are injected here, never read from globals.
	phoneCipher, err := crypto.NewPhoneCipher(cfg.PhoneKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize phone cipher")
	}
	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Set up stores and services
	userStore := store.NewUserStore(db)
	noteStore := store.NewNoteStore(db)
	userService := services.NewUserService(userStore, phoneCipher, tokenManager)
	noteService := services.NewNoteService(noteStore)

	// Set up router
	router := api.NewRouter(tokenManager, userService, noteService)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
