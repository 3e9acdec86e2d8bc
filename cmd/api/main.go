package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/vaughan-dsouza/feedback/internal/auth"
	"github.com/vaughan-dsouza/feedback/internal/config"
	"github.com/vaughan-dsouza/feedback/internal/db"
	"github.com/vaughan-dsouza/feedback/internal/handlers"
	"github.com/vaughan-dsouza/feedback/internal/logging"
	"github.com/vaughan-dsouza/feedback/internal/repository"
	"github.com/vaughan-dsouza/feedback/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("load config")
	}

	log := logging.New(cfg.LogLevel, cfg.LogPretty)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
	log.Info().Msg("server exited")
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	dbConn, err := db.Connect(startCtx, cfg.DSN(), db.PoolOptions{
		MaxOpen:     cfg.DBMaxOpen,
		MaxIdle:     cfg.DBMaxIdle,
		MaxLifetime: cfg.DBMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.Migrate(startCtx, dbConn.DB); err != nil {
		return err
	}

	tokens, err := auth.NewTokenService(cfg.SecretKey, cfg.Algorithm, cfg.AccessTokenTTL())
	if err != nil {
		return err
	}

	users := repository.NewUserRepository(dbConn)
	directory, err := services.NewUserDirectory(users, auth.NewHasher(cfg.BcryptCost), tokens)
	if err != nil {
		return err
	}
	feedback := services.NewFeedbackStore(repository.NewFeedbackRepository(dbConn), cfg.MaxPageSize)
	resolver := services.NewIdentityResolver(tokens, users)

	h := handlers.NewHandler(directory, feedback, dbConn)
	router := handlers.NewRouter(h, resolver, handlers.RouterOptions{
		Logger:         log,
		AllowedOrigins: cfg.AllowedOrigins(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}
