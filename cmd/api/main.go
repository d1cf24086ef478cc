package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/comitanigiacomo/consistency-tracker/docs"
	"github.com/comitanigiacomo/consistency-tracker/internal/app"
	"github.com/comitanigiacomo/consistency-tracker/internal/config"
	"github.com/comitanigiacomo/consistency-tracker/internal/logging"
)

// @title                       Consistency Tracker API
// @version                     1.0
// @description                 Goals, monthly consistency statistics and gamified progress.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	if err := logging.Init(logging.Options{
		Verbose: cfg.GinMode == gin.DebugMode,
		Dir:     cfg.LogDir,
		Name:    "api",
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise logging")
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}
	log.Info().Msg("Server stopped gracefully.")
}

func run(cfg *config.AppConfig) error {
	gin.SetMode(cfg.GinMode)
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("driver", cfg.StorageDriver).Msg("Opening storage...")
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      a.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return a.RunBackground(ctx) })

	g.Go(func() error {
		log.Info().Msgf("Consistency Tracker running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Stop signal received. Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
