package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spacesedan/emotion-detector/config"
	"github.com/spacesedan/emotion-detector/internal/clients"
	"github.com/spacesedan/emotion-detector/internal/logging"
	"github.com/spacesedan/emotion-detector/internal/monitoring"
	"github.com/spacesedan/emotion-detector/internal/router"
)

const shutdownTimeout = 5 * time.Second

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	emotionClient := clients.NewEmotionClient(cfg)

	var upstreamHealthy *atomic.Bool
	if cfg.HealthInterval > 0 {
		upstreamHealthy = &atomic.Bool{}
		upstreamHealthy.Store(true)
		go monitoring.MonitorEmotionService(ctx, emotionClient, cfg.HealthInterval, upstreamHealthy)
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.NewRouter(emotionClient, upstreamHealthy),
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		slog.Info("[Main] Shutting down server gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("[Main] Shutdown failed", slog.String("error", err.Error()))
		}
	}()

	slog.Info("[Main] Listening",
		slog.String("addr", cfg.Addr()),
		slog.String("env", cfg.Env))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("[Main] Server closed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	<-shutdownDone
	slog.Info("[Main] Server closed")
}
