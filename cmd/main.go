package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/404reese/vynk/internal/app/registry"
	"github.com/404reese/vynk/internal/app/server"
	"github.com/404reese/vynk/internal/config"
	"github.com/404reese/vynk/internal/core/services"
	"github.com/404reese/vynk/internal/platform/logger"
	"github.com/404reese/vynk/internal/platform/telemetry"
)

func main() {
	// Context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Config
	cfg := config.Load()

	// Logger
	log := logger.NewLogger(*cfg)
	log.Info("starting application")

	otelShutdown, err := telemetry.InitTelemetry(ctx, *cfg)
	if err != nil {
		log.Error("failed to initialize telemetry", "err", err)
	}
	defer func() {
		if otelShutdown == nil {
			return
		}
		log.Info("flushing telemetry...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			log.Error("telemetry shutdown failed", "err", err)
		}
	}()

	// Core
	hub := registry.NewRegistry(log)
	relaySvc := services.NewRelayService(log, hub)

	// Server
	srv := server.NewServer(log, cfg, relaySvc, hub)
	if err := srv.Start(ctx); err != nil {
		log.Error("server stopped with error", "err", err)
		return
	}
	log.Info("application stopped")
}
