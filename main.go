package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/a009/litecharts/internal/config"
	"github.com/a009/litecharts/internal/logger"
	"github.com/a009/litecharts/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Infof("Starting litecharts service %s on port %s", config.GetVersion(), cfg.Port)
	logger.Infof("Environment: %s", cfg.Environment)

	srv, err := server.NewServer(cfg)
	if err != nil {
		logger.Fatal("Failed to create server", err)
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", err)
	}

	logger.Info("Server stopped")
}
