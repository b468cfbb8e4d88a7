package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"flightsite/internal/airports"
	"flightsite/internal/config"
	"flightsite/internal/logger"
	"flightsite/internal/server"
	"flightsite/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional .env for local development
	godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	log := logger.WithComponent("main")

	log.Info("Starting flight logbook service", logger.Fields{
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"version":     config.GetVersion(),
	})

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database", err, logger.Fields{"path": cfg.DBPath})
	}
	defer st.Close()

	index, err := airports.LoadIndex(cfg.AirportIndexPath)
	if err != nil {
		log.Warn("Airport index unavailable, imports will lack coordinates", logger.Fields{
			"path":  cfg.AirportIndexPath,
			"error": err.Error(),
		})
		index = airports.NewIndex(nil)
	} else {
		log.Info("Airport index loaded", logger.Fields{"airports": index.Len()})
	}

	srv, err := server.NewServer(ctx, cfg, st, index)
	if err != nil {
		log.Fatal("Failed to create server", err)
	}
	defer srv.Close()

	if err := srv.EnsureDemoProfile(ctx); err != nil {
		log.Error("Failed to seed demo profile", err)
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server listening", logger.Fields{"addr": httpServer.Addr})
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal("HTTP server error", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", err)
	}
	log.Info("Server stopped")
}
