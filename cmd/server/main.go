package main

import (
	"log"
	"log/slog"
	"net/http"
	"time"

	"miller-projection-service/internal/api"
	"miller-projection-service/internal/config"
	"miller-projection-service/internal/services"
)

// main is the application composition root.
// It wires the Miller projector behind the Projector port and starts the HTTP server.
func main() {
	cfg, err := config.Load(nil)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	projector, err := services.NewMillerProjector(cfg.Projection.Radius)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(projector, logger)

	logger.Info("server listening", "addr", cfg.GetServerAddr(), "radius", projector.Radius)
	srv := &http.Server{
		Addr:              cfg.GetServerAddr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server failed", "err", err)
		log.Fatal(err)
	}
}
