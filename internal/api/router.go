package api

import (
	"log/slog"
	"net/http"

	"miller-projection-service/internal/api/handlers"
	"miller-projection-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers only see the Projector port, never the concrete projection.
func NewRouter(projector ports.Projector, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	projHandler := &handlers.ProjectionHandler{
		Projector: projector,
		Logger:    logger,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/project", projHandler.Project)
	mux.HandleFunc("/unproject", projHandler.Unproject)

	return loggingMiddleware(logger, mux)
}
