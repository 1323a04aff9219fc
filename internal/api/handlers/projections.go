package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"miller-projection-service/internal/api/dto"
	"miller-projection-service/internal/domain"
	"miller-projection-service/internal/platform/obs"
	"miller-projection-service/internal/ports"
	"miller-projection-service/internal/services"

	"github.com/paulmach/orb/geojson"
)

// ProjectionHandler exposes forward and inverse Miller projection over HTTP.
type ProjectionHandler struct {
	Projector ports.Projector
	Logger    *slog.Logger
}

// Project handles GET /project?lon=&lat=[&format=geojson].
func (h *ProjectionHandler) Project(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	lon, err := floatParam(r, "lon")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	lat, err := floatParam(r, "lat")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	done := obs.Time(r.Context(), h.Logger, "project")
	p, err := h.Projector.Project(domain.NewGeoCoordinate(lon, lat))
	done(&err)
	if err != nil {
		if errors.Is(err, services.ErrInvalidLatitude) || errors.Is(err, services.ErrInvalidLongitude) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.ErrorContext(r.Context(), "project failed", "lon", lon, "lat", lat, "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if r.URL.Query().Get("format") == "geojson" {
		f := geojson.NewFeature(p.Point())
		f.Properties["lon"] = lon
		f.Properties["lat"] = lat
		writeGeoJSON(w, r, http.StatusOK, f)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ProjectionResponse{Lon: lon, Lat: lat, X: p.X, Y: p.Y})
}

// Unproject handles GET /unproject?x=&y=.
func (h *ProjectionHandler) Unproject(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	x, err := floatParam(r, "x")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	y, err := floatParam(r, "y")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	done := obs.Time(r.Context(), h.Logger, "unproject")
	c, err := h.Projector.Unproject(domain.NewPlanarPoint(x, y))
	done(&err)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPoint) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.ErrorContext(r.Context(), "unproject failed", "x", x, "y", y, "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ProjectionResponse{Lon: c.Lon, Lat: c.Lat, X: x, Y: y})
}
