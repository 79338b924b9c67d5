package handler

import (
	"net/http"
	"strconv"
	"visionserver/internal/dto"
	"visionserver/internal/logger"
	"visionserver/internal/model"
	"visionserver/internal/service/telemetry"
)

const (
	defaultEventsLimit = 50
	maxEventsLimit     = 500
)

// EventReader is the read side of the activity journal.
type EventReader interface {
	Recent(limit int) ([]model.Event, error)
	Count() (int64, error)
}

// GetEventsHandler handles GET /api/events?limit=N, newest events first.
func GetEventsHandler(svc *telemetry.Service, journal EventReader, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := atoiDefault(r.URL.Query().Get("limit"), defaultEventsLimit)
		if limit > maxEventsLimit {
			limit = maxEventsLimit
		}

		events, err := journal.Recent(limit)
		if err != nil {
			logger.Error("Error reading journal: %v", err)
			writeError(w, http.StatusInternalServerError, "internal server error", logger)
			return
		}

		total, err := journal.Count()
		if err != nil {
			logger.Error("Error counting journal events: %v", err)
			total = int64(len(events))
		}

		writeJSON(w, http.StatusOK, dto.EventsResponse{
			Success:   true,
			Events:    events,
			Total:     total,
			Timestamp: model.FormatTime(svc.Now()),
		}, logger)
	}
}

// atoiDefault parses a positive integer or returns def.
func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
