package handler

import (
	"net/http"
	"visionserver/internal/dto"
	"visionserver/internal/logger"
	"visionserver/internal/model"
	"visionserver/internal/service/telemetry"
)

// StartSessionHandler handles POST /api/session/start.
func StartSessionHandler(svc *telemetry.Service, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := svc.Start(r.UserAgent(), clientIP(r))
		logger.Info("Session started: %s", sessionID)

		writeJSON(w, http.StatusOK, dto.SessionStartResponse{
			Success:   true,
			SessionID: sessionID,
			Message:   "Session started",
			Timestamp: model.FormatTime(svc.Now()),
		}, logger)
	}
}

// EndSessionHandler handles POST /api/session/end.
func EndSessionHandler(svc *telemetry.Service, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.SessionRequest
		decodeBody(w, r, &req, logger)

		summary, err := svc.End(req.SessionID)
		if err != nil {
			writeServiceError(w, err, logger)
			return
		}
		logger.Info("Session ended: %s (%ds)", req.SessionID, summary.Duration)

		writeJSON(w, http.StatusOK, dto.SessionEndResponse{
			Success: true,
			Message: "Session ended",
			SessionStats: dto.SessionEndStats{
				FaceDetections:   summary.FaceDetections,
				ObjectDetections: summary.ObjectDetections,
				Interactions:     summary.Interactions,
				Duration:         summary.Duration,
				Filters:          summary.Filters,
			},
			Timestamp: model.FormatTime(svc.Now()),
		}, logger)
	}
}
