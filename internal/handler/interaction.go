package handler

import (
	"net/http"
	"visionserver/internal/dto"
	"visionserver/internal/logger"
	"visionserver/internal/model"
	"visionserver/internal/service/telemetry"
)

// RecordInteractionHandler handles POST /api/interaction/record.
func RecordInteractionHandler(svc *telemetry.Service, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.InteractionRequest
		decodeBody(w, r, &req, logger)

		result, err := svc.RecordInteraction(telemetry.InteractionInput{
			SessionID:  req.SessionID,
			WidgetName: string(req.WidgetName),
			Action:     string(req.Action),
			Value:      string(req.Value),
		})
		if err != nil {
			writeServiceError(w, err, logger)
			return
		}
		logger.Info("Interaction recorded for session %s: %s/%s", req.SessionID, req.WidgetName, req.Action)

		writeJSON(w, http.StatusOK, dto.InteractionResponse{
			Success:                    true,
			Message:                    "Interaction recorded",
			TotalInteractionsInSession: result.Interactions,
			Filters:                    result.Filters,
			Timestamp:                  model.FormatTime(svc.Now()),
		}, logger)
	}
}
