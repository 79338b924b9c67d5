package handler

import (
	"net/http"
	"visionserver/internal/dto"
	"visionserver/internal/logger"
	"visionserver/internal/model"
	"visionserver/internal/service/telemetry"
)

// RecordDetectionHandler handles POST /api/detection/record.
func RecordDetectionHandler(svc *telemetry.Service, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.DetectionRequest
		decodeBody(w, r, &req, logger)

		result, err := svc.RecordDetection(telemetry.DetectionInput{
			SessionID:       req.SessionID,
			FaceCount:       int64(req.FaceCount),
			ObjectCount:     int64(req.ObjectCount),
			ConfidenceLevel: req.ConfidenceLevel,
			DetectionType:   string(req.DetectionType),
		})
		if err != nil {
			writeServiceError(w, err, logger)
			return
		}
		logger.Info("Detection recorded for session %s: faces=%d objects=%d", req.SessionID, req.FaceCount, req.ObjectCount)

		writeJSON(w, http.StatusOK, dto.DetectionResponse{
			Success: true,
			Message: "Detection recorded",
			SessionStats: dto.DetectionSessionStats{
				FaceDetections:   result.SessionFaceDetections,
				ObjectDetections: result.SessionObjectDetections,
				TotalDetections:  result.SessionDetections(),
			},
			GlobalStats: dto.DetectionGlobalStats{
				TotalFaceDetections: result.TotalFaceDetections,
				TotalDetections:     result.TotalDetections,
			},
			Timestamp: model.FormatTime(svc.Now()),
		}, logger)
	}
}
