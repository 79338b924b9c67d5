package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"visionserver/internal/dto"
	"visionserver/internal/logger"
	"visionserver/internal/model"
	"visionserver/internal/service/telemetry"
)

var logFiles = map[string]string{
	"info":    logger.InfoFile,
	"warning": logger.WarningFile,
	"error":   logger.ErrorFile,
}

// GetLogsHandler handles GET /api/logs. There is no log store behind it; serverLogs is a
// summary of the aggregate.
func GetLogsHandler(svc *telemetry.Service, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dto.LogsResponse{
			Success:    true,
			Logs:       []string{},
			Message:    "Request logs are written to the server log files",
			ServerLogs: svc.Summary(),
			Timestamp:  model.FormatTime(svc.Now()),
		}, logger)
	}
}

// ShowLogFileHandler handles GET /api/logs/{level} by serving the level's log file as text/plain.
func ShowLogFileHandler(logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, ok := logFiles[r.PathValue("level")]
		if !ok || logger.Dir() == "" {
			writeError(w, http.StatusNotFound, "log file not found", logger)
			return
		}
		serveLogFile(w, r, logger.Dir(), filename, logger)
	}
}

// serveLogFile is a helper that sets headers and serves a log file if it exists.
func serveLogFile(w http.ResponseWriter, r *http.Request, logDir, filename string, logger *logger.Logger) {
	filePath := filepath.Join(logDir, filename)

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		writeError(w, http.StatusNotFound, "log file not found: "+filename, logger)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")

	http.ServeFile(w, r, filePath)
}

// ClearLogFileHandler handles POST /api/logs/{level}/clear by truncating the level's log file.
func ClearLogFileHandler(svc *telemetry.Service, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, ok := logFiles[r.PathValue("level")]
		if !ok {
			writeError(w, http.StatusNotFound, "log file not found", logger)
			return
		}

		if err := logger.CleanLogs(filename); err != nil {
			logger.Error("Error clearing %s: %v", filename, err)
			writeError(w, http.StatusNotFound, "log file not found: "+filename, logger)
			return
		}

		writeJSON(w, http.StatusOK, dto.MessageResponse{
			Success:   true,
			Message:   filename + " cleared",
			Timestamp: model.FormatTime(svc.Now()),
		}, logger)
	}
}
