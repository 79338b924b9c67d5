package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"
	"visionserver/internal/dto"
	"visionserver/internal/logger"
	"visionserver/internal/model"
	"visionserver/internal/service/telemetry"
)

const maxBodyBytes = 1 << 20

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any, logger *logger.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Error encoding JSON response: %v", err)
	}
}

// writeError sends the {success:false, error} envelope.
func writeError(w http.ResponseWriter, status int, message string, logger *logger.Logger) {
	writeJSON(w, status, dto.ErrorResponse{
		Success:   false,
		Error:     message,
		Timestamp: model.FormatTime(time.Now()),
	}, logger)
}

// writeServiceError maps telemetry errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error, logger *logger.Logger) {
	switch {
	case errors.Is(err, telemetry.ErrMissingField):
		writeError(w, http.StatusBadRequest, telemetry.ErrMissingField.Error(), logger)
	case errors.Is(err, telemetry.ErrNotFound):
		writeError(w, http.StatusNotFound, telemetry.ErrNotFound.Error(), logger)
	default:
		logger.Error("Unexpected telemetry error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error", logger)
	}
}

// decodeBody fills v from the JSON request body. An empty or malformed body leaves v at its
// zero value, which surfaces as a missing sessionId.
func decodeBody(w http.ResponseWriter, r *http.Request, v any, logger *logger.Logger) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			logger.Warning("Ignoring malformed body on %s: %v", r.URL.Path, err)
		}
	}
}

// clientIP returns the remote host without the port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func errorWithPath(message, path string) dto.ErrorResponse {
	return dto.ErrorResponse{
		Success:   false,
		Error:     message,
		Path:      path,
		Timestamp: model.FormatTime(time.Now()),
	}
}
