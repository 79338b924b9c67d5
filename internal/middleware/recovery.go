package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"
	"time"
	"visionserver/internal/dto"
	"visionserver/internal/logger"
	"visionserver/internal/model"
)

// RecoveryMiddleware turns a panicking handler into a JSON 500 response.
func RecoveryMiddleware(logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("Panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())

				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(dto.ErrorResponse{
					Success:   false,
					Error:     "internal server error",
					Timestamp: model.FormatTime(time.Now()),
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
