package route

import (
	"net/http"
	"visionserver/internal/config"
	"visionserver/internal/handler"
	"visionserver/internal/logger"
	"visionserver/internal/middleware"
	"visionserver/internal/service/telemetry"
)

// Dependencies are the services the HTTP layer needs.
type Dependencies struct {
	Telemetry *telemetry.Service
	Journal   handler.EventReader
	Hub       handler.Viewers
	Config    *config.Config
	Logger    *logger.Logger
}

// SetupRoutes registers the API endpoints and the frontend fallback, then wraps the mux with
// recovery, CORS and request logging.
func SetupRoutes(deps Dependencies) http.Handler {
	svc, cfg, log := deps.Telemetry, deps.Config, deps.Logger
	mux := http.NewServeMux()

	// API endpoints
	mux.HandleFunc("GET /api/health", handler.HealthHandler(svc, cfg, log))
	mux.HandleFunc("POST /api/session/start", handler.StartSessionHandler(svc, log))
	mux.HandleFunc("POST /api/session/end", handler.EndSessionHandler(svc, log))
	mux.HandleFunc("POST /api/detection/record", handler.RecordDetectionHandler(svc, log))
	mux.HandleFunc("POST /api/interaction/record", handler.RecordInteractionHandler(svc, log))
	mux.HandleFunc("GET /api/stats", handler.GetStatsHandler(svc, cfg, log))
	mux.HandleFunc("GET /api/events", handler.GetEventsHandler(svc, deps.Journal, log))
	mux.HandleFunc("GET /api/live", handler.LiveWebsocketHandler(deps.Hub, log))

	// Log endpoints
	mux.HandleFunc("GET /api/logs", handler.GetLogsHandler(svc, log))
	mux.HandleFunc("GET /api/logs/{level}", handler.ShowLogFileHandler(log))
	mux.HandleFunc("POST /api/logs/{level}/clear", handler.ClearLogFileHandler(svc, log))

	mux.HandleFunc("/api/", handler.APINotFoundHandler(log))

	// Static files and SPA fallback
	mux.HandleFunc("/", handler.FrontendHandler(svc, cfg, log))

	var h http.Handler = mux
	h = middleware.CORSMiddleware(cfg.CORSOrigin)(h)
	h = middleware.RecoveryMiddleware(log)(h)
	h = middleware.LoggingMiddleware(log)(h)
	return h
}
