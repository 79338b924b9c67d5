package handler

import (
	"net/http"
	"runtime"
	"visionserver/internal/config"
	"visionserver/internal/dto"
	"visionserver/internal/logger"
	"visionserver/internal/model"
	"visionserver/internal/service/telemetry"
)

// HealthHandler handles GET /api/health. It never looks at session state.
func HealthHandler(svc *telemetry.Service, cfg *config.Config, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		writeJSON(w, http.StatusOK, dto.HealthResponse{
			Success:   true,
			Status:    "healthy",
			Timestamp: model.FormatTime(svc.Now()),
			Uptime:    svc.Uptime(),
			Memory: dto.MemoryUsage{
				RSS:       mem.Sys,
				HeapTotal: mem.HeapSys,
				HeapUsed:  mem.HeapAlloc,
				External:  mem.StackSys + mem.MSpanSys + mem.MCacheSys,
			},
			Server:      cfg.ServerName,
			Environment: cfg.Environment,
			GoVersion:   runtime.Version(),
		}, logger)
	}
}
