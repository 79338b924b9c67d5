package handler

import (
	"fmt"
	"math"
	"net/http"
	"os"
	"runtime"
	"visionserver/internal/config"
	"visionserver/internal/dto"
	"visionserver/internal/logger"
	"visionserver/internal/model"
	"visionserver/internal/service/telemetry"
)

// GetStatsHandler handles GET /api/stats.
func GetStatsHandler(svc *telemetry.Service, cfg *config.Config, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := svc.Stats()

		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		writeJSON(w, http.StatusOK, dto.StatsResponse{
			Success:         true,
			Status:          "online",
			ServerStartTime: model.FormatTime(stats.ServerStartTime),
			LastUpdated:     model.FormatTime(stats.LastUpdated),
			Uptime:          stats.Uptime,
			Statistics: dto.Statistics{
				TotalSessions:           stats.TotalSessions,
				ActiveSessions:          stats.ActiveSessions,
				TotalDetections:         stats.TotalDetections,
				TotalFaceDetections:     stats.TotalFaceDetections,
				TotalInteractions:       stats.TotalInteractions,
				AvgDetectionsPerSession: stats.AvgDetectionsPerSession,
			},
			System: dto.SystemInfo{
				Memory:      fmt.Sprintf("%d MB", int64(math.Round(float64(mem.Sys)/1024/1024))),
				PID:         os.Getpid(),
				GoVersion:   runtime.Version(),
				Environment: cfg.Environment,
			},
			Timestamp: model.FormatTime(svc.Now()),
		}, logger)
	}
}
