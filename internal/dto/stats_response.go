package dto

// Statistics is the aggregate part of GET /api/stats.
type Statistics struct {
	TotalSessions           int64 `json:"totalSessions"`
	ActiveSessions          int   `json:"activeSessions"`
	TotalDetections         int64 `json:"totalDetections"`
	TotalFaceDetections     int64 `json:"totalFaceDetections"`
	TotalInteractions       int64 `json:"totalInteractions"`
	AvgDetectionsPerSession int64 `json:"avgDetectionsPerSession"`
}

// SystemInfo describes the host process.
type SystemInfo struct {
	Memory      string `json:"memory"` // Resident size, e.g. "12 MB"
	PID         int    `json:"pid"`
	GoVersion   string `json:"goVersion"`
	Environment string `json:"environment"`
}

type StatsResponse struct {
	Success         bool       `json:"success"`
	Status          string     `json:"status"`
	ServerStartTime string     `json:"serverStartTime"`
	LastUpdated     string     `json:"lastUpdated"`
	Uptime          int64      `json:"uptime"`
	Statistics      Statistics `json:"statistics"`
	System          SystemInfo `json:"system"`
	Timestamp       string     `json:"timestamp"`
}
