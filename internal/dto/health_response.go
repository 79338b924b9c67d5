package dto

// MemoryUsage is reported in bytes.
type MemoryUsage struct {
	RSS       uint64 `json:"rss"`
	HeapTotal uint64 `json:"heapTotal"`
	HeapUsed  uint64 `json:"heapUsed"`
	External  uint64 `json:"external"`
}

type HealthResponse struct {
	Success     bool        `json:"success"`
	Status      string      `json:"status"`
	Timestamp   string      `json:"timestamp"`
	Uptime      int64       `json:"uptime"`
	Memory      MemoryUsage `json:"memory"`
	Server      string      `json:"server"`
	Environment string      `json:"environment"`
	GoVersion   string      `json:"goVersion"`
}
