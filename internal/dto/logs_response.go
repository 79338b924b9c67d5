package dto

import "visionserver/internal/model"

type LogsResponse struct {
	Success    bool     `json:"success"`
	Logs       []string `json:"logs"`
	Message    string   `json:"message"`
	ServerLogs []string `json:"serverLogs"`
	Timestamp  string   `json:"timestamp"`
}

type EventsResponse struct {
	Success   bool          `json:"success"`
	Events    []model.Event `json:"events"`
	Total     int64         `json:"total"`
	Timestamp string        `json:"timestamp"`
}
