package dto

type SessionStartResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type SessionEndStats struct {
	FaceDetections   int64    `json:"faceDetections"`
	ObjectDetections int64    `json:"objectDetections"`
	Interactions     int64    `json:"interactions"`
	Duration         int64    `json:"duration"`
	Filters          []string `json:"filters"`
}

type SessionEndResponse struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message"`
	SessionStats SessionEndStats `json:"sessionStats"`
	Timestamp    string          `json:"timestamp"`
}
