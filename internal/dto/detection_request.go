package dto

// DetectionRequest is the body of POST /api/detection/record.
type DetectionRequest struct {
	SessionID       string `json:"sessionId"`
	FaceCount       Count  `json:"faceCount"`
	ObjectCount     Count  `json:"objectCount"`
	ConfidenceLevel any    `json:"confidenceLevel"` // Informational, never validated
	DetectionType   Text   `json:"detectionType"`
}
