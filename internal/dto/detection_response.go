package dto

type DetectionSessionStats struct {
	FaceDetections   int64 `json:"faceDetections"`
	ObjectDetections int64 `json:"objectDetections"`
	TotalDetections  int64 `json:"totalDetections"`
}

type DetectionGlobalStats struct {
	TotalFaceDetections int64 `json:"totalFaceDetections"`
	TotalDetections     int64 `json:"totalDetections"`
}

type DetectionResponse struct {
	Success      bool                  `json:"success"`
	Message      string                `json:"message"`
	SessionStats DetectionSessionStats `json:"sessionStats"`
	GlobalStats  DetectionGlobalStats  `json:"globalStats"`
	Timestamp    string                `json:"timestamp"`
}
