package dto

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Path      string `json:"path,omitempty"`
	Timestamp string `json:"timestamp"`
}

// MessageResponse acknowledges an action without further payload.
type MessageResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
