package dto

// SessionRequest is the body of POST /api/session/end.
type SessionRequest struct {
	SessionID string `json:"sessionId"`
}
