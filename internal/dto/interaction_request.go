package dto

// InteractionRequest is the body of POST /api/interaction/record.
type InteractionRequest struct {
	SessionID  string `json:"sessionId"`
	WidgetName Text   `json:"widgetName"`
	Action     Text   `json:"action"`
	Value      Text   `json:"value"`
}
