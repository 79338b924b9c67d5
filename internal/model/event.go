package model

import (
	"encoding/json"
	"time"
)

type EventType string

const (
	EventSessionStarted      EventType = "session.started"
	EventSessionEnded        EventType = "session.ended"
	EventDetectionRecorded   EventType = "detection.recorded"
	EventInteractionRecorded EventType = "interaction.recorded"
)

// Event describes one mutation of the statistics aggregate.
// ID is assigned by the journal; it is zero for events that were never stored.
type Event struct {
	ID        int64          `json:"id,omitempty"`
	Type      EventType      `json:"type"`
	SessionID string         `json:"sessionId"`
	Detail    map[string]any `json:"detail,omitempty"`
	Totals    Totals         `json:"totals"`
	Timestamp time.Time      `json:"timestamp"`
}

// MarshalJSON formats the timestamp in TimeLayout.
func (e Event) MarshalJSON() ([]byte, error) {
	type Alias Event
	return json.Marshal(&struct {
		Timestamp string `json:"timestamp"`
		Alias
	}{
		Timestamp: FormatTime(e.Timestamp),
		Alias:     (Alias)(e),
	})
}
