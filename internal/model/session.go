package model

import (
	"slices"
	"time"
)

// Session is the telemetry record of one client visit, from session start to end.
type Session struct {
	ID               string
	StartTime        time.Time
	EndTime          *time.Time // nil while the session is active
	Duration         *int64     // Whole seconds, set on end
	UserAgent        string
	IP               string
	FaceDetections   int64
	ObjectDetections int64
	Interactions     int64
	Filters          []string // Distinct, in order of first use
	LastActivity     time.Time
}

// Active reports whether the session has not been ended yet.
func (s *Session) Active() bool {
	return s.EndTime == nil
}

// AddFilter appends value unless it is already present.
func (s *Session) AddFilter(value string) {
	if slices.Contains(s.Filters, value) {
		return
	}
	s.Filters = append(s.Filters, value)
}

// Totals are the server-lifetime counters.
type Totals struct {
	TotalSessions       int64 `json:"totalSessions"`
	TotalDetections     int64 `json:"totalDetections"`
	TotalFaceDetections int64 `json:"totalFaceDetections"`
	TotalInteractions   int64 `json:"totalInteractions"`
}
