package telemetry

import (
	"fmt"
	"math"
	"time"
	"visionserver/internal/model"
)

// StatsSnapshot is a read-only view of the aggregate at one point in time.
type StatsSnapshot struct {
	model.Totals
	ActiveSessions          int
	AvgDetectionsPerSession int64
	ServerStartTime         time.Time
	LastUpdated             time.Time
	Uptime                  int64
}

// Stats computes the aggregate statistics. Active sessions are counted by scanning every session.
func (s *Service) Stats() StatsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := 0
	for _, session := range s.sessions {
		if session.Active() {
			active++
		}
	}

	var avg int64
	if s.totals.TotalSessions > 0 {
		avg = int64(math.Round(float64(s.totals.TotalDetections) / float64(s.totals.TotalSessions)))
	}

	return StatsSnapshot{
		Totals:                  s.totals,
		ActiveSessions:          active,
		AvgDetectionsPerSession: avg,
		ServerStartTime:         s.serverStartTime,
		LastUpdated:             s.lastUpdated,
		Uptime:                  roundSeconds(s.clock.Since(s.serverStartTime)),
	}
}

// Uptime is the number of seconds since the service was created.
func (s *Service) Uptime() int64 {
	return roundSeconds(s.clock.Since(s.serverStartTime))
}

// Now returns the service clock's current time.
func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// Summary returns human-readable lines describing the aggregate.
func (s *Service) Summary() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return []string{
		fmt.Sprintf("Server started: %s", model.FormatTime(s.serverStartTime)),
		fmt.Sprintf("Total sessions: %d", s.totals.TotalSessions),
		fmt.Sprintf("Total detections: %d", s.totals.TotalDetections),
		fmt.Sprintf("Total interactions: %d", s.totals.TotalInteractions),
		fmt.Sprintf("Last updated: %s", model.FormatTime(s.lastUpdated)),
	}
}
