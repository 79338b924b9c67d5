package telemetry

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"time"
	"visionserver/internal/model"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

// FilterWidget is the widget whose interaction values are collected into a session's filters.
const FilterWidget = "filterSelect"

// EventSink receives an event after every mutation. Publish must not block for long;
// it is called outside the service lock.
type EventSink interface {
	Publish(event model.Event)
}

// Service owns the statistics aggregate and every session record.
type Service struct {
	clock clock.Clock
	sinks []EventSink
	newID func(now time.Time) string

	mu              sync.RWMutex
	totals          model.Totals
	sessions        map[string]*model.Session
	serverStartTime time.Time
	lastUpdated     time.Time
}

type Option func(*Service)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithSinks registers event consumers.
func WithSinks(sinks ...EventSink) Option {
	return func(s *Service) { s.sinks = append(s.sinks, sinks...) }
}

// WithIDGenerator replaces the session id generator. Uniqueness is still enforced by the service.
func WithIDGenerator(gen func(now time.Time) string) Option {
	return func(s *Service) { s.newID = gen }
}

func NewService(opts ...Option) *Service {
	s := &Service{
		clock:    clock.New(),
		newID:    NewSessionID,
		sessions: make(map[string]*model.Session),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.serverStartTime = s.clock.Now()
	s.lastUpdated = s.serverStartTime
	return s
}

// NewSessionID builds "session_<unix ms>_<9 random lowercase alnum chars>".
func NewSessionID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("session_%d_%s", now.UnixMilli(), random[:9])
}

// Start creates an active session and returns its id.
func (s *Service) Start(userAgent, ip string) string {
	if userAgent == "" {
		userAgent = "Unknown"
	}

	s.mu.Lock()
	now := s.clock.Now()
	id := s.newID(now)
	for s.sessions[id] != nil {
		id = s.newID(now)
	}

	s.sessions[id] = &model.Session{
		ID:           id,
		StartTime:    now,
		UserAgent:    userAgent,
		IP:           ip,
		Filters:      []string{},
		LastActivity: now,
	}
	s.totals.TotalSessions++
	s.lastUpdated = now
	event := s.eventLocked(model.EventSessionStarted, id, now, map[string]any{
		"userAgent": userAgent,
		"ip":        ip,
	})
	s.mu.Unlock()

	s.publish(event)
	return id
}

// SessionSummary holds the final counters returned when a session ends.
type SessionSummary struct {
	FaceDetections   int64
	ObjectDetections int64
	Interactions     int64
	Duration         int64
	Filters          []string
}

// End stamps the end time and duration of a session. Calling it again re-stamps both,
// measuring from the original start time.
func (s *Service) End(sessionID string) (SessionSummary, error) {
	if sessionID == "" {
		return SessionSummary{}, ErrMissingField
	}

	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return SessionSummary{}, fmt.Errorf("end %s: %w", sessionID, ErrNotFound)
	}

	now := s.clock.Now()
	duration := roundSeconds(now.Sub(session.StartTime))
	session.EndTime = &now
	session.Duration = &duration
	session.LastActivity = now
	s.lastUpdated = now

	summary := SessionSummary{
		FaceDetections:   session.FaceDetections,
		ObjectDetections: session.ObjectDetections,
		Interactions:     session.Interactions,
		Duration:         duration,
		Filters:          slices.Clone(session.Filters),
	}
	event := s.eventLocked(model.EventSessionEnded, sessionID, now, map[string]any{
		"duration": duration,
	})
	s.mu.Unlock()

	s.publish(event)
	return summary, nil
}

// DetectionInput carries already-coerced detection counts.
type DetectionInput struct {
	SessionID       string
	FaceCount       int64
	ObjectCount     int64
	ConfidenceLevel any
	DetectionType   string
}

type DetectionResult struct {
	SessionFaceDetections   int64
	SessionObjectDetections int64
	TotalFaceDetections     int64
	TotalDetections         int64
}

// SessionDetections is the sum of the session's face and object detections.
func (r DetectionResult) SessionDetections() int64 {
	return r.SessionFaceDetections + r.SessionObjectDetections
}

// RecordDetection adds detection counts to the session and the global totals.
func (s *Service) RecordDetection(in DetectionInput) (DetectionResult, error) {
	if in.SessionID == "" {
		return DetectionResult{}, ErrMissingField
	}
	face, object := max(in.FaceCount, 0), max(in.ObjectCount, 0)

	s.mu.Lock()
	session, ok := s.sessions[in.SessionID]
	if !ok {
		s.mu.Unlock()
		return DetectionResult{}, fmt.Errorf("record detection for %s: %w", in.SessionID, ErrNotFound)
	}

	now := s.clock.Now()
	session.FaceDetections += face
	session.ObjectDetections += object
	session.LastActivity = now
	s.totals.TotalFaceDetections += face
	s.totals.TotalDetections += face + object
	s.lastUpdated = now

	result := DetectionResult{
		SessionFaceDetections:   session.FaceDetections,
		SessionObjectDetections: session.ObjectDetections,
		TotalFaceDetections:     s.totals.TotalFaceDetections,
		TotalDetections:         s.totals.TotalDetections,
	}
	event := s.eventLocked(model.EventDetectionRecorded, in.SessionID, now, map[string]any{
		"faceCount":       face,
		"objectCount":     object,
		"confidenceLevel": in.ConfidenceLevel,
		"detectionType":   in.DetectionType,
	})
	s.mu.Unlock()

	s.publish(event)
	return result, nil
}

type InteractionInput struct {
	SessionID  string
	WidgetName string
	Action     string
	Value      string
}

type InteractionResult struct {
	Interactions int64
	Filters      []string
}

// RecordInteraction counts a UI event. Values of the filter widget are collected into the
// session's filter set.
func (s *Service) RecordInteraction(in InteractionInput) (InteractionResult, error) {
	if in.SessionID == "" {
		return InteractionResult{}, ErrMissingField
	}

	s.mu.Lock()
	session, ok := s.sessions[in.SessionID]
	if !ok {
		s.mu.Unlock()
		return InteractionResult{}, fmt.Errorf("record interaction for %s: %w", in.SessionID, ErrNotFound)
	}

	now := s.clock.Now()
	session.Interactions++
	session.LastActivity = now
	if in.WidgetName == FilterWidget && in.Value != "" {
		session.AddFilter(in.Value)
	}
	s.totals.TotalInteractions++
	s.lastUpdated = now

	result := InteractionResult{
		Interactions: session.Interactions,
		Filters:      slices.Clone(session.Filters),
	}
	event := s.eventLocked(model.EventInteractionRecorded, in.SessionID, now, map[string]any{
		"widgetName": in.WidgetName,
		"action":     in.Action,
		"value":      in.Value,
	})
	s.mu.Unlock()

	s.publish(event)
	return result, nil
}

// Session returns a copy of a session record.
func (s *Service) Session(sessionID string) (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return model.Session{}, false
	}
	cp := *session
	cp.Filters = slices.Clone(session.Filters)
	return cp, true
}

// eventLocked builds an event from the current totals. Callers hold s.mu.
func (s *Service) eventLocked(typ model.EventType, sessionID string, now time.Time, detail map[string]any) model.Event {
	return model.Event{
		Type:      typ,
		SessionID: sessionID,
		Detail:    detail,
		Totals:    s.totals,
		Timestamp: now,
	}
}

func (s *Service) publish(event model.Event) {
	for _, sink := range s.sinks {
		sink.Publish(event)
	}
}

func roundSeconds(d time.Duration) int64 {
	return int64(math.Round(d.Seconds()))
}
