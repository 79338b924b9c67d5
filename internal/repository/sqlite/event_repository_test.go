package sqlite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"visionserver/internal/model"
)

// ========================================
// Test Setup Helpers
// ========================================

func setupTestDB(t *testing.T) (*DB, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "journal_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tempDir, "test.db")
	db, err := New(dbPath)
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("Failed to create test database: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tempDir)
	}

	return db, cleanup
}

func newEvent(typ model.EventType, sessionID string) *model.Event {
	return &model.Event{
		Type:      typ,
		SessionID: sessionID,
		Detail:    map[string]any{"faceCount": 2, "detectionType": "test"},
		Totals:    model.Totals{TotalSessions: 1, TotalDetections: 7, TotalFaceDetections: 2},
		Timestamp: time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC),
	}
}

// ========================================
// Database Tests
// ========================================

func TestDatabase_FileConnection(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	if err := db.Conn().Ping(); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}

func TestDatabase_InMemory(t *testing.T) {
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	defer db.Close()

	repo := NewEventRepository(db)
	if _, err := repo.Insert(newEvent(model.EventSessionStarted, "s1")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 event, got %d", count)
	}
}

func TestWithDefaults(t *testing.T) {
	tests := []struct {
		dsn      string
		expected string
	}{
		{":memory:", ":memory:?_busy_timeout=5000"},
		{"file:journal?mode=memory&cache=shared", "file:journal?mode=memory&cache=shared&_busy_timeout=5000"},
		{"data/journal.db", "data/journal.db?_journal_mode=WAL&_busy_timeout=5000"},
	}

	for _, tt := range tests {
		if got := withDefaults(tt.dsn); got != tt.expected {
			t.Errorf("withDefaults(%q) = %q, expected %q", tt.dsn, got, tt.expected)
		}
	}
}

// ========================================
// Event Repository Tests
// ========================================

func TestEventRepository_InsertAndRecent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewEventRepository(db)

	first := newEvent(model.EventSessionStarted, "s1")
	id, err := repo.Insert(first)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if id <= 0 || first.ID != id {
		t.Errorf("Expected positive ID set on event, got %d (event %d)", id, first.ID)
	}

	if _, err := repo.Insert(newEvent(model.EventDetectionRecorded, "s1")); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	events, err := repo.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}

	latest := events[0]
	if latest.Type != model.EventDetectionRecorded {
		t.Errorf("Expected newest event first, got %s", latest.Type)
	}
	if latest.SessionID != "s1" {
		t.Errorf("Expected session s1, got %s", latest.SessionID)
	}
	if latest.Totals.TotalDetections != 7 {
		t.Errorf("Expected totals to round-trip, got %+v", latest.Totals)
	}
	if latest.Detail["detectionType"] != "test" {
		t.Errorf("Expected detail to round-trip, got %v", latest.Detail)
	}
	if !latest.Timestamp.Equal(time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)) {
		t.Errorf("Unexpected timestamp %v", latest.Timestamp)
	}
}

func TestEventRepository_RecentEmpty(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	events, err := NewEventRepository(db).Recent(5)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if events == nil || len(events) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", events)
	}
}

func TestEventRepository_EventWithoutDetail(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewEventRepository(db)
	event := newEvent(model.EventSessionEnded, "s2")
	event.Detail = nil
	if _, err := repo.Insert(event); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	events, err := repo.Recent(1)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(events) != 1 || events[0].Detail != nil {
		t.Errorf("Expected one event without detail, got %+v", events)
	}
}

func TestEventRepository_Prune(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewEventRepository(db)
	for i := 0; i < 6; i++ {
		if _, err := repo.Insert(newEvent(model.EventInteractionRecorded, "s1")); err != nil {
			t.Fatalf("Insert %d failed: %v", i, err)
		}
	}

	if err := repo.Prune(2); err != nil {
		t.Fatalf("Prune failed: %v", err)
	}

	count, _ := repo.Count()
	if count != 2 {
		t.Errorf("Expected 2 events after prune, got %d", count)
	}

	events, _ := repo.Recent(10)
	if len(events) != 2 || events[0].ID != 6 || events[1].ID != 5 {
		t.Errorf("Expected newest events 6 and 5 to survive, got %+v", events)
	}
}

func TestEventRepository_CountByType(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewEventRepository(db)
	repo.Insert(newEvent(model.EventSessionStarted, "s1"))
	repo.Insert(newEvent(model.EventDetectionRecorded, "s1"))
	repo.Insert(newEvent(model.EventDetectionRecorded, "s1"))

	counts, err := repo.CountByType()
	if err != nil {
		t.Fatalf("CountByType failed: %v", err)
	}
	if counts[model.EventSessionStarted] != 1 || counts[model.EventDetectionRecorded] != 2 {
		t.Errorf("Unexpected counts: %v", counts)
	}
	if _, ok := counts[model.EventSessionEnded]; ok {
		t.Errorf("Expected no entry for types without rows")
	}
}

func TestEventRepository_ConcurrentAccess(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewEventRepository(db)

	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func(idx int) {
			_, err := repo.Insert(newEvent(model.EventDetectionRecorded, "concurrent_"+string(rune('a'+idx))))
			if err != nil {
				t.Errorf("Concurrent insert %d failed: %v", idx, err)
			}
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	count, _ := repo.Count()
	if count != 10 {
		t.Errorf("Expected 10 events, got %d", count)
	}
}
