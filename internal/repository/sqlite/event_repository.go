package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"visionserver/internal/model"
)

// EventRepository implements repository.EventRepository for SQLite.
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new SQLite event repository.
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// Insert adds a new event to the journal and sets its ID.
func (r *EventRepository) Insert(event *model.Event) (int64, error) {
	detail, err := marshalDetail(event.Detail)
	if err != nil {
		return 0, err
	}
	totals, err := json.Marshal(event.Totals)
	if err != nil {
		return 0, fmt.Errorf("failed to encode totals: %w", err)
	}

	r.db.Lock()
	defer r.db.Unlock()

	result, err := r.db.Conn().Exec(`
		INSERT INTO events (type, session_id, detail, totals, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, string(event.Type), event.SessionID, detail, string(totals), event.Timestamp.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}
	event.ID = id
	return id, nil
}

// Recent returns up to limit events, newest first.
func (r *EventRepository) Recent(limit int) ([]model.Event, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	rows, err := r.db.Conn().Query(`
		SELECT id, type, session_id, detail, totals, created_at
		FROM events ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		var (
			e         model.Event
			typ       string
			detail    sql.NullString
			totals    string
			createdAt time.Time
		)
		if err := rows.Scan(&e.ID, &typ, &e.SessionID, &detail, &totals, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Type = model.EventType(typ)
		e.Timestamp = createdAt
		if detail.Valid && detail.String != "" {
			if err := json.Unmarshal([]byte(detail.String), &e.Detail); err != nil {
				return nil, fmt.Errorf("failed to decode detail of event %d: %w", e.ID, err)
			}
		}
		if err := json.Unmarshal([]byte(totals), &e.Totals); err != nil {
			return nil, fmt.Errorf("failed to decode totals of event %d: %w", e.ID, err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// Count returns the number of journal rows.
func (r *EventRepository) Count() (int64, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	var count int64
	if err := r.db.Conn().QueryRow(`SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

// CountByType returns the number of journal rows per event type.
func (r *EventRepository) CountByType() (map[model.EventType]int64, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	rows, err := r.db.Conn().Query(`SELECT type, COUNT(*) FROM events GROUP BY type`)
	if err != nil {
		return nil, fmt.Errorf("failed to count events by type: %w", err)
	}
	defer rows.Close()

	counts := make(map[model.EventType]int64)
	for rows.Next() {
		var typ string
		var count int64
		if err := rows.Scan(&typ, &count); err != nil {
			return nil, fmt.Errorf("failed to scan event count: %w", err)
		}
		counts[model.EventType(typ)] = count
	}
	return counts, rows.Err()
}

// Prune deletes everything but the newest keep events.
func (r *EventRepository) Prune(keep int) error {
	r.db.Lock()
	defer r.db.Unlock()

	if _, err := r.db.Conn().Exec(`
		DELETE FROM events WHERE id <= (SELECT COALESCE(MAX(id), 0) FROM events) - ?
	`, keep); err != nil {
		return fmt.Errorf("failed to prune events: %w", err)
	}
	return nil
}

func marshalDetail(detail map[string]any) (sql.NullString, error) {
	if len(detail) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(detail)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to encode detail: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
