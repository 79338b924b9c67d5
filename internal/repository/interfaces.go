package repository

import "visionserver/internal/model"

// EventRepository defines the interface for the activity journal.
type EventRepository interface {
	// Create operations
	Insert(event *model.Event) (int64, error)

	// Read operations
	Recent(limit int) ([]model.Event, error)
	Count() (int64, error)

	// Delete operations
	Prune(keep int) error
}
