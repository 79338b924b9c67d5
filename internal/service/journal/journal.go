package journal

import (
	"visionserver/internal/logger"
	"visionserver/internal/model"
	"visionserver/internal/repository"
)

// Journal records every telemetry event in the event repository, keeping at most limit rows.
type Journal struct {
	repo   repository.EventRepository
	limit  int
	logger *logger.Logger
}

func NewJournal(repo repository.EventRepository, limit int, logger *logger.Logger) *Journal {
	return &Journal{repo: repo, limit: limit, logger: logger}
}

// Publish stores the event. Failures are logged, never returned: the journal must not
// fail a telemetry call.
func (j *Journal) Publish(event model.Event) {
	if _, err := j.repo.Insert(&event); err != nil {
		j.logger.Error("Failed to journal %s for %s: %v", event.Type, event.SessionID, err)
		return
	}

	if j.limit > 0 {
		if err := j.repo.Prune(j.limit); err != nil {
			j.logger.Warning("Failed to prune journal: %v", err)
		}
	}
}

// Recent returns the newest events first.
func (j *Journal) Recent(limit int) ([]model.Event, error) {
	return j.repo.Recent(limit)
}

// Count returns the number of retained events.
func (j *Journal) Count() (int64, error) {
	return j.repo.Count()
}
