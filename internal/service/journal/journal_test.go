package journal

import (
	"errors"
	"testing"
	"time"
	"visionserver/internal/logger"
	"visionserver/internal/model"
	"visionserver/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRepo struct {
	inserts int
}

func (f *failingRepo) Insert(*model.Event) (int64, error) {
	f.inserts++
	return 0, errors.New("disk full")
}
func (f *failingRepo) Recent(int) ([]model.Event, error) { return nil, nil }
func (f *failingRepo) Count() (int64, error)             { return 0, nil }
func (f *failingRepo) Prune(int) error                   { return errors.New("should not be called") }

func newMemoryJournal(t *testing.T, limit int) *Journal {
	t.Helper()
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewJournal(sqlite.NewEventRepository(db), limit, logger.NewNop())
}

func TestJournal_PublishStoresEvents(t *testing.T) {
	j := newMemoryJournal(t, 0)

	j.Publish(model.Event{Type: model.EventSessionStarted, SessionID: "s1", Timestamp: time.Now()})
	j.Publish(model.Event{Type: model.EventSessionEnded, SessionID: "s1", Timestamp: time.Now()})

	count, err := j.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	events, err := j.Recent(10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, model.EventSessionEnded, events[0].Type)
}

func TestJournal_PrunesToLimit(t *testing.T) {
	j := newMemoryJournal(t, 3)

	for i := 0; i < 10; i++ {
		j.Publish(model.Event{Type: model.EventDetectionRecorded, SessionID: "s1", Timestamp: time.Now()})
	}

	count, err := j.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	events, err := j.Recent(10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, int64(10), events[0].ID)
	assert.Equal(t, int64(8), events[2].ID)
}

func TestJournal_InsertFailureIsSwallowed(t *testing.T) {
	repo := &failingRepo{}
	j := NewJournal(repo, 5, logger.NewNop())

	assert.NotPanics(t, func() {
		j.Publish(model.Event{Type: model.EventSessionStarted, SessionID: "s1"})
	})
	assert.Equal(t, 1, repo.inserts)
}
