package dummydb

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/trackademic/trackademic/core/event"
)

type eventRepository struct {
	db *eventTable
}

var _ event.Repository = (*eventRepository)(nil)

func NewEventRepository(db *DB) event.Repository {
	return &eventRepository{db: db.event}
}

func (repo *eventRepository) CreateEvent(ctx context.Context, evt event.Event) (event.Event, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	evt.ID = uuid.New().String()
	repo.db.table[evt.ID] = &evt
	repo.db.order = append(repo.db.order, evt.ID)
	return evt, nil
}

func (repo *eventRepository) QueryEvents(ctx context.Context, userID string, from, to time.Time) ([]event.Event, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	evts := make([]event.Event, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		evt := repo.db.table[id]
		if evt.UserID != userID {
			continue
		}
		if !from.IsZero() && evt.Date.Before(from) {
			continue
		}
		if !to.IsZero() && evt.Date.After(to) {
			continue
		}
		evts = append(evts, *evt)
	}
	sort.SliceStable(evts, func(i, j int) bool { return evts[i].Date.Before(evts[j].Date) })
	return evts, nil
}

func (repo *eventRepository) DeleteEvent(ctx context.Context, id, userID string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	evt, ok := repo.db.table[id]
	if !ok || evt.UserID != userID {
		return event.ErrNotFound
	}
	delete(repo.db.table, id)
	repo.db.order = removeID(repo.db.order, id)
	return nil
}
