package gormrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trackademic/trackademic/core/event"
)

type eventRepo struct {
	db *gorm.DB
}

var _ event.Repository = (*eventRepo)(nil)

func NewEventRepository(db *gorm.DB) event.Repository {
	return &eventRepo{db: db}
}

func (repo *eventRepo) CreateEvent(ctx context.Context, evt event.Event) (event.Event, error) {
	row := mapEvent(evt)
	row.ID = uuid.New().String()
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return event.Event{}, errors.Wrap(err, "creating event")
	}
	return row.unmap(), nil
}

func (repo *eventRepo) QueryEvents(ctx context.Context, userID string, from, to time.Time) ([]event.Event, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC")
	if !from.IsZero() {
		query = query.Where("date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("date <= ?", to)
	}

	var rows []eventRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "retrieving events")
	}

	evts := make([]event.Event, len(rows))
	for i, row := range rows {
		evts[i] = row.unmap()
	}
	return evts, nil
}

func (repo *eventRepo) DeleteEvent(ctx context.Context, id, userID string) error {
	res := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&eventRow{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "deleting event")
	}
	if res.RowsAffected == 0 {
		return event.ErrNotFound
	}
	return nil
}
