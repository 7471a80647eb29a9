package event

import (
	"context"
	"time"

	"github.com/trackademic/trackademic/core/metrics"
)

type (
	Repository interface {
		CreateEvent(ctx context.Context, evt Event) (Event, error)
		// QueryEvents returns the user's events with a date in [from, to],
		// ordered by date ascending. Zero bounds mean unbounded.
		QueryEvents(ctx context.Context, userID string, from, to time.Time) ([]Event, error)
		DeleteEvent(ctx context.Context, id, userID string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, userID string, ne NewEvent) (Event, error) {
	now := time.Now().UTC()
	evt := Event{
		UserID:      userID,
		Title:       ne.Title,
		Description: ne.Description,
		Type:        ne.Type,
		Date:        ne.Date,
		Time:        ne.Time,
		Duration:    ne.Duration,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateEvent(ctx, evt)
}

// Query lists the user's events, bucketed to the filter's month when both
// month and year are provided.
func (svc *Service) Query(ctx context.Context, userID string, filter QueryFilter) ([]Event, error) {
	var from, to time.Time
	if filter.HasMonth() {
		from, to = metrics.MonthRange(filter.Year, filter.Month)
	}
	return svc.repo.QueryEvents(ctx, userID, from, to)
}

func (svc *Service) Delete(ctx context.Context, userID, id string) error {
	return svc.repo.DeleteEvent(ctx, id, userID)
}
