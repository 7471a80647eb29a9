package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/trackademic/trackademic/core/goal"
)

type goalRepository struct {
	db *goalTable
}

var _ goal.Repository = (*goalRepository)(nil)

func NewGoalRepository(db *DB) goal.Repository {
	return &goalRepository{db: db.goal}
}

func (repo *goalRepository) CreateGoal(ctx context.Context, gl goal.Goal) (goal.Goal, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	gl.ID = uuid.New().String()
	repo.db.table[gl.ID] = &gl
	repo.db.order = append(repo.db.order, gl.ID)
	return gl, nil
}

func (repo *goalRepository) QueryGoals(ctx context.Context, userID string, filter goal.QueryFilter) ([]goal.Goal, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	goals := make([]goal.Goal, 0, len(repo.db.order))
	for i := len(repo.db.order) - 1; i >= 0; i-- {
		gl := repo.db.table[repo.db.order[i]]
		if gl.UserID != userID {
			continue
		}
		if filter.Status == goal.StatusActive && gl.Completed {
			continue
		}
		if filter.Status == goal.StatusCompleted && !gl.Completed {
			continue
		}
		goals = append(goals, *gl)
	}
	return goals, nil
}

func (repo *goalRepository) GetGoal(ctx context.Context, id, userID string) (goal.Goal, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if gl, ok := repo.db.table[id]; ok && gl.UserID == userID {
		return *gl, nil
	}
	return goal.Goal{}, goal.ErrNotFound
}

func (repo *goalRepository) UpdateGoal(ctx context.Context, gl goal.Goal) (goal.Goal, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if prev, ok := repo.db.table[gl.ID]; !ok || prev.UserID != gl.UserID {
		return goal.Goal{}, goal.ErrNotFound
	}
	repo.db.table[gl.ID] = &gl
	return gl, nil
}

func (repo *goalRepository) DeleteGoal(ctx context.Context, id, userID string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	gl, ok := repo.db.table[id]
	if !ok || gl.UserID != userID {
		return goal.ErrNotFound
	}
	delete(repo.db.table, id)
	repo.db.order = removeID(repo.db.order, id)
	return nil
}
