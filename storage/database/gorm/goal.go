package gormrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trackademic/trackademic/core/goal"
)

type goalRepo struct {
	db *gorm.DB
}

var _ goal.Repository = (*goalRepo)(nil)

func NewGoalRepository(db *gorm.DB) goal.Repository {
	return &goalRepo{db: db}
}

func (repo *goalRepo) CreateGoal(ctx context.Context, gl goal.Goal) (goal.Goal, error) {
	row := mapGoal(gl)
	row.ID = uuid.New().String()
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return goal.Goal{}, errors.Wrap(err, "creating goal")
	}
	return row.unmap(), nil
}

func (repo *goalRepo) QueryGoals(ctx context.Context, userID string, filter goal.QueryFilter) ([]goal.Goal, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	switch filter.Status {
	case goal.StatusActive:
		query = query.Where("completed = ?", false)
	case goal.StatusCompleted:
		query = query.Where("completed = ?", true)
	}

	var rows []goalRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "retrieving goals")
	}

	goals := make([]goal.Goal, len(rows))
	for i, row := range rows {
		goals[i] = row.unmap()
	}
	return goals, nil
}

func (repo *goalRepo) GetGoal(ctx context.Context, id, userID string) (goal.Goal, error) {
	var row goalRow
	err := repo.db.WithContext(ctx).
		First(&row, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return goal.Goal{}, trapNotFoundErr(err, goal.ErrNotFound, "retrieving goal")
	}
	return row.unmap(), nil
}

func (repo *goalRepo) UpdateGoal(ctx context.Context, gl goal.Goal) (goal.Goal, error) {
	row := mapGoal(gl)
	res := repo.db.WithContext(ctx).Model(&goalRow{}).
		Where("id = ? AND user_id = ?", gl.ID, gl.UserID).
		Select("*").Omit("id", "user_id", "created_at").
		Updates(&row)
	if res.Error != nil {
		return goal.Goal{}, errors.Wrap(res.Error, "updating goal")
	}
	if res.RowsAffected == 0 {
		return goal.Goal{}, goal.ErrNotFound
	}
	return repo.GetGoal(ctx, gl.ID, gl.UserID)
}

func (repo *goalRepo) DeleteGoal(ctx context.Context, id, userID string) error {
	res := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&goalRow{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "deleting goal")
	}
	if res.RowsAffected == 0 {
		return goal.ErrNotFound
	}
	return nil
}
