package gormrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trackademic/trackademic/core/assignment"
)

type assignmentRepo struct {
	db *gorm.DB
}

var _ assignment.Repository = (*assignmentRepo)(nil)

func NewAssignmentRepository(db *gorm.DB) assignment.Repository {
	return &assignmentRepo{db: db}
}

func (repo *assignmentRepo) CreateAssignment(ctx context.Context, asg assignment.Assignment) (assignment.Assignment, error) {
	row := mapAssignment(asg)
	row.ID = uuid.New().String()
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "creating assignment")
	}
	return row.unmap(), nil
}

func (repo *assignmentRepo) QueryAssignments(ctx context.Context, userID string, filter assignment.QueryFilter) ([]assignment.Assignment, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date ASC")
	switch filter.Status {
	case assignment.StatusPending:
		query = query.Where("completed = ?", false)
	case assignment.StatusCompleted:
		query = query.Where("completed = ?", true)
	}
	if filter.CourseID != "" {
		query = query.Where("course_id = ?", filter.CourseID)
	}

	var rows []assignmentRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "retrieving assignments")
	}

	asgs := make([]assignment.Assignment, len(rows))
	for i, row := range rows {
		asgs[i] = row.unmap()
	}
	return asgs, nil
}

func (repo *assignmentRepo) GetAssignment(ctx context.Context, id, userID string) (assignment.Assignment, error) {
	var row assignmentRow
	err := repo.db.WithContext(ctx).
		First(&row, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return assignment.Assignment{}, trapNotFoundErr(err, assignment.ErrNotFound, "retrieving assignment")
	}
	return row.unmap(), nil
}

func (repo *assignmentRepo) UpdateAssignment(ctx context.Context, asg assignment.Assignment) (assignment.Assignment, error) {
	row := mapAssignment(asg)
	res := repo.db.WithContext(ctx).Model(&assignmentRow{}).
		Where("id = ? AND user_id = ?", asg.ID, asg.UserID).
		Select("*").Omit("id", "user_id", "created_at").
		Updates(&row)
	if res.Error != nil {
		return assignment.Assignment{}, errors.Wrap(res.Error, "updating assignment")
	}
	if res.RowsAffected == 0 {
		return assignment.Assignment{}, assignment.ErrNotFound
	}
	return repo.GetAssignment(ctx, asg.ID, asg.UserID)
}

func (repo *assignmentRepo) DeleteAssignment(ctx context.Context, id, userID string) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&assignmentRow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return assignment.ErrNotFound
		}
		return tx.Where("assignment_id = ? AND user_id = ?", id, userID).Delete(&gradeRow{}).Error
	})
	if err != nil && !errors.Is(err, assignment.ErrNotFound) {
		return errors.Wrap(err, "deleting assignment")
	}
	return err
}
