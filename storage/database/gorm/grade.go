package gormrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trackademic/trackademic/core/grade"
)

type gradeRepo struct {
	db *gorm.DB
}

var _ grade.Repository = (*gradeRepo)(nil)

func NewGradeRepository(db *gorm.DB) grade.Repository {
	return &gradeRepo{db: db}
}

func (repo *gradeRepo) CreateGrade(ctx context.Context, grd grade.Grade) (grade.Grade, error) {
	row := mapGrade(grd)
	row.ID = uuid.New().String()
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return grade.Grade{}, errors.Wrap(err, "creating grade")
	}
	return row.unmap(), nil
}

func (repo *gradeRepo) QueryGrades(ctx context.Context, userID string, filter grade.QueryFilter) ([]grade.Grade, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if filter.CourseID != "" {
		query = query.Where("course_id = ?", filter.CourseID)
	}

	var rows []gradeRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "retrieving grades")
	}

	grds := make([]grade.Grade, len(rows))
	for i, row := range rows {
		grds[i] = row.unmap()
	}
	return grds, nil
}
