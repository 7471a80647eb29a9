package gormrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trackademic/trackademic/core/course"
)

type courseRepo struct {
	db *gorm.DB
}

var _ course.Repository = (*courseRepo)(nil)

func NewCourseRepository(db *gorm.DB) course.Repository {
	return &courseRepo{db: db}
}

func (repo *courseRepo) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	row := mapCourse(crs)
	row.ID = uuid.New().String()
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return course.Course{}, errors.Wrap(err, "creating course")
	}
	return row.unmap(), nil
}

func (repo *courseRepo) QueryCourses(ctx context.Context, userID string) ([]course.Course, error) {
	var rows []courseRow
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "retrieving courses")
	}

	courses := make([]course.Course, len(rows))
	for i, row := range rows {
		courses[i] = row.unmap()
	}
	return courses, nil
}

func (repo *courseRepo) GetCourse(ctx context.Context, id, userID string) (course.Course, error) {
	var row courseRow
	err := repo.db.WithContext(ctx).
		First(&row, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return course.Course{}, trapNotFoundErr(err, course.ErrNotFound, "retrieving course")
	}
	return row.unmap(), nil
}
