package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/trackademic/trackademic/core/course"
)

type courseRepository struct {
	db *courseTable
}

var _ course.Repository = (*courseRepository)(nil)

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db.course}
}

func (repo *courseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	crs.ID = uuid.New().String()
	repo.db.table[crs.ID] = &crs
	repo.db.order = append(repo.db.order, crs.ID)
	return crs, nil
}

func (repo *courseRepository) QueryCourses(ctx context.Context, userID string) ([]course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	courses := make([]course.Course, 0, len(repo.db.order))
	for i := len(repo.db.order) - 1; i >= 0; i-- {
		crs := repo.db.table[repo.db.order[i]]
		if crs.UserID == userID {
			courses = append(courses, *crs)
		}
	}
	return courses, nil
}

func (repo *courseRepository) GetCourse(ctx context.Context, id, userID string) (course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if crs, ok := repo.db.table[id]; ok && crs.UserID == userID {
		return *crs, nil
	}
	return course.Course{}, course.ErrNotFound
}
