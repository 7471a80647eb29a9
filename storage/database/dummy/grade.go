package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/trackademic/trackademic/core/grade"
)

type gradeRepository struct {
	db *gradeTable
}

var _ grade.Repository = (*gradeRepository)(nil)

func NewGradeRepository(db *DB) grade.Repository {
	return &gradeRepository{db: db.grade}
}

func (repo *gradeRepository) CreateGrade(ctx context.Context, grd grade.Grade) (grade.Grade, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	grd.ID = uuid.New().String()
	repo.db.table[grd.ID] = &grd
	repo.db.order = append(repo.db.order, grd.ID)
	return grd, nil
}

func (repo *gradeRepository) QueryGrades(ctx context.Context, userID string, filter grade.QueryFilter) ([]grade.Grade, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	grds := make([]grade.Grade, 0, len(repo.db.order))
	for i := len(repo.db.order) - 1; i >= 0; i-- {
		grd := repo.db.table[repo.db.order[i]]
		if grd.UserID != userID {
			continue
		}
		if filter.CourseID != "" && grd.CourseID != filter.CourseID {
			continue
		}
		grds = append(grds, *grd)
	}
	return grds, nil
}
