package dummydb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/trackademic/trackademic/core/assignment"
)

type assignmentRepository struct {
	db     *assignmentTable
	grades *gradeTable
}

var _ assignment.Repository = (*assignmentRepository)(nil)

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{db: db.assignment, grades: db.grade}
}

func (repo *assignmentRepository) CreateAssignment(ctx context.Context, asg assignment.Assignment) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	asg.ID = uuid.New().String()
	repo.db.table[asg.ID] = &asg
	repo.db.order = append(repo.db.order, asg.ID)
	return asg, nil
}

func (repo *assignmentRepository) QueryAssignments(ctx context.Context, userID string, filter assignment.QueryFilter) ([]assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	asgs := make([]assignment.Assignment, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		asg := repo.db.table[id]
		if asg.UserID != userID {
			continue
		}
		if filter.Status == assignment.StatusPending && asg.Completed {
			continue
		}
		if filter.Status == assignment.StatusCompleted && !asg.Completed {
			continue
		}
		if filter.CourseID != "" && asg.CourseID != filter.CourseID {
			continue
		}
		asgs = append(asgs, *asg)
	}
	sort.SliceStable(asgs, func(i, j int) bool { return asgs[i].DueDate.Before(asgs[j].DueDate) })
	return asgs, nil
}

func (repo *assignmentRepository) GetAssignment(ctx context.Context, id, userID string) (assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if asg, ok := repo.db.table[id]; ok && asg.UserID == userID {
		return *asg, nil
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}

func (repo *assignmentRepository) UpdateAssignment(ctx context.Context, asg assignment.Assignment) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if prev, ok := repo.db.table[asg.ID]; !ok || prev.UserID != asg.UserID {
		return assignment.Assignment{}, assignment.ErrNotFound
	}
	repo.db.table[asg.ID] = &asg
	return asg, nil
}

func (repo *assignmentRepository) DeleteAssignment(ctx context.Context, id, userID string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	asg, ok := repo.db.table[id]
	if !ok || asg.UserID != userID {
		return assignment.ErrNotFound
	}
	delete(repo.db.table, id)
	repo.db.order = removeID(repo.db.order, id)

	repo.grades.Lock()
	defer repo.grades.Unlock()
	for gid, grd := range repo.grades.table {
		if grd.AssignmentID == id && grd.UserID == userID {
			delete(repo.grades.table, gid)
			repo.grades.order = removeID(repo.grades.order, gid)
		}
	}
	return nil
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
