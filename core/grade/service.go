package grade

import (
	"context"
	"time"

	"github.com/trackademic/trackademic/core/assignment"
	"github.com/trackademic/trackademic/core/metrics"
)

type (
	Repository interface {
		CreateGrade(ctx context.Context, grd Grade) (Grade, error)
		// QueryGrades returns the user's grades, newest first.
		QueryGrades(ctx context.Context, userID string, filter QueryFilter) ([]Grade, error)
	}

	Service struct {
		repo        Repository
		assignments assignment.Repository
	}
)

func NewService(repo Repository, assignments assignment.Repository) *Service {
	return &Service{repo: repo, assignments: assignments}
}

// Create records a grade for one of the caller's assignments.
// The assignment must belong to the caller and to the given course;
// any mismatch surfaces as assignment.ErrNotFound.
func (svc *Service) Create(ctx context.Context, userID string, ng NewGrade) (Grade, error) {
	asg, err := svc.assignments.GetAssignment(ctx, ng.AssignmentID, userID)
	if err != nil {
		return Grade{}, err
	}
	if asg.CourseID != ng.CourseID {
		return Grade{}, assignment.ErrNotFound
	}

	pct := metrics.Percentage(*ng.Score, ng.Points)
	letter := ng.LetterGrade
	if letter == "" {
		letter = metrics.LetterGrade(pct)
	}

	now := time.Now().UTC()
	grd := Grade{
		UserID:       userID,
		CourseID:     ng.CourseID,
		AssignmentID: ng.AssignmentID,
		Score:        *ng.Score,
		Points:       ng.Points,
		Percentage:   pct,
		LetterGrade:  letter,
		Feedback:     ng.Feedback,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return svc.repo.CreateGrade(ctx, grd)
}

func (svc *Service) Query(ctx context.Context, userID string, filter QueryFilter) ([]Grade, error) {
	return svc.repo.QueryGrades(ctx, userID, filter)
}

// Percentages projects the user's grades to their percentage values,
// ready for aggregation.
func (svc *Service) Percentages(ctx context.Context, userID string) ([]float64, error) {
	grades, err := svc.repo.QueryGrades(ctx, userID, QueryFilter{})
	if err != nil {
		return nil, err
	}
	pcts := make([]float64, 0, len(grades))
	for _, grd := range grades {
		pcts = append(pcts, grd.Percentage)
	}
	return pcts, nil
}
