package course

import (
	"context"
	"time"
)

type (
	Repository interface {
		CreateCourse(ctx context.Context, crs Course) (Course, error)
		// QueryCourses returns the user's courses, newest first.
		QueryCourses(ctx context.Context, userID string) ([]Course, error)
		// GetCourse scopes the lookup by owner; a foreign course is ErrNotFound.
		GetCourse(ctx context.Context, id, userID string) (Course, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, userID string, nc NewCourse) (Course, error) {
	now := time.Now().UTC()
	crs := Course{
		UserID:     userID,
		Name:       nc.Name,
		Code:       nc.Code,
		Credits:    nc.Credits,
		Color:      nc.Color,
		Semester:   nc.Semester,
		Year:       nc.Year,
		Instructor: nc.Instructor,
		Schedule:   nc.Schedule,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return svc.repo.CreateCourse(ctx, crs)
}

func (svc *Service) Query(ctx context.Context, userID string) ([]Course, error) {
	return svc.repo.QueryCourses(ctx, userID)
}

func (svc *Service) Get(ctx context.Context, id, userID string) (Course, error) {
	return svc.repo.GetCourse(ctx, id, userID)
}
