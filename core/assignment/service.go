package assignment

import (
	"context"
	"time"

	"github.com/trackademic/trackademic/core/course"
)

type (
	Repository interface {
		CreateAssignment(ctx context.Context, asg Assignment) (Assignment, error)
		// QueryAssignments returns the user's assignments matching the filter,
		// ordered by due date ascending.
		QueryAssignments(ctx context.Context, userID string, filter QueryFilter) ([]Assignment, error)
		GetAssignment(ctx context.Context, id, userID string) (Assignment, error)
		UpdateAssignment(ctx context.Context, asg Assignment) (Assignment, error)
		// DeleteAssignment removes the assignment and its grade, if any.
		DeleteAssignment(ctx context.Context, id, userID string) error
	}

	Service struct {
		repo    Repository
		courses course.Repository
	}
)

func NewService(repo Repository, courses course.Repository) *Service {
	return &Service{repo: repo, courses: courses}
}

// Create persists a new assignment after checking that the target
// course belongs to the caller.
func (svc *Service) Create(ctx context.Context, userID string, na NewAssignment) (Assignment, error) {
	if _, err := svc.courses.GetCourse(ctx, na.CourseID, userID); err != nil {
		return Assignment{}, err
	}

	now := time.Now().UTC()
	asg := Assignment{
		UserID:      userID,
		CourseID:    na.CourseID,
		Title:       na.Title,
		Description: na.Description,
		Type:        na.Type,
		DueDate:     na.DueDate,
		Points:      na.Points,
		Priority:    na.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateAssignment(ctx, asg)
}

func (svc *Service) Query(ctx context.Context, userID string, filter QueryFilter) ([]Assignment, error) {
	filter.Clean()
	return svc.repo.QueryAssignments(ctx, userID, filter)
}

func (svc *Service) Get(ctx context.Context, id, userID string) (Assignment, error) {
	return svc.repo.GetAssignment(ctx, id, userID)
}

// Update applies a partial update to the user's assignment.
func (svc *Service) Update(ctx context.Context, userID, id string, ua UpdateAssignment) (Assignment, error) {
	asg, err := svc.repo.GetAssignment(ctx, id, userID)
	if err != nil {
		return Assignment{}, err
	}

	if ua.Title != "" {
		asg.Title = ua.Title
	}
	if ua.Description != nil {
		asg.Description = *ua.Description
	}
	if ua.DueDate != nil {
		asg.DueDate = *ua.DueDate
	}
	if ua.Points != nil {
		asg.Points = *ua.Points
	}
	if ua.Priority != "" {
		asg.Priority = ua.Priority
	}
	if ua.Completed != nil {
		asg.Completed = *ua.Completed
	}
	asg.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateAssignment(ctx, asg)
}

func (svc *Service) Delete(ctx context.Context, userID, id string) error {
	return svc.repo.DeleteAssignment(ctx, id, userID)
}
