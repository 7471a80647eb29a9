package goal

import (
	"context"
	"time"
)

type (
	Repository interface {
		CreateGoal(ctx context.Context, gl Goal) (Goal, error)
		// QueryGoals returns the user's goals matching the filter, newest first.
		QueryGoals(ctx context.Context, userID string, filter QueryFilter) ([]Goal, error)
		GetGoal(ctx context.Context, id, userID string) (Goal, error)
		UpdateGoal(ctx context.Context, gl Goal) (Goal, error)
		DeleteGoal(ctx context.Context, id, userID string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, userID string, ng NewGoal) (Goal, error) {
	now := time.Now().UTC()
	gl := Goal{
		UserID:      userID,
		Title:       ng.Title,
		Description: ng.Description,
		Category:    ng.Category,
		TargetDate:  ng.TargetDate,
		Priority:    ng.Priority,
		Progress:    ng.Progress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateGoal(ctx, gl)
}

func (svc *Service) Query(ctx context.Context, userID string, filter QueryFilter) ([]Goal, error) {
	filter.Clean()
	return svc.repo.QueryGoals(ctx, userID, filter)
}

// Update applies a partial update to the user's goal.
func (svc *Service) Update(ctx context.Context, userID, id string, ug UpdateGoal) (Goal, error) {
	gl, err := svc.repo.GetGoal(ctx, id, userID)
	if err != nil {
		return Goal{}, err
	}

	if ug.Title != "" {
		gl.Title = ug.Title
	}
	if ug.Description != nil {
		gl.Description = *ug.Description
	}
	if ug.Category != "" {
		gl.Category = ug.Category
	}
	if ug.TargetDate != nil {
		gl.TargetDate = ug.TargetDate
	}
	if ug.Priority != "" {
		gl.Priority = ug.Priority
	}
	if ug.Progress != nil {
		gl.Progress = *ug.Progress
	}
	if ug.Completed != nil {
		gl.Completed = *ug.Completed
	}
	gl.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateGoal(ctx, gl)
}

// Complete marks the user's goal done, forcing its progress to 100.
func (svc *Service) Complete(ctx context.Context, userID, id string) (Goal, error) {
	gl, err := svc.repo.GetGoal(ctx, id, userID)
	if err != nil {
		return Goal{}, err
	}
	gl = gl.Complete()
	gl.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateGoal(ctx, gl)
}

func (svc *Service) Delete(ctx context.Context, userID, id string) error {
	return svc.repo.DeleteGoal(ctx, id, userID)
}
