package grade

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trackademic/trackademic/core"
)

var ErrNotFound = errors.New("grade not found")

const defaultPoints = 100

// Grade records the score a user received on one assignment.
// Percentage is always derived from Score/Points server-side.
type Grade struct {
	ID           string    `json:"id"`
	UserID       string    `json:"-"`
	CourseID     string    `json:"courseId"`
	AssignmentID string    `json:"assignmentId"`
	Score        float64   `json:"score"`
	Points       float64   `json:"points"`
	Percentage   float64   `json:"percentage"`
	LetterGrade  string    `json:"letterGrade,omitempty"`
	Feedback     string    `json:"feedback,omitempty"`
	CreatedAt    time.Time `json:"createdAt"` // UTC
	UpdatedAt    time.Time `json:"updatedAt"` // UTC
}

// NewGrade contains information needed to record a new Grade.
// Percentage is never accepted from the caller.
type NewGrade struct {
	Score        *float64 `json:"score" validate:"required,gte=0"`
	Points       float64  `json:"points" validate:"omitempty,min=1"`
	LetterGrade  string   `json:"letterGrade" validate:"omitempty,oneof=A B C D F"`
	Feedback     string   `json:"feedback"`
	AssignmentID string   `json:"assignmentId" validate:"required"`
	CourseID     string   `json:"courseId" validate:"required"`
}

func (ng *NewGrade) Validate(validate *validator.Validate) error {
	ng.Feedback = core.CleanString(ng.Feedback)
	if ng.Points == 0 {
		ng.Points = defaultPoints
	}
	return validate.Struct(ng)
}

// QueryFilter narrows a grade listing.
type QueryFilter struct {
	CourseID string `query:"courseId"`
}
