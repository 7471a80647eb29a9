package assignment

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trackademic/trackademic/core"
)

var ErrNotFound = errors.New("assignment not found")

// Assignment types
const (
	TypeAssignment = "assignment"
	TypeQuiz       = "quiz"
	TypeExam       = "exam"
	TypeProject    = "project"
)

// Priorities (shared with goals)
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Status filters
const (
	StatusAll       = "all"
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

const defaultPoints = 100

// Assignment is a graded piece of work due in one of the user's courses.
type Assignment struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	CourseID    string    `json:"courseId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	DueDate     time.Time `json:"dueDate"`
	Points      float64   `json:"points"`
	Completed   bool      `json:"completed"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"` // UTC
	UpdatedAt   time.Time `json:"updatedAt"` // UTC
}

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Type        string    `json:"type" validate:"required,oneof=assignment quiz exam project"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
	Points      float64   `json:"points" validate:"omitempty,min=1"`
	Priority    string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	CourseID    string    `json:"courseId" validate:"required"`
}

func (na *NewAssignment) Validate(validate *validator.Validate) error {
	na.Title = core.CleanString(na.Title)
	na.Description = core.CleanString(na.Description)
	if na.Points == 0 {
		na.Points = defaultPoints
	}
	if na.Priority == "" {
		na.Priority = PriorityMedium
	}
	return validate.Struct(na)
}

// UpdateAssignment defines the partial update surface; nil/zero fields are left untouched.
type UpdateAssignment struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Points      *float64   `json:"points" validate:"omitempty,min=1"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Completed   *bool      `json:"completed"`
}

func (ua *UpdateAssignment) Validate(validate *validator.Validate) error {
	ua.Title = core.CleanString(ua.Title)
	return validate.Struct(ua)
}

// QueryFilter narrows an assignment listing.
type QueryFilter struct {
	Status   string `query:"filter"`
	CourseID string `query:"courseId"`
}

func (qf *QueryFilter) Clean() {
	qf.Status = core.CleanString(qf.Status, true /* lower */)
	if qf.Status == "" {
		qf.Status = StatusAll
	}
}
