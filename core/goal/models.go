package goal

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trackademic/trackademic/core"
)

var ErrNotFound = errors.New("goal not found")

// Categories
const (
	CategoryAcademic = "academic"
	CategoryCareer   = "career"
	CategoryPersonal = "personal"
)

// Status filters
const (
	StatusAll       = "all"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Goal is a personal objective tracked independently of courses.
type Goal struct {
	ID          string     `json:"id"`
	UserID      string     `json:"-"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	Progress    int        `json:"progress"` // 0-100
	CreatedAt   time.Time  `json:"createdAt"` // UTC
	UpdatedAt   time.Time  `json:"updatedAt"` // UTC
}

// Complete returns the goal marked done. Completion always forces
// progress to 100; this is the one place that coupling lives.
func (g Goal) Complete() Goal {
	g.Completed = true
	g.Progress = 100
	return g
}

// NewGoal contains information needed to create a new Goal.
type NewGoal struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Category    string     `json:"category" validate:"required,oneof=academic career personal"`
	TargetDate  *time.Time `json:"targetDate"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Progress    int        `json:"progress" validate:"gte=0,lte=100"`
}

func (ng *NewGoal) Validate(validate *validator.Validate) error {
	ng.Title = core.CleanString(ng.Title)
	ng.Description = core.CleanString(ng.Description)
	if ng.Priority == "" {
		ng.Priority = "medium"
	}
	return validate.Struct(ng)
}

// UpdateGoal defines the partial update surface; nil/zero fields are left untouched.
// Completed toggles the flag only and never touches progress; forcing
// progress to 100 is reserved to the complete operation.
type UpdateGoal struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Category    string     `json:"category" validate:"omitempty,oneof=academic career personal"`
	TargetDate  *time.Time `json:"targetDate"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Progress    *int       `json:"progress" validate:"omitempty,gte=0,lte=100"`
	Completed   *bool      `json:"completed"`
}

func (ug *UpdateGoal) Validate(validate *validator.Validate) error {
	ug.Title = core.CleanString(ug.Title)
	return validate.Struct(ug)
}

// QueryFilter narrows a goal listing.
type QueryFilter struct {
	Status string `query:"filter"`
}

func (qf *QueryFilter) Clean() {
	qf.Status = core.CleanString(qf.Status, true /* lower */)
	if qf.Status == "" {
		qf.Status = StatusAll
	}
}
