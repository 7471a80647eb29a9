package event

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trackademic/trackademic/core"
)

var ErrNotFound = errors.New("event not found")

// Event types
const (
	TypeEvent    = "event"
	TypeStudy    = "study"
	TypeMeeting  = "meeting"
	TypeExam     = "exam"
	TypeDeadline = "deadline"
)

const defaultDuration = 60

// Event is a calendar entry, shown alongside assignment due dates.
type Event struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time,omitempty"`
	Duration    int       `json:"duration"` // minutes
	CreatedAt   time.Time `json:"createdAt"` // UTC
	UpdatedAt   time.Time `json:"updatedAt"` // UTC
}

// NewEvent contains information needed to create a new Event.
type NewEvent struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Type        string    `json:"type" validate:"required,oneof=event study meeting exam deadline"`
	Date        time.Time `json:"date" validate:"required"`
	Time        string    `json:"time"`
	Duration    int       `json:"duration" validate:"omitempty,min=15,max=480"`
}

func (ne *NewEvent) Validate(validate *validator.Validate) error {
	ne.Title = core.CleanString(ne.Title)
	ne.Description = core.CleanString(ne.Description)
	if ne.Duration == 0 {
		ne.Duration = defaultDuration
	}
	return validate.Struct(ne)
}

// QueryFilter narrows an event listing to one displayed month.
// Month is 1-indexed; a half-specified filter is ignored.
type QueryFilter struct {
	Month int `query:"month" validate:"omitempty,min=1,max=12"`
	Year  int `query:"year"`
}

func (qf QueryFilter) HasMonth() bool {
	return qf.Month != 0 && qf.Year != 0
}

func (qf QueryFilter) Validate(validate *validator.Validate) error {
	return validate.Struct(qf)
}
