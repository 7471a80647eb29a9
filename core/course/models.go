package course

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trackademic/trackademic/core"
)

var ErrNotFound = errors.New("course not found")

const defaultColor = "#3B82F6"

// Course groups a user's assignments and grades for one class.
type Course struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	Credits    int       `json:"credits"`
	Color      string    `json:"color"`
	Semester   string    `json:"semester"`
	Year       string    `json:"year"`
	Instructor string    `json:"instructor,omitempty"`
	Schedule   string    `json:"schedule,omitempty"`
	Progress   float64   `json:"progress"` // derived at query time, never stored
	CreatedAt  time.Time `json:"createdAt"` // UTC
	UpdatedAt  time.Time `json:"updatedAt"` // UTC
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Name       string `json:"name" validate:"required"`
	Code       string `json:"code" validate:"required"`
	Credits    int    `json:"credits" validate:"required,min=1,max=6"`
	Color      string `json:"color" validate:"omitempty,hexcolor"`
	Semester   string `json:"semester" validate:"required"`
	Year       string `json:"year" validate:"required"`
	Instructor string `json:"instructor"`
	Schedule   string `json:"schedule"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.Code = core.CleanString(nc.Code)
	nc.Semester = core.CleanString(nc.Semester)
	nc.Year = core.CleanString(nc.Year)
	nc.Instructor = core.CleanString(nc.Instructor)
	nc.Schedule = core.CleanString(nc.Schedule)
	if nc.Color == "" {
		nc.Color = defaultColor
	}
	return validate.Struct(nc)
}
