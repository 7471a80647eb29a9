// Package gormrepos implements the core repositories on top of GORM.
// Row structs are deliberately separate from the core domain models so
// storage tags never leak into the API surface.
package gormrepos

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trackademic/trackademic/core/assignment"
	"github.com/trackademic/trackademic/core/course"
	"github.com/trackademic/trackademic/core/event"
	"github.com/trackademic/trackademic/core/goal"
	"github.com/trackademic/trackademic/core/grade"
	"github.com/trackademic/trackademic/core/user"
)

type userRow struct {
	ID           string `gorm:"primaryKey;size:36"`
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	StudentID    string `gorm:"size:64"`
	Major        string `gorm:"size:255"`
	Year         string `gorm:"size:32"`
	GPA          float64
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLogin    time.Time
}

func (userRow) TableName() string { return "users" }

type courseRow struct {
	ID         string `gorm:"primaryKey;size:36"`
	UserID     string `gorm:"size:36;not null;index"`
	Name       string `gorm:"size:255;not null"`
	Code       string `gorm:"size:64;not null"`
	Credits    int    `gorm:"not null"`
	Color      string `gorm:"size:16"`
	Semester   string `gorm:"size:32;not null"`
	Year       string `gorm:"size:16;not null"`
	Instructor string `gorm:"size:255"`
	Schedule   string `gorm:"size:255"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (courseRow) TableName() string { return "courses" }

type assignmentRow struct {
	ID          string `gorm:"primaryKey;size:36"`
	UserID      string `gorm:"size:36;not null;index"`
	CourseID    string `gorm:"size:36;not null;index"`
	Title       string `gorm:"size:255;not null"`
	Description string
	Type        string `gorm:"size:16;not null"`
	DueDate     time.Time
	Points      float64
	Completed   bool   `gorm:"not null;default:false"`
	Priority    string `gorm:"size:8;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (assignmentRow) TableName() string { return "assignments" }

type gradeRow struct {
	ID           string `gorm:"primaryKey;size:36"`
	UserID       string `gorm:"size:36;not null;index"`
	CourseID     string `gorm:"size:36;not null;index"`
	AssignmentID string `gorm:"size:36;not null;index"`
	Score        float64
	Points       float64
	Percentage   float64
	LetterGrade  string `gorm:"size:2"`
	Feedback     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (gradeRow) TableName() string { return "grades" }

type goalRow struct {
	ID          string `gorm:"primaryKey;size:36"`
	UserID      string `gorm:"size:36;not null;index"`
	Title       string `gorm:"size:255;not null"`
	Description string
	Category    string `gorm:"size:16;not null"`
	TargetDate  *time.Time
	Completed   bool   `gorm:"not null;default:false"`
	Priority    string `gorm:"size:8;not null"`
	Progress    int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (goalRow) TableName() string { return "goals" }

type eventRow struct {
	ID          string `gorm:"primaryKey;size:36"`
	UserID      string `gorm:"size:36;not null;index"`
	Title       string `gorm:"size:255;not null"`
	Description string
	Type        string    `gorm:"size:16;not null"`
	Date        time.Time `gorm:"index"`
	Time        string    `gorm:"size:16"`
	Duration    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (eventRow) TableName() string { return "events" }

// Migrate creates or updates the schema for all tracked entities.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&userRow{},
		&courseRow{},
		&assignmentRow{},
		&gradeRow{},
		&goalRow{},
		&eventRow{},
	)
	return errors.Wrap(err, "migrating database")
}

// trapNotFoundErr maps gorm's "record not found" to the given sentinel.
func trapNotFoundErr(err error, sentinel error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return errors.Wrap(err, msg)
}

// row <-> core model mapping

func (r userRow) unmap() user.User {
	return user.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		StudentID:    r.StudentID,
		Major:        r.Major,
		Year:         r.Year,
		GPA:          r.GPA,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		LastLogin:    r.LastLogin,
	}
}

func mapUser(usr user.User) userRow {
	return userRow{
		ID:           usr.ID,
		Name:         usr.Name,
		Email:        usr.Email,
		StudentID:    usr.StudentID,
		Major:        usr.Major,
		Year:         usr.Year,
		GPA:          usr.GPA,
		PasswordHash: usr.PasswordHash,
		CreatedAt:    usr.CreatedAt.UTC(),
		UpdatedAt:    usr.UpdatedAt.UTC(),
		LastLogin:    usr.LastLogin.UTC(),
	}
}

func (r courseRow) unmap() course.Course {
	return course.Course{
		ID:         r.ID,
		UserID:     r.UserID,
		Name:       r.Name,
		Code:       r.Code,
		Credits:    r.Credits,
		Color:      r.Color,
		Semester:   r.Semester,
		Year:       r.Year,
		Instructor: r.Instructor,
		Schedule:   r.Schedule,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func mapCourse(crs course.Course) courseRow {
	return courseRow{
		ID:         crs.ID,
		UserID:     crs.UserID,
		Name:       crs.Name,
		Code:       crs.Code,
		Credits:    crs.Credits,
		Color:      crs.Color,
		Semester:   crs.Semester,
		Year:       crs.Year,
		Instructor: crs.Instructor,
		Schedule:   crs.Schedule,
		CreatedAt:  crs.CreatedAt.UTC(),
		UpdatedAt:  crs.UpdatedAt.UTC(),
	}
}

func (r assignmentRow) unmap() assignment.Assignment {
	return assignment.Assignment{
		ID:          r.ID,
		UserID:      r.UserID,
		CourseID:    r.CourseID,
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		DueDate:     r.DueDate,
		Points:      r.Points,
		Completed:   r.Completed,
		Priority:    r.Priority,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func mapAssignment(asg assignment.Assignment) assignmentRow {
	return assignmentRow{
		ID:          asg.ID,
		UserID:      asg.UserID,
		CourseID:    asg.CourseID,
		Title:       asg.Title,
		Description: asg.Description,
		Type:        asg.Type,
		DueDate:     asg.DueDate.UTC(),
		Points:      asg.Points,
		Completed:   asg.Completed,
		Priority:    asg.Priority,
		CreatedAt:   asg.CreatedAt.UTC(),
		UpdatedAt:   asg.UpdatedAt.UTC(),
	}
}

func (r gradeRow) unmap() grade.Grade {
	return grade.Grade{
		ID:           r.ID,
		UserID:       r.UserID,
		CourseID:     r.CourseID,
		AssignmentID: r.AssignmentID,
		Score:        r.Score,
		Points:       r.Points,
		Percentage:   r.Percentage,
		LetterGrade:  r.LetterGrade,
		Feedback:     r.Feedback,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func mapGrade(grd grade.Grade) gradeRow {
	return gradeRow{
		ID:           grd.ID,
		UserID:       grd.UserID,
		CourseID:     grd.CourseID,
		AssignmentID: grd.AssignmentID,
		Score:        grd.Score,
		Points:       grd.Points,
		Percentage:   grd.Percentage,
		LetterGrade:  grd.LetterGrade,
		Feedback:     grd.Feedback,
		CreatedAt:    grd.CreatedAt.UTC(),
		UpdatedAt:    grd.UpdatedAt.UTC(),
	}
}

func (r goalRow) unmap() goal.Goal {
	return goal.Goal{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		TargetDate:  r.TargetDate,
		Completed:   r.Completed,
		Priority:    r.Priority,
		Progress:    r.Progress,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func mapGoal(gl goal.Goal) goalRow {
	return goalRow{
		ID:          gl.ID,
		UserID:      gl.UserID,
		Title:       gl.Title,
		Description: gl.Description,
		Category:    gl.Category,
		TargetDate:  gl.TargetDate,
		Completed:   gl.Completed,
		Priority:    gl.Priority,
		Progress:    gl.Progress,
		CreatedAt:   gl.CreatedAt.UTC(),
		UpdatedAt:   gl.UpdatedAt.UTC(),
	}
}

func (r eventRow) unmap() event.Event {
	return event.Event{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		Date:        r.Date,
		Time:        r.Time,
		Duration:    r.Duration,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func mapEvent(evt event.Event) eventRow {
	return eventRow{
		ID:          evt.ID,
		UserID:      evt.UserID,
		Title:       evt.Title,
		Description: evt.Description,
		Type:        evt.Type,
		Date:        evt.Date.UTC(),
		Time:        evt.Time,
		Duration:    evt.Duration,
		CreatedAt:   evt.CreatedAt.UTC(),
		UpdatedAt:   evt.UpdatedAt.UTC(),
	}
}
