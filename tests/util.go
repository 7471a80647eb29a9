package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/trackademic/trackademic/core"
	"github.com/trackademic/trackademic/core/assignment"
	"github.com/trackademic/trackademic/core/course"
	"github.com/trackademic/trackademic/core/event"
	"github.com/trackademic/trackademic/core/goal"
	"github.com/trackademic/trackademic/core/grade"
	"github.com/trackademic/trackademic/core/metrics"
	"github.com/trackademic/trackademic/core/user"
)

// NewConfig returns a self-contained test configuration. Nothing is read
// from the environment so tests stay hermetic.
func NewConfig() *core.Config {
	return &core.Config{
		Env:             "TEST",
		TestMode:        true,
		Build:           "test",
		AppName:         "Trackademic",
		SecretKey:       "sekrit",
		FrontendBaseURL: "http://localhost:3000",
		Server: core.ServerConfig{
			JWTExpirationDelta:        10 * time.Minute,
			JWTRefreshExpirationDelta: 4 * time.Hour,
			PasswordResetTimeoutDelta: 3 * 24 * time.Hour,
		},
	}
}

func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, email, pwd string,
	createdAt ...time.Time,
) user.User {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := user.User{
		Name:      name,
		Email:     email,
		CreatedAt: tstamp,
		UpdatedAt: tstamp,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateCourse(
	t *testing.T,
	repo course.Repository,
	userID, name, code string,
	credits int,
) course.Course {
	t.Helper()

	now := time.Now().UTC()
	crs := course.Course{
		UserID:    userID,
		Name:      name,
		Code:      code,
		Credits:   credits,
		Color:     "#3B82F6",
		Semester:  "Fall",
		Year:      "2026",
		CreatedAt: now,
		UpdatedAt: now,
	}
	crs, err := repo.CreateCourse(context.Background(), crs)
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return crs
}

func CreateAssignment(
	t *testing.T,
	repo assignment.Repository,
	userID, courseID, title string,
	dueDate time.Time,
	completed bool,
) assignment.Assignment {
	t.Helper()

	now := time.Now().UTC()
	asg := assignment.Assignment{
		UserID:    userID,
		CourseID:  courseID,
		Title:     title,
		Type:      assignment.TypeAssignment,
		DueDate:   dueDate.UTC(),
		Points:    100,
		Completed: completed,
		Priority:  assignment.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
	asg, err := repo.CreateAssignment(context.Background(), asg)
	if err != nil {
		t.Fatalf("CreateAssignment() failed: %v", err)
	}
	return asg
}

func CreateGrade(
	t *testing.T,
	repo grade.Repository,
	userID, courseID, assignmentID string,
	score, points float64,
) grade.Grade {
	t.Helper()

	now := time.Now().UTC()
	pct := metrics.Percentage(score, points)
	grd := grade.Grade{
		UserID:       userID,
		CourseID:     courseID,
		AssignmentID: assignmentID,
		Score:        score,
		Points:       points,
		Percentage:   pct,
		LetterGrade:  metrics.LetterGrade(pct),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	grd, err := repo.CreateGrade(context.Background(), grd)
	if err != nil {
		t.Fatalf("CreateGrade() failed: %v", err)
	}
	return grd
}

func CreateGoal(
	t *testing.T,
	repo goal.Repository,
	userID, title, category string,
	completed bool,
	progress int,
) goal.Goal {
	t.Helper()

	now := time.Now().UTC()
	gl := goal.Goal{
		UserID:    userID,
		Title:     title,
		Category:  category,
		Completed: completed,
		Priority:  assignment.PriorityMedium,
		Progress:  progress,
		CreatedAt: now,
		UpdatedAt: now,
	}
	gl, err := repo.CreateGoal(context.Background(), gl)
	if err != nil {
		t.Fatalf("CreateGoal() failed: %v", err)
	}
	return gl
}

func CreateEvent(
	t *testing.T,
	repo event.Repository,
	userID, title, typ string,
	date time.Time,
) event.Event {
	t.Helper()

	now := time.Now().UTC()
	evt := event.Event{
		UserID:    userID,
		Title:     title,
		Type:      typ,
		Date:      date.UTC(),
		Time:      "09:00",
		Duration:  60,
		CreatedAt: now,
		UpdatedAt: now,
	}
	evt, err := repo.CreateEvent(context.Background(), evt)
	if err != nil {
		t.Fatalf("CreateEvent() failed: %v", err)
	}
	return evt
}
