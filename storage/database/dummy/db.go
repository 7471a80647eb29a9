// Package dummydb provides in-memory repositories for tests and local hacking.
// Each table keeps its rows in insertion order so query results are stable.
package dummydb

import (
	"sync"

	"github.com/trackademic/trackademic/core/assignment"
	"github.com/trackademic/trackademic/core/course"
	"github.com/trackademic/trackademic/core/event"
	"github.com/trackademic/trackademic/core/goal"
	"github.com/trackademic/trackademic/core/grade"
	"github.com/trackademic/trackademic/core/user"
)

type (
	DB struct {
		user       *userTable
		course     *courseTable
		assignment *assignmentTable
		grade      *gradeTable
		goal       *goalTable
		event      *eventTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
		order []string
	}

	courseTable struct {
		sync.RWMutex
		table map[string]*course.Course
		order []string
	}

	assignmentTable struct {
		sync.RWMutex
		table map[string]*assignment.Assignment
		order []string
	}

	gradeTable struct {
		sync.RWMutex
		table map[string]*grade.Grade
		order []string
	}

	goalTable struct {
		sync.RWMutex
		table map[string]*goal.Goal
		order []string
	}

	eventTable struct {
		sync.RWMutex
		table map[string]*event.Event
		order []string
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{table: make(map[string]*user.User)},
		course:     &courseTable{table: make(map[string]*course.Course)},
		assignment: &assignmentTable{table: make(map[string]*assignment.Assignment)},
		grade:      &gradeTable{table: make(map[string]*grade.Grade)},
		goal:       &goalTable{table: make(map[string]*goal.Goal)},
		event:      &eventTable{table: make(map[string]*event.Event)},
	}
	return db, nil
}
