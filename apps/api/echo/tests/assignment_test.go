package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/trackademic/trackademic/core/assignment"
	testutil "github.com/trackademic/trackademic/tests"
)

type (
	assignmentEnvelope struct {
		Assignment assignment.Assignment `json:"assignment"`
	}

	assignmentsEnvelope struct {
		Assignments []assignment.Assignment `json:"assignments"`
	}
)

func Test_assignmentAPI_create(t *testing.T) {
	env := setup(t)
	usr := testutil.CreateUser(t, env.usrRepo, "User", "awe@test.cd", "")
	other := testutil.CreateUser(t, env.usrRepo, "Other", "other@test.cd", "")
	crs := testutil.CreateCourse(t, env.courseRepo, usr.ID, "Data Structures", "CS260", 4)
	foreignCrs := testutil.CreateCourse(t, env.courseRepo, other.ID, "Pottery", "ART101", 2)
	token := getToken(t, env.conf, usr)

	due := time.Date(2026, 9, 15, 23, 59, 0, 0, time.UTC)

	tests := []httpTest{
		{
			name: "Auth required", body: []byte(`{}`),
			wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken),
		},
		{
			name: "title required", token: token,
			body:     []byte(`{"type":"quiz","dueDate":"2026-09-15T23:59:00Z","courseId":"` + crs.ID + `"}`),
			wantCode: http.StatusBadRequest, wantData: marshallObj(t, httpErr{Error: "this field is required"}),
		},
		{
			name: "bad type", token: token,
			body:     []byte(`{"title":"Quiz 1","type":"pop-quiz","dueDate":"2026-09-15T23:59:00Z","courseId":"` + crs.ID + `"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name: "foreign course is not found", token: token,
			body:     []byte(`{"title":"Quiz 1","type":"quiz","dueDate":"2026-09-15T23:59:00Z","courseId":"` + foreignCrs.ID + `"}`),
			wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound),
		},
		{
			name: "unknown course is not found", token: token,
			body:     []byte(`{"title":"Quiz 1","type":"quiz","dueDate":"2026-09-15T23:59:00Z","courseId":"nope"}`),
			wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/assignments", tt.token, tt.body)
			env.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("ok: defaults applied", func(t *testing.T) {
		body := []byte(`{"title":"Quiz 1","type":"quiz","dueDate":"2026-09-15T23:59:00Z","courseId":"` + crs.ID + `"}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/assignments", token, body)
		env.server.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		var resp assignmentEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if resp.Assignment.Points != 100 {
			t.Errorf("points = %v; want default 100", resp.Assignment.Points)
		}
		if resp.Assignment.Priority != assignment.PriorityMedium {
			t.Errorf("priority = %q; want default %q", resp.Assignment.Priority, assignment.PriorityMedium)
		}
		if resp.Assignment.Completed {
			t.Error("new assignment must not be completed")
		}
		if !resp.Assignment.DueDate.Equal(due) {
			t.Errorf("dueDate = %v; want %v", resp.Assignment.DueDate, due)
		}
	})
}

func Test_assignmentAPI_query(t *testing.T) {
	env := setup(t)
	usr := testutil.CreateUser(t, env.usrRepo, "User", "awe@test.cd", "")
	other := testutil.CreateUser(t, env.usrRepo, "Other", "other@test.cd", "")
	crs1 := testutil.CreateCourse(t, env.courseRepo, usr.ID, "Data Structures", "CS260", 4)
	crs2 := testutil.CreateCourse(t, env.courseRepo, usr.ID, "Linear Algebra", "MATH220", 3)
	foreignCrs := testutil.CreateCourse(t, env.courseRepo, other.ID, "Pottery", "ART101", 2)

	now := time.Now().UTC().Truncate(time.Second)
	asg1 := testutil.CreateAssignment(t, env.assignmentRepo, usr.ID, crs1.ID, "Homework 1", now.Add(24*time.Hour), true)
	asg2 := testutil.CreateAssignment(t, env.assignmentRepo, usr.ID, crs1.ID, "Homework 2", now.Add(48*time.Hour), false)
	asg3 := testutil.CreateAssignment(t, env.assignmentRepo, usr.ID, crs2.ID, "Problem Set", now.Add(72*time.Hour), false)
	testutil.CreateAssignment(t, env.assignmentRepo, other.ID, foreignCrs.ID, "Vase", now.Add(24*time.Hour), false)

	token := getToken(t, env.conf, usr)

	tests := []httpTest{
		{
			name: "Auth required", path: "/v1/assignments",
			wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken),
		},
		{
			name: "All, due date ascending", path: "/v1/assignments", token: token,
			wantCode: http.StatusOK, wantData: marshallObj(t, assignmentsEnvelope{Assignments: []assignment.Assignment{asg1, asg2, asg3}}),
		},
		{
			name: "Pending only", path: "/v1/assignments?filter=pending", token: token,
			wantCode: http.StatusOK, wantData: marshallObj(t, assignmentsEnvelope{Assignments: []assignment.Assignment{asg2, asg3}}),
		},
		{
			name: "Completed only", path: "/v1/assignments?filter=completed", token: token,
			wantCode: http.StatusOK, wantData: marshallObj(t, assignmentsEnvelope{Assignments: []assignment.Assignment{asg1}}),
		},
		{
			name: "By course", path: "/v1/assignments?courseId=" + crs2.ID, token: token,
			wantCode: http.StatusOK, wantData: marshallObj(t, assignmentsEnvelope{Assignments: []assignment.Assignment{asg3}}),
		},
		{
			name: "By course and status", path: "/v1/assignments?filter=pending&courseId=" + crs1.ID, token: token,
			wantCode: http.StatusOK, wantData: marshallObj(t, assignmentsEnvelope{Assignments: []assignment.Assignment{asg2}}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, tt.token)
			env.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_assignmentAPI_update(t *testing.T) {
	env := setup(t)
	usr := testutil.CreateUser(t, env.usrRepo, "User", "awe@test.cd", "")
	other := testutil.CreateUser(t, env.usrRepo, "Other", "other@test.cd", "")
	crs := testutil.CreateCourse(t, env.courseRepo, usr.ID, "Data Structures", "CS260", 4)
	asg := testutil.CreateAssignment(t, env.assignmentRepo, usr.ID, crs.ID, "Homework 1", time.Now().Add(24*time.Hour), false)

	t.Run("foreign assignment is not found and left untouched", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPatch, "/v1/assignments/"+asg.ID, getToken(t, env.conf, other), []byte(`{"completed":true}`))
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)}, rec)

		refreshed, err := env.assignmentRepo.GetAssignment(context.Background(), asg.ID, usr.ID)
		if err != nil {
			t.Fatalf("GetAssignment() failed: %v", err)
		}
		if refreshed.Completed {
			t.Error("assignment was modified by a foreign user")
		}
	})

	t.Run("toggle completed", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPatch, "/v1/assignments/"+asg.ID, getToken(t, env.conf, usr), []byte(`{"completed":true}`))
		env.server.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var resp assignmentEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if !resp.Assignment.Completed {
			t.Error("completed was not toggled")
		}
		if resp.Assignment.Title != asg.Title {
			t.Errorf("title changed unexpectedly: %q", resp.Assignment.Title)
		}
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPatch, "/v1/assignments/"+asg.ID, getToken(t, env.conf, usr), []byte(`{"title":"Homework 1a","priority":"high"}`))
		env.server.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var resp assignmentEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if resp.Assignment.Title != "Homework 1a" || resp.Assignment.Priority != assignment.PriorityHigh {
			t.Errorf("unexpected assignment: %+v", resp.Assignment)
		}
		if !resp.Assignment.Completed {
			t.Error("completed was reset by a partial update")
		}
	})
}

func Test_assignmentAPI_destroy(t *testing.T) {
	env := setup(t)
	usr := testutil.CreateUser(t, env.usrRepo, "User", "awe@test.cd", "")
	other := testutil.CreateUser(t, env.usrRepo, "Other", "other@test.cd", "")
	crs := testutil.CreateCourse(t, env.courseRepo, usr.ID, "Data Structures", "CS260", 4)
	asg := testutil.CreateAssignment(t, env.assignmentRepo, usr.ID, crs.ID, "Homework 1", time.Now().Add(24*time.Hour), true)
	testutil.CreateGrade(t, env.gradeRepo, usr.ID, crs.ID, asg.ID, 85, 100)

	t.Run("foreign assignment is not found", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/assignments/"+asg.ID, getToken(t, env.conf, other))
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)}, rec)
	})

	t.Run("delete cascades to the grade", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/assignments/"+asg.ID, getToken(t, env.conf, usr))
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusNoContent, rec.Body.String())
		}

		if _, err := env.assignmentRepo.GetAssignment(context.Background(), asg.ID, usr.ID); err != assignment.ErrNotFound {
			t.Errorf("GetAssignment() err = %v; want %v", err, assignment.ErrNotFound)
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/grades", getToken(t, env.conf, usr))
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte(`{"grades":[]}`)}, rec)
	})
}
