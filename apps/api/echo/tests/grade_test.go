package tests

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/trackademic/trackademic/core/grade"
	testutil "github.com/trackademic/trackademic/tests"
)

type (
	gradeEnvelope struct {
		Grade grade.Grade `json:"grade"`
	}

	gradesEnvelope struct {
		Grades []grade.Grade `json:"grades"`
	}
)

func Test_gradeAPI_create(t *testing.T) {
	env := setup(t)
	usr := testutil.CreateUser(t, env.usrRepo, "User", "awe@test.cd", "")
	other := testutil.CreateUser(t, env.usrRepo, "Other", "other@test.cd", "")
	crs1 := testutil.CreateCourse(t, env.courseRepo, usr.ID, "Data Structures", "CS260", 4)
	crs2 := testutil.CreateCourse(t, env.courseRepo, usr.ID, "Linear Algebra", "MATH220", 3)
	foreignCrs := testutil.CreateCourse(t, env.courseRepo, other.ID, "Pottery", "ART101", 2)

	due := time.Now().Add(24 * time.Hour)
	asg := testutil.CreateAssignment(t, env.assignmentRepo, usr.ID, crs1.ID, "Homework 1", due, true)
	foreignAsg := testutil.CreateAssignment(t, env.assignmentRepo, other.ID, foreignCrs.ID, "Vase", due, true)
	token := getToken(t, env.conf, usr)

	tests := []httpTest{
		{
			name: "Auth required", body: []byte(`{}`),
			wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken),
		},
		{
			name: "score required", token: token,
			body:     []byte(`{"points":100,"courseId":"` + crs1.ID + `","assignmentId":"` + asg.ID + `"}`),
			wantCode: http.StatusBadRequest, wantData: marshallObj(t, httpErr{Error: "this field is required"}),
		},
		{
			name: "bad letter grade", token: token,
			body:     []byte(`{"score":85,"letterGrade":"E","courseId":"` + crs1.ID + `","assignmentId":"` + asg.ID + `"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name: "foreign assignment is not found", token: token,
			body:     []byte(`{"score":85,"courseId":"` + foreignCrs.ID + `","assignmentId":"` + foreignAsg.ID + `"}`),
			wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound),
		},
		{
			name: "course mismatch is not found", token: token,
			body:     []byte(`{"score":85,"courseId":"` + crs2.ID + `","assignmentId":"` + asg.ID + `"}`),
			wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/grades", tt.token, tt.body)
			env.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	createOK := func(t *testing.T, body []byte) grade.Grade {
		t.Helper()

		req, rec := newAuthRequest(http.MethodPost, "/v1/grades", token, body)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		var resp gradeEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		return resp.Grade
	}

	t.Run("ok: percentage and letter derived", func(t *testing.T) {
		grd := createOK(t, []byte(`{"score":85,"points":100,"courseId":"`+crs1.ID+`","assignmentId":"`+asg.ID+`"}`))
		if grd.Percentage != 85 {
			t.Errorf("percentage = %v; want 85", grd.Percentage)
		}
		if grd.LetterGrade != "B" {
			t.Errorf("letterGrade = %q; want B", grd.LetterGrade)
		}
	})

	t.Run("ok: points default to 100", func(t *testing.T) {
		grd := createOK(t, []byte(`{"score":90,"courseId":"`+crs1.ID+`","assignmentId":"`+asg.ID+`"}`))
		if grd.Points != 100 {
			t.Errorf("points = %v; want default 100", grd.Points)
		}
		if grd.Percentage != 90 || grd.LetterGrade != "A" {
			t.Errorf("got %v %q; want 90 A", grd.Percentage, grd.LetterGrade)
		}
	})

	t.Run("ok: explicit letter grade wins", func(t *testing.T) {
		grd := createOK(t, []byte(`{"score":85,"letterGrade":"A","feedback":"curved","courseId":"`+crs1.ID+`","assignmentId":"`+asg.ID+`"}`))
		if grd.LetterGrade != "A" {
			t.Errorf("letterGrade = %q; want explicit A", grd.LetterGrade)
		}
		if grd.Feedback != "curved" {
			t.Errorf("feedback = %q; want %q", grd.Feedback, "curved")
		}
	})
}

func Test_gradeAPI_query(t *testing.T) {
	env := setup(t)
	usr := testutil.CreateUser(t, env.usrRepo, "User", "awe@test.cd", "")
	other := testutil.CreateUser(t, env.usrRepo, "Other", "other@test.cd", "")
	crs1 := testutil.CreateCourse(t, env.courseRepo, usr.ID, "Data Structures", "CS260", 4)
	crs2 := testutil.CreateCourse(t, env.courseRepo, usr.ID, "Linear Algebra", "MATH220", 3)
	foreignCrs := testutil.CreateCourse(t, env.courseRepo, other.ID, "Pottery", "ART101", 2)

	due := time.Now().Add(24 * time.Hour)
	asg1 := testutil.CreateAssignment(t, env.assignmentRepo, usr.ID, crs1.ID, "Homework 1", due, true)
	asg2 := testutil.CreateAssignment(t, env.assignmentRepo, usr.ID, crs2.ID, "Problem Set", due, true)
	foreignAsg := testutil.CreateAssignment(t, env.assignmentRepo, other.ID, foreignCrs.ID, "Vase", due, true)

	grd1 := testutil.CreateGrade(t, env.gradeRepo, usr.ID, crs1.ID, asg1.ID, 85, 100)
	grd2 := testutil.CreateGrade(t, env.gradeRepo, usr.ID, crs2.ID, asg2.ID, 47, 50)
	testutil.CreateGrade(t, env.gradeRepo, other.ID, foreignCrs.ID, foreignAsg.ID, 100, 100)

	token := getToken(t, env.conf, usr)

	tests := []httpTest{
		{
			name: "Auth required", path: "/v1/grades",
			wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken),
		},
		{
			name: "Own grades only, newest first", path: "/v1/grades", token: token,
			wantCode: http.StatusOK, wantData: marshallObj(t, gradesEnvelope{Grades: []grade.Grade{grd2, grd1}}),
		},
		{
			name: "By course", path: "/v1/grades?courseId=" + crs1.ID, token: token,
			wantCode: http.StatusOK, wantData: marshallObj(t, gradesEnvelope{Grades: []grade.Grade{grd1}}),
		},
		{
			name: "Unknown course is empty", path: "/v1/grades?courseId=nope", token: token,
			wantCode: http.StatusOK, wantData: []byte(`{"grades":[]}`),
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
