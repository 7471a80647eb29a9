package tests

import (
	"net/http"
	"testing"
	"time"

	"github.com/trackademic/trackademic/core/metrics"
	testutil "github.com/trackademic/trackademic/tests"
)

type statsEnvelope struct {
	Stats metrics.Stats `json:"stats"`
}

func Test_dashboardAPI_stats(t *testing.T) {
	env := setup(t)
	usr := testutil.CreateUser(t, env.usrRepo, "User", "awe@test.cd", "")
	other := testutil.CreateUser(t, env.usrRepo, "Other", "other@test.cd", "")

	crs1 := testutil.CreateCourse(t, env.courseRepo, usr.ID, "Data Structures", "CS260", 4)
	crs2 := testutil.CreateCourse(t, env.courseRepo, usr.ID, "Linear Algebra", "MATH220", 3)
	foreignCrs := testutil.CreateCourse(t, env.courseRepo, other.ID, "Pottery", "ART101", 2)

	now := time.Now().UTC()
	asg1 := testutil.CreateAssignment(t, env.assignmentRepo, usr.ID, crs1.ID, "Homework 1", now.Add(-48*time.Hour), true)
	asg2 := testutil.CreateAssignment(t, env.assignmentRepo, usr.ID, crs1.ID, "Homework 2", now.Add(72*time.Hour), false)
	testutil.CreateAssignment(t, env.assignmentRepo, usr.ID, crs2.ID, "Problem Set", now.Add(30*24*time.Hour), false)
	testutil.CreateAssignment(t, env.assignmentRepo, other.ID, foreignCrs.ID, "Vase", now.Add(24*time.Hour), false)

	testutil.CreateGrade(t, env.gradeRepo, usr.ID, crs1.ID, asg1.ID, 85, 100)
	testutil.CreateGrade(t, env.gradeRepo, usr.ID, crs1.ID, asg1.ID, 95, 100)

	token := getToken(t, env.conf, usr)

	t.Run("Auth required", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/dashboard/stats")
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)}, rec)
	})

	t.Run("stats aggregate the caller's records only", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/dashboard/stats", token)
		env.server.ServeHTTP(rec, req)

		want := statsEnvelope{Stats: metrics.Stats{
			TotalCourses:         2,
			TotalAssignments:     3,
			CompletedAssignments: 1,
			AverageGrade:         90,
			UpcomingDeadlines:    1, // asg2; the problem set is too far out
		}}
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marshallObj(t, want)}, rec)
	})

	t.Run("completing an assignment moves the counters", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPatch, "/v1/assignments/"+asg2.ID, token, []byte(`{"completed":true}`))
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/dashboard/stats", token)
		env.server.ServeHTTP(rec, req)

		want := statsEnvelope{Stats: metrics.Stats{
			TotalCourses:         2,
			TotalAssignments:     3,
			CompletedAssignments: 2,
			AverageGrade:         90,
			UpcomingDeadlines:    0,
		}}
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marshallObj(t, want)}, rec)
	})
}
