package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/trackademic/trackademic/core/goal"
	testutil "github.com/trackademic/trackademic/tests"
)

type (
	goalEnvelope struct {
		Goal goal.Goal `json:"goal"`
	}

	goalsEnvelope struct {
		Goals []goal.Goal `json:"goals"`
	}
)

func Test_goalAPI_create(t *testing.T) {
	env := setup(t)
	usr := testutil.CreateUser(t, env.usrRepo, "User", "awe@test.cd", "")
	token := getToken(t, env.conf, usr)

	tests := []httpTest{
		{
			name: "Auth required", body: []byte(`{}`),
			wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken),
		},
		{
			name: "title required", token: token,
			body:     []byte(`{"category":"academic"}`),
			wantCode: http.StatusBadRequest, wantData: marshallObj(t, httpErr{Error: "this field is required"}),
		},
		{
			name: "category required", token: token,
			body:     []byte(`{"title":"Make dean's list"}`),
			wantCode: http.StatusBadRequest, wantData: marshallObj(t, httpErr{Error: "this field is required"}),
		},
		{
			name: "bad category", token: token,
			body:     []byte(`{"title":"Make dean's list","category":"athletic"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name: "progress out of bounds", token: token,
			body:     []byte(`{"title":"Make dean's list","category":"academic","progress":101}`),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/goals", tt.token, tt.body)
			env.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("ok: defaults applied", func(t *testing.T) {
		body := []byte(`{"title":"Make dean's list","category":"academic","progress":25}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/goals", token, body)
		env.server.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		var resp goalEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if resp.Goal.Priority != "medium" {
			t.Errorf("priority = %q; want default medium", resp.Goal.Priority)
		}
		if resp.Goal.Progress != 25 {
			t.Errorf("progress = %v; want 25", resp.Goal.Progress)
		}
		if resp.Goal.Completed {
			t.Error("new goal must not be completed")
		}
	})
}

func Test_goalAPI_query(t *testing.T) {
	env := setup(t)
	usr := testutil.CreateUser(t, env.usrRepo, "User", "awe@test.cd", "")
	other := testutil.CreateUser(t, env.usrRepo, "Other", "other@test.cd", "")

	gl1 := testutil.CreateGoal(t, env.goalRepo, usr.ID, "Read 12 books", goal.CategoryPersonal, true, 100)
	gl2 := testutil.CreateGoal(t, env.goalRepo, usr.ID, "Land an internship", goal.CategoryCareer, false, 40)
	testutil.CreateGoal(t, env.goalRepo, other.ID, "Throw a vase", goal.CategoryPersonal, false, 10)

	token := getToken(t, env.conf, usr)

	tests := []httpTest{
		{
			name: "Auth required", path: "/v1/goals",
			wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken),
		},
		{
			name: "Own goals only, newest first", path: "/v1/goals", token: token,
			wantCode: http.StatusOK, wantData: marshallObj(t, goalsEnvelope{Goals: []goal.Goal{gl2, gl1}}),
		},
		{
			name: "Active only", path: "/v1/goals?filter=active", token: token,
			wantCode: http.StatusOK, wantData: marshallObj(t, goalsEnvelope{Goals: []goal.Goal{gl2}}),
		},
		{
			name: "Completed only", path: "/v1/goals?filter=completed", token: token,
			wantCode: http.StatusOK, wantData: marshallObj(t, goalsEnvelope{Goals: []goal.Goal{gl1}}),
		},
		{
			name: "All explicitly", path: "/v1/goals?filter=all", token: token,
			wantCode: http.StatusOK, wantData: marshallObj(t, goalsEnvelope{Goals: []goal.Goal{gl2, gl1}}),
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

func Test_goalAPI_update(t *testing.T) {
	env := setup(t)
	usr := testutil.CreateUser(t, env.usrRepo, "User", "awe@test.cd", "")
	other := testutil.CreateUser(t, env.usrRepo, "Other", "other@test.cd", "")
	gl := testutil.CreateGoal(t, env.goalRepo, usr.ID, "Land an internship", goal.CategoryCareer, false, 40)

	t.Run("foreign goal is not found", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPatch, "/v1/goals/"+gl.ID, getToken(t, env.conf, other), []byte(`{"progress":90}`))
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)}, rec)
	})

	t.Run("partial update", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPatch, "/v1/goals/"+gl.ID, getToken(t, env.conf, usr), []byte(`{"title":"Land a summer internship","progress":60}`))
		env.server.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var resp goalEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if resp.Goal.Title != "Land a summer internship" || resp.Goal.Progress != 60 {
			t.Errorf("unexpected goal: %+v", resp.Goal)
		}
		if resp.Goal.Category != goal.CategoryCareer {
			t.Errorf("category changed unexpectedly: %q", resp.Goal.Category)
		}
	})

	t.Run("toggling completed never touches progress", func(t *testing.T) {
		token := getToken(t, env.conf, usr)

		req, rec := newAuthRequest(http.MethodPatch, "/v1/goals/"+gl.ID, token, []byte(`{"completed":true}`))
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var resp goalEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if !resp.Goal.Completed {
			t.Error("completed was not set")
		}
		if resp.Goal.Progress != 60 {
			t.Errorf("progress = %v; want 60 untouched", resp.Goal.Progress)
		}

		// and back
		req, rec = newAuthRequest(http.MethodPatch, "/v1/goals/"+gl.ID, token, []byte(`{"completed":false}`))
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if resp.Goal.Completed {
			t.Error("completed was not reverted")
		}
		if resp.Goal.Progress != 60 {
			t.Errorf("progress = %v; want 60 untouched", resp.Goal.Progress)
		}
	})

	t.Run("progress can be reset to zero", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPatch, "/v1/goals/"+gl.ID, getToken(t, env.conf, usr), []byte(`{"progress":0}`))
		env.server.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var resp goalEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if resp.Goal.Progress != 0 {
			t.Errorf("progress = %v; want 0", resp.Goal.Progress)
		}
	})
}

func Test_goalAPI_complete(t *testing.T) {
	env := setup(t)
	usr := testutil.CreateUser(t, env.usrRepo, "User", "awe@test.cd", "")
	other := testutil.CreateUser(t, env.usrRepo, "Other", "other@test.cd", "")
	gl := testutil.CreateGoal(t, env.goalRepo, usr.ID, "Land an internship", goal.CategoryCareer, false, 40)

	t.Run("foreign goal is not found", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/goals/"+gl.ID+"/complete", getToken(t, env.conf, other))
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)}, rec)
	})

	t.Run("completion forces progress to 100", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/goals/"+gl.ID+"/complete", getToken(t, env.conf, usr))
		env.server.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var resp goalEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if !resp.Goal.Completed {
			t.Error("goal was not completed")
		}
		if resp.Goal.Progress != 100 {
			t.Errorf("progress = %v; want 100", resp.Goal.Progress)
		}
	})
}

func Test_goalAPI_destroy(t *testing.T) {
	env := setup(t)
	usr := testutil.CreateUser(t, env.usrRepo, "User", "awe@test.cd", "")
	other := testutil.CreateUser(t, env.usrRepo, "Other", "other@test.cd", "")
	gl := testutil.CreateGoal(t, env.goalRepo, usr.ID, "Land an internship", goal.CategoryCareer, false, 40)

	t.Run("foreign goal is not found", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/goals/"+gl.ID, getToken(t, env.conf, other))
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)}, rec)
	})

	t.Run("delete", func(t *testing.T) {
		token := getToken(t, env.conf, usr)
		req, rec := newAuthRequest(http.MethodDelete, "/v1/goals/"+gl.ID, token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusNoContent, rec.Body.String())
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/goals", token)
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte(`{"goals":[]}`)}, rec)
	})
}
