package tests

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/trackademic/trackademic/core/event"
	testutil "github.com/trackademic/trackademic/tests"
)

type (
	eventEnvelope struct {
		Event event.Event `json:"event"`
	}

	eventsEnvelope struct {
		Events []event.Event `json:"events"`
	}
)

func Test_eventAPI_create(t *testing.T) {
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
			body:     []byte(`{"type":"exam","date":"2026-10-12T00:00:00Z"}`),
			wantCode: http.StatusBadRequest, wantData: marshallObj(t, httpErr{Error: "this field is required"}),
		},
		{
			name: "date required", token: token,
			body:     []byte(`{"title":"Midterm","type":"exam"}`),
			wantCode: http.StatusBadRequest, wantData: marshallObj(t, httpErr{Error: "this field is required"}),
		},
		{
			name: "bad type", token: token,
			body:     []byte(`{"title":"Midterm","type":"party","date":"2026-10-12T00:00:00Z"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name: "duration too short", token: token,
			body:     []byte(`{"title":"Midterm","type":"exam","date":"2026-10-12T00:00:00Z","duration":10}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name: "duration too long", token: token,
			body:     []byte(`{"title":"Midterm","type":"exam","date":"2026-10-12T00:00:00Z","duration":481}`),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/events", tt.token, tt.body)
			env.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("ok: duration defaults to an hour", func(t *testing.T) {
		body := []byte(`{"title":"Midterm","type":"exam","date":"2026-10-12T00:00:00Z","time":"14:00"}`)
		req, rec := newAuthRequest(http.MethodPost, "/v1/events", token, body)
		env.server.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		var resp eventEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		if resp.Event.Duration != 60 {
			t.Errorf("duration = %v; want default 60", resp.Event.Duration)
		}
		if resp.Event.Time != "14:00" {
			t.Errorf("time = %q; want %q", resp.Event.Time, "14:00")
		}
		if resp.Event.Type != event.TypeExam {
			t.Errorf("type = %q; want %q", resp.Event.Type, event.TypeExam)
		}
	})
}

func Test_eventAPI_query(t *testing.T) {
	env := setup(t)
	usr := testutil.CreateUser(t, env.usrRepo, "User", "awe@test.cd", "")
	other := testutil.CreateUser(t, env.usrRepo, "Other", "other@test.cd", "")

	oct1 := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	oct31 := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)
	nov2 := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

	evt2 := testutil.CreateEvent(t, env.eventRepo, usr.ID, "Study group", event.TypeStudy, oct31)
	evt1 := testutil.CreateEvent(t, env.eventRepo, usr.ID, "Midterm", event.TypeExam, oct1)
	evt3 := testutil.CreateEvent(t, env.eventRepo, usr.ID, "Advising", event.TypeMeeting, nov2)
	testutil.CreateEvent(t, env.eventRepo, other.ID, "Kiln day", event.TypeEvent, oct1)

	token := getToken(t, env.conf, usr)

	tests := []httpTest{
		{
			name: "Auth required", path: "/v1/events",
			wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken),
		},
		{
			name: "All, date ascending", path: "/v1/events", token: token,
			wantCode: http.StatusOK, wantData: marshallObj(t, eventsEnvelope{Events: []event.Event{evt1, evt2, evt3}}),
		},
		{
			name: "Month bucket includes its last day", path: "/v1/events?month=10&year=2026", token: token,
			wantCode: http.StatusOK, wantData: marshallObj(t, eventsEnvelope{Events: []event.Event{evt1, evt2}}),
		},
		{
			name: "Next month", path: "/v1/events?month=11&year=2026", token: token,
			wantCode: http.StatusOK, wantData: marshallObj(t, eventsEnvelope{Events: []event.Event{evt3}}),
		},
		{
			name: "Empty month", path: "/v1/events?month=12&year=2026", token: token,
			wantCode: http.StatusOK, wantData: []byte(`{"events":[]}`),
		},
		{
			name: "Year alone does not bucket", path: "/v1/events?year=2026", token: token,
			wantCode: http.StatusOK, wantData: marshallObj(t, eventsEnvelope{Events: []event.Event{evt1, evt2, evt3}}),
		},
		{
			name: "Month alone does not bucket", path: "/v1/events?month=10", token: token,
			wantCode: http.StatusOK, wantData: marshallObj(t, eventsEnvelope{Events: []event.Event{evt1, evt2, evt3}}),
		},
		{
			name: "Month out of range", path: "/v1/events?month=13&year=2026", token: token,
			wantCode: http.StatusBadRequest,
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

func Test_eventAPI_destroy(t *testing.T) {
	env := setup(t)
	usr := testutil.CreateUser(t, env.usrRepo, "User", "awe@test.cd", "")
	other := testutil.CreateUser(t, env.usrRepo, "Other", "other@test.cd", "")
	evt := testutil.CreateEvent(t, env.eventRepo, usr.ID, "Midterm", event.TypeExam, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC))

	t.Run("foreign event is not found", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/events/"+evt.ID, getToken(t, env.conf, other))
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)}, rec)
	})

	t.Run("delete", func(t *testing.T) {
		token := getToken(t, env.conf, usr)
		req, rec := newAuthRequest(http.MethodDelete, "/v1/events/"+evt.ID, token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusNoContent, rec.Body.String())
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/events", token)
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte(`{"events":[]}`)}, rec)
	})
}
