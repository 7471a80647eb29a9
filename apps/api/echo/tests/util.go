package tests

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"sync"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	echoapi "github.com/trackademic/trackademic/apps/api/echo"
	"github.com/trackademic/trackademic/core"
	"github.com/trackademic/trackademic/core/assignment"
	"github.com/trackademic/trackademic/core/course"
	"github.com/trackademic/trackademic/core/event"
	"github.com/trackademic/trackademic/core/goal"
	"github.com/trackademic/trackademic/core/grade"
	"github.com/trackademic/trackademic/core/user"
	emailsvc "github.com/trackademic/trackademic/services/email"
	dummydb "github.com/trackademic/trackademic/storage/database/dummy"
	testutil "github.com/trackademic/trackademic/tests"
)

var (
	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errNotFound     = httpErr{Error: "not found"}

	pwdsOnce sync.Once
)

// testEnv wires a full API server on in-memory repositories.
type testEnv struct {
	conf   *core.Config
	server *echoapi.Server

	usrRepo        user.Repository
	courseRepo     course.Repository
	assignmentRepo assignment.Repository
	gradeRepo      grade.Repository
	goalRepo       goal.Repository
	eventRepo      event.Repository

	usrSvc *user.Service
}

func setup(t *testing.T) *testEnv {
	t.Helper()

	conf := testutil.NewConfig()
	logger := testLogger{std: log.New(os.Stdout, "TEST : ", log.LstdFlags)}

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}

	env := &testEnv{
		conf:           conf,
		usrRepo:        dummydb.NewUserRepository(db),
		courseRepo:     dummydb.NewCourseRepository(db),
		assignmentRepo: dummydb.NewAssignmentRepository(db),
		gradeRepo:      dummydb.NewGradeRepository(db),
		goalRepo:       dummydb.NewGoalRepository(db),
		eventRepo:      dummydb.NewEventRepository(db),
	}

	emailsvc.ClearSentMessages()
	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	env.usrSvc = user.NewService(env.usrRepo, mailSvc, conf)

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	pwdsOnce.Do(func() { user.LoadCommonPasswords(logger) })

	env.server = echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:          conf,
			Logger:        logger,
			UserSvc:       env.usrSvc,
			CourseSvc:     course.NewService(env.courseRepo),
			AssignmentSvc: assignment.NewService(env.assignmentRepo, env.courseRepo),
			GradeSvc:      grade.NewService(env.gradeRepo, env.assignmentRepo),
			GoalSvc:       goal.NewService(env.goalRepo),
			EventSvc:      event.NewService(env.eventRepo),
			Validate:      validate,
			Translator:    translator,
		},
	)
	return env
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

type testLogger struct {
	std *log.Logger
}

var _ core.Logger = (*testLogger)(nil)

func (l testLogger) Debug(msg string, args ...interface{}) { l.print(msg, args) }
func (l testLogger) Info(msg string, args ...interface{})  { l.print(msg, args) }
func (l testLogger) Warn(msg string, args ...interface{})  { l.print(msg, args) }
func (l testLogger) Error(msg string, args ...interface{}) { l.print(msg, args) }
func (l testLogger) Fatal(msg string, args ...interface{}) { l.std.Fatal(msg) }

func (l testLogger) print(msg string, args []interface{}) {
	l.std.Println(msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, conf *core.Config, usr user.User) string {
	t.Helper()

	claims := echoapi.GetUserClaims(conf, usr)
	token, err := echoapi.GenerateToken(conf, claims)
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()

	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
