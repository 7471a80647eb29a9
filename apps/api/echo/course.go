package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trackademic/trackademic/core/assignment"
	"github.com/trackademic/trackademic/core/course"
	"github.com/trackademic/trackademic/core/metrics"
)

type courseAPI struct {
	svc           *course.Service
	assignmentSvc *assignment.Service
	validate      *validator.Validate
}

func registerCourseAPI(g *echo.Group, deps ServerDeps) {
	api := courseAPI{svc: deps.CourseSvc, assignmentSvc: deps.AssignmentSvc, validate: deps.Validate}

	cg := g.Group("/courses")
	cg.GET("", api.query)
	cg.POST("", api.create)
}

func (api *courseAPI) query(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	reqCtx := ctx.Request().Context()

	courses, err := api.svc.Query(reqCtx, claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	if courses == nil {
		courses = []course.Course{}
	}

	asgs, err := api.assignmentSvc.Query(reqCtx, claims.Subject, assignment.QueryFilter{Status: assignment.StatusAll})
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	progress := metrics.CourseProgressByCourse(asgs)
	for i := range courses {
		courses[i].Progress = progress[courses[i].ID]
	}
	return ctx.JSON(http.StatusOK, echo.Map{"courses": courses})
}

func (api *courseAPI) create(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	var data course.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	crs, err := api.svc.Create(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"course": crs})
}
