package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trackademic/trackademic/core/assignment"
	"github.com/trackademic/trackademic/core/course"
	"github.com/trackademic/trackademic/core/grade"
	"github.com/trackademic/trackademic/core/metrics"
)

type dashboardAPI struct {
	courseSvc     *course.Service
	assignmentSvc *assignment.Service
	gradeSvc      *grade.Service
}

func registerDashboardAPI(g *echo.Group, deps ServerDeps) {
	api := dashboardAPI{
		courseSvc:     deps.CourseSvc,
		assignmentSvc: deps.AssignmentSvc,
		gradeSvc:      deps.GradeSvc,
	}

	g.GET("/dashboard/stats", api.stats)
}

func (api *dashboardAPI) stats(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	reqCtx := ctx.Request().Context()

	courses, err := api.courseSvc.Query(reqCtx, claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	asgs, err := api.assignmentSvc.Query(reqCtx, claims.Subject, assignment.QueryFilter{Status: assignment.StatusAll})
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	pcts, err := api.gradeSvc.Percentages(reqCtx, claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying grades")
	}

	stats := metrics.ComputeStats(courses, asgs, pcts, time.Now())
	return ctx.JSON(http.StatusOK, echo.Map{"stats": stats})
}
