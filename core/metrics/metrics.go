// Package metrics derives presentation-ready numbers from a user's raw
// entity collections. Every function is pure, synchronous and total over
// well-typed input; validation happens upstream.
package metrics

import (
	"math"
	"time"

	"github.com/trackademic/trackademic/core/assignment"
	"github.com/trackademic/trackademic/core/course"
	"github.com/trackademic/trackademic/core/goal"
)

// UpcomingWindow is how far ahead an incomplete assignment still counts
// as an upcoming deadline.
const UpcomingWindow = 7 * 24 * time.Hour

// Percentage computes score/points*100. Points must be > 0 (validated
// upstream); score may exceed points (extra credit), no clamping applied.
func Percentage(score, points float64) float64 {
	return score / points * 100
}

// LetterGrade buckets a percentage into A-F. Boundaries are inclusive at
// the lower bound of each band.
func LetterGrade(pct float64) string {
	switch {
	case pct >= 90:
		return "A"
	case pct >= 80:
		return "B"
	case pct >= 70:
		return "C"
	case pct >= 60:
		return "D"
	default:
		return "F"
	}
}

// CourseProgress is the completed fraction of a course's assignments,
// in [0, 100]. A course with no assignments is 0, never NaN.
func CourseProgress(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// CourseProgressByCourse computes every course's progress from the user's
// assignments, keyed by course ID. Courses without assignments are absent
// from the result, matching CourseProgress's zero.
func CourseProgressByCourse(assignments []assignment.Assignment) map[string]float64 {
	completed := make(map[string]int)
	total := make(map[string]int)
	for _, asg := range assignments {
		total[asg.CourseID]++
		if asg.Completed {
			completed[asg.CourseID]++
		}
	}

	progress := make(map[string]float64, len(total))
	for id, n := range total {
		progress[id] = CourseProgress(completed[id], n)
	}
	return progress
}

// AverageGrade is the arithmetic mean of the percentages, rounded to one
// decimal place. Empty input is 0.
func AverageGrade(percentages []float64) float64 {
	if len(percentages) == 0 {
		return 0
	}
	var sum float64
	for _, pct := range percentages {
		sum += pct
	}
	return math.Round(sum/float64(len(percentages))*10) / 10
}

// UpcomingDeadlines counts incomplete assignments due within
// [now, now+UpcomingWindow], both ends inclusive.
func UpcomingDeadlines(assignments []assignment.Assignment, now time.Time) int {
	limit := now.Add(UpcomingWindow)
	var count int
	for _, asg := range assignments {
		if asg.Completed {
			continue
		}
		if asg.DueDate.Before(now) || asg.DueDate.After(limit) {
			continue
		}
		count++
	}
	return count
}

// MonthRange returns the inclusive bounds of a calendar month in UTC:
// [first day 00:00:00, last day 23:59:59.999999999]. Month is 1-indexed.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// InMonth reports whether t falls within the given 1-indexed month.
func InMonth(t time.Time, year, month int) bool {
	start, end := MonthRange(year, month)
	return !t.Before(start) && !t.After(end)
}

// Stats is the dashboard aggregate.
type Stats struct {
	TotalCourses         int     `json:"totalCourses"`
	TotalAssignments     int     `json:"totalAssignments"`
	CompletedAssignments int     `json:"completedAssignments"`
	AverageGrade         float64 `json:"averageGrade"`
	UpcomingDeadlines    int     `json:"upcomingDeadlines"`
}

// ComputeStats derives the dashboard aggregate from the user's collections.
// gradePcts carries the user's Grade.percentage values.
func ComputeStats(courses []course.Course, assignments []assignment.Assignment, gradePcts []float64, now time.Time) Stats {
	var completed int
	for _, asg := range assignments {
		if asg.Completed {
			completed++
		}
	}
	return Stats{
		TotalCourses:         len(courses),
		TotalAssignments:     len(assignments),
		CompletedAssignments: completed,
		AverageGrade:         AverageGrade(gradePcts),
		UpcomingDeadlines:    UpcomingDeadlines(assignments, now),
	}
}

// GoalSummary aggregates a user's goals for the goals page header.
type GoalSummary struct {
	Total              int `json:"total"`
	Active             int `json:"active"`
	Completed          int `json:"completed"`
	HighPriorityActive int `json:"highPriorityActive"`
}

// SummarizeGoals buckets goals by completion and priority.
func SummarizeGoals(goals []goal.Goal) GoalSummary {
	sum := GoalSummary{Total: len(goals)}
	for _, gl := range goals {
		if gl.Completed {
			sum.Completed++
			continue
		}
		sum.Active++
		if gl.Priority == assignment.PriorityHigh {
			sum.HighPriorityActive++
		}
	}
	return sum
}
