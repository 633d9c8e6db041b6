// Package review computes the review queue: which completed tasks are
// awaiting a quality review and which already have one.
package review

import (
	"time"

	"taskdeck/internal/task"
)

// DateLayout is the calendar-date form used by the date filter.
const DateLayout = "2006-01-02"

// Filter selects one partition of the review queue, optionally narrowed by
// analyst and creation date. The zero value selects all pending reviews.
type Filter struct {
	// Reviewed selects the reviewed partition instead of the pending one.
	Reviewed bool
	// Analyst, when non-empty, restricts to tasks assigned to that user id.
	Analyst task.ID
	// Date, when non-empty, restricts to tasks created on that local
	// calendar date (YYYY-MM-DD).
	Date string
	// Loc is the timezone used to interpret creation timestamps for the
	// date filter. Nil means time.Local.
	Loc *time.Location
}

// Apply returns the tasks matching f, preserving input order. Only tasks
// with status Completed are ever eligible; the remaining conditions AND
// together.
func Apply(tasks []task.Task, f Filter) []task.Task {
	loc := f.Loc
	if loc == nil {
		loc = time.Local
	}

	matched := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != task.StatusCompleted {
			continue
		}
		if t.Reviewed() != f.Reviewed {
			continue
		}
		if !f.Analyst.IsZero() && t.AssignedUserID != f.Analyst {
			continue
		}
		if f.Date != "" && t.CreatedAt.In(loc).Format(DateLayout) != f.Date {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}
