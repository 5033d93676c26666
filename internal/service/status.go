package service

import (
	"time"

	"github.com/ToDoList/task-tracker/internal/models"
)

// ResolveStatus computes the status stored on an edit. The caller's
// requested status only decides which pair applies (not-done vs done);
// the deadline decides the refinement within the pair. Comparison is by
// calendar date, a deadline of today is not yet past.
func ResolveStatus(requested models.Status, deadline *time.Time, today time.Time) models.Status {
	past := deadlinePassed(deadline, today)

	switch requested {
	case models.StatusActive, models.StatusOverdue:
		if past {
			return models.StatusOverdue
		}
		return models.StatusActive
	default: // Completed, Late
		if past {
			return models.StatusLate
		}
		return models.StatusCompleted
	}
}

// RefreshStatus applies the read-triggered transition: an Active task
// whose deadline has passed becomes Overdue. Every other status is left
// alone. Returns true when the task changed.
func RefreshStatus(task *models.Task, today time.Time) bool {
	if task.Status != models.StatusActive {
		return false
	}
	if !deadlinePassed(task.Deadline, today) {
		return false
	}
	task.Status = models.StatusOverdue
	return true
}

func deadlinePassed(deadline *time.Time, today time.Time) bool {
	if deadline == nil {
		return false
	}
	d := truncateToDate(*deadline)
	return d.Before(truncateToDate(today))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
