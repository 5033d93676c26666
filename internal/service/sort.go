package service

import (
	"sort"

	"github.com/ToDoList/task-tracker/internal/models"
)

// SortSummaries orders the slice in place by the given strategy. The
// sort is stable. For both deadline orders a task without a deadline
// sorts after every task that has one.
func SortSummaries(items []models.TaskSummary, order models.SortOrder) {
	var less func(a, b models.TaskSummary) bool

	switch order {
	case models.SortAscCreationTime:
		less = func(a, b models.TaskSummary) bool { return a.CreateTime.Before(b.CreateTime) }
	case models.SortAscDeadline:
		less = func(a, b models.TaskSummary) bool { return deadlineLess(a, b, false) }
	case models.SortDescDeadline:
		less = func(a, b models.TaskSummary) bool { return deadlineLess(a, b, true) }
	default: // DescCreationTime
		less = func(a, b models.TaskSummary) bool { return b.CreateTime.Before(a.CreateTime) }
	}

	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

func deadlineLess(a, b models.TaskSummary, desc bool) bool {
	switch {
	case a.Deadline == nil && b.Deadline == nil:
		return false
	case a.Deadline == nil:
		return false
	case b.Deadline == nil:
		return true
	}
	if desc {
		return b.Deadline.Before(*a.Deadline)
	}
	return a.Deadline.Before(*b.Deadline)
}
