package models

import "fmt"

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return Priority(s), nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

type Status string

const (
	StatusActive    Status = "Active"
	StatusOverdue   Status = "Overdue"
	StatusCompleted Status = "Completed"
	StatusLate      Status = "Late"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusOverdue, StatusCompleted, StatusLate:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Done reports whether the status marks the task as finished.
// Active/Overdue are the "not done" pair, Completed/Late the "done" pair.
func (s Status) Done() bool {
	return s == StatusCompleted || s == StatusLate
}

type SortOrder string

const (
	SortAscCreationTime  SortOrder = "AscCreationTime"
	SortDescCreationTime SortOrder = "DescCreationTime"
	SortAscDeadline      SortOrder = "AscDeadline"
	SortDescDeadline     SortOrder = "DescDeadline"
)

// ParseSortOrder defaults to DescCreationTime when no order is given.
func ParseSortOrder(s string) (SortOrder, error) {
	if s == "" {
		return SortDescCreationTime, nil
	}
	switch SortOrder(s) {
	case SortAscCreationTime, SortDescCreationTime, SortAscDeadline, SortDescDeadline:
		return SortOrder(s), nil
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}
