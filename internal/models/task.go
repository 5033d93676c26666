package models

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

const DeadlineLayout = "2006-01-02"

type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Status      Status
	Priority    Priority
	Deadline    *time.Time
	CreateTime  time.Time
	UpdateTime  *time.Time
}

// TaskCreateModel carries the caller-supplied fields for a new task.
// Nil Priority/Deadline means "derive from title macros".
type TaskCreateModel struct {
	Title       string
	Description string
	Priority    *Priority
	Deadline    *time.Time
}

type EditTaskModel struct {
	Title       string
	Description string
	Status      Status
	Priority    *Priority
	Deadline    *time.Time
}

// TaskModel is the full view returned by a single-task read.
type TaskModel struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	Deadline    *string    `json:"deadline"`
	CreateTime  time.Time  `json:"create_time"`
	UpdateTime  *time.Time `json:"update_time"`
}

func NewTaskModel(t Task) TaskModel {
	return TaskModel{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		Deadline:    formatDeadline(t.Deadline),
		CreateTime:  t.CreateTime,
		UpdateTime:  t.UpdateTime,
	}
}

// TaskSummary is the listing projection. It is derived on every list
// call and never persisted on its own.
type TaskSummary struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Deadline   *time.Time `json:"deadline"`
	Priority   Priority   `json:"priority"`
	Status     Status     `json:"status"`
	CreateTime time.Time  `json:"create_time"`
	DueIn      string     `json:"due_in,omitempty"`
}

func Summarize(t Task) TaskSummary {
	s := TaskSummary{
		ID:         t.ID,
		Title:      t.Title,
		Deadline:   t.Deadline,
		Priority:   t.Priority,
		Status:     t.Status,
		CreateTime: t.CreateTime,
	}
	if t.Deadline != nil {
		s.DueIn = humanize.Time(*t.Deadline)
	}
	return s
}

func formatDeadline(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format(DeadlineLayout)
	return &s
}
