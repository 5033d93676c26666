package service

import (
	"fmt"
	"time"

	"github.com/ToDoList/task-tracker/internal/models"
	"github.com/google/uuid"
)

// TaskStore is the persistence contract the task service depends on.
// FindByID returns nil without error when no task has the id.
type TaskStore interface {
	FindByID(id uuid.UUID) (*models.Task, error)
	FindByUser(userID uuid.UUID) ([]models.Task, error)
	Save(task *models.Task) error
	DeleteByID(id uuid.UUID) error
}

type UserStore interface {
	Exists(id uuid.UUID) (bool, error)
}

// TaskService owns the task lifecycle: macro interpretation on create
// and edit, deadline-driven status transitions, ownership checks and
// listing. Note that GetTask has a write side effect: it persists the
// Active→Overdue refresh. ListTasks deliberately does not refresh and
// returns statuses as stored.
type TaskService struct {
	users UserStore
	tasks TaskStore
	now   func() time.Time
}

func NewTaskService(users UserStore, tasks TaskStore) *TaskService {
	return &TaskService{
		users: users,
		tasks: tasks,
		now:   time.Now,
	}
}

func (s *TaskService) CreateTask(userID uuid.UUID, in models.TaskCreateModel) (uuid.UUID, error) {
	ok, err := s.users.Exists(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error trying to look up user: %w", err)
	}
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	title, priority, deadline, err := s.applyTitleMacros(in.Title, in.Priority, in.Deadline)
	if err != nil {
		return uuid.Nil, err
	}

	task := &models.Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: in.Description,
		Status:      models.StatusActive,
		Priority:    priority,
		Deadline:    deadline,
		CreateTime:  s.now(),
	}

	if err := s.tasks.Save(task); err != nil {
		return uuid.Nil, fmt.Errorf("error trying to save task: %w", err)
	}
	return task.ID, nil
}

func (s *TaskService) EditTask(taskID, userID uuid.UUID, in models.EditTaskModel) error {
	task, err := s.tasks.FindByID(taskID)
	if err != nil {
		return fmt.Errorf("error trying to look up task: %w", err)
	}
	if task == nil {
		return fmt.Errorf("%w: task %s", ErrNotFound, taskID)
	}

	ok, err := s.users.Exists(userID)
	if err != nil {
		return fmt.Errorf("error trying to look up user: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	// Macro interpretation precedes the access check, matching the
	// create path's validation order.
	title, priority, deadline, err := s.applyTitleMacros(in.Title, in.Priority, in.Deadline)
	if err != nil {
		return err
	}

	if task.UserID != userID {
		return fmt.Errorf("%w: task %s belongs to another user", ErrPermissionDenied, taskID)
	}

	now := s.now()
	task.Title = title
	task.Description = in.Description
	task.Deadline = deadline
	task.Priority = priority
	task.Status = ResolveStatus(in.Status, deadline, now)
	task.UpdateTime = &now

	if err := s.tasks.Save(task); err != nil {
		return fmt.Errorf("error trying to save task: %w", err)
	}
	return nil
}

func (s *TaskService) DeleteTask(taskID, userID uuid.UUID) error {
	if _, err := s.loadTask(taskID, userID); err != nil {
		return err
	}
	if err := s.tasks.DeleteByID(taskID); err != nil {
		return fmt.Errorf("error trying to delete task: %w", err)
	}
	return nil
}

func (s *TaskService) GetTask(taskID, userID uuid.UUID) (models.TaskModel, error) {
	task, err := s.loadTask(taskID, userID)
	if err != nil {
		return models.TaskModel{}, err
	}

	if RefreshStatus(task, s.now()) {
		if err := s.tasks.Save(task); err != nil {
			return models.TaskModel{}, fmt.Errorf("error trying to save task: %w", err)
		}
	}

	return models.NewTaskModel(*task), nil
}

func (s *TaskService) ListTasks(userID uuid.UUID, order models.SortOrder) ([]models.TaskSummary, error) {
	ok, err := s.users.Exists(userID)
	if err != nil {
		return nil, fmt.Errorf("error trying to look up user: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	tasks, err := s.tasks.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error trying to list tasks: %w", err)
	}

	summaries := make([]models.TaskSummary, 0, len(tasks))
	for _, t := range tasks {
		summaries = append(summaries, models.Summarize(t))
	}

	SortSummaries(summaries, order)
	return summaries, nil
}

// applyTitleMacros fills unset priority/deadline from title macros,
// threading the cleaned title through both extractors so that both
// macros end up stripped. Explicitly supplied values win and skip
// extraction for that macro.
func (s *TaskService) applyTitleMacros(title string, priorityIn *models.Priority, deadlineIn *time.Time) (string, models.Priority, *time.Time, error) {
	priority := models.PriorityMedium
	if priorityIn != nil {
		priority = *priorityIn
	} else {
		cleaned, p, ok := ExtractPriority(title)
		title = cleaned
		if ok {
			priority = p
		}
	}

	deadline := deadlineIn
	if deadlineIn == nil {
		cleaned, d, err := ExtractDeadline(title)
		if err != nil {
			return "", "", nil, err
		}
		title = cleaned
		deadline = d
	}

	return title, priority, deadline, nil
}

// loadTask fetches a task and verifies both existence and ownership,
// in the same precondition order for delete and get.
func (s *TaskService) loadTask(taskID, userID uuid.UUID) (*models.Task, error) {
	task, err := s.tasks.FindByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("error trying to look up task: %w", err)
	}
	if task == nil {
		return nil, fmt.Errorf("%w: task %s", ErrNotFound, taskID)
	}

	ok, err := s.users.Exists(userID)
	if err != nil {
		return nil, fmt.Errorf("error trying to look up user: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	if task.UserID != userID {
		return nil, fmt.Errorf("%w: task %s belongs to another user", ErrPermissionDenied, taskID)
	}
	return task, nil
}
