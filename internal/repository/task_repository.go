package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ToDoList/task-tracker/internal/models"
	"github.com/google/uuid"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// FindByID returns nil (no error) when the task does not exist.
func (r *TaskRepository) FindByID(id uuid.UUID) (*models.Task, error) {
	query := `
		SELECT id, user_id, title, description, status, priority, deadline, create_time, update_time
		FROM tasks WHERE id = ?
	`

	task, err := scanTask(r.db.QueryRow(query, id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Error trying to get task: %w", err)
	}
	return task, nil
}

func (r *TaskRepository) FindByUser(userID uuid.UUID) ([]models.Task, error) {
	query := `
		SELECT id, user_id, title, description, status, priority, deadline, create_time, update_time
		FROM tasks WHERE user_id = ?
	`

	rows, err := r.db.Query(query, userID.String())
	if err != nil {
		return nil, fmt.Errorf("Error trying to get tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

// Save is an upsert keyed by id.
func (r *TaskRepository) Save(task *models.Task) error {
	query := `
		INSERT INTO tasks (id, user_id, title, description, status, priority, deadline, create_time, update_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			status = excluded.status,
			priority = excluded.priority,
			deadline = excluded.deadline,
			update_time = excluded.update_time
	`

	_, err := r.db.Exec(query,
		task.ID.String(),
		task.UserID.String(),
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		task.Deadline,
		task.CreateTime,
		task.UpdateTime,
	)

	if err != nil {
		return fmt.Errorf("Error trying to save task: %w", err)
	}
	return nil
}

func (r *TaskRepository) DeleteByID(id uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = ?`
	_, err := r.db.Exec(query, id.String())
	if err != nil {
		return fmt.Errorf("Error trying to delete task: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var (
		t              models.Task
		idStr, userStr string
		status         string
		priority       string
	)

	err := row.Scan(
		&idStr,
		&userStr,
		&t.Title,
		&t.Description,
		&status,
		&priority,
		&t.Deadline,
		&t.CreateTime,
		&t.UpdateTime,
	)
	if err != nil {
		return nil, err
	}

	if t.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("Error trying to parse task id: %w", err)
	}
	if t.UserID, err = uuid.Parse(userStr); err != nil {
		return nil, fmt.Errorf("Error trying to parse user id: %w", err)
	}
	t.Status = models.Status(status)
	t.Priority = models.Priority(priority)
	return &t, nil
}
