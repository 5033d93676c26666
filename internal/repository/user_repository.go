package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ToDoList/task-tracker/internal/models"
	"github.com/google/uuid"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (id, login, password_hash, salt, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		user.ID.String(),
		user.Login,
		user.PasswordHash,
		user.Salt,
		user.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("Error trying to create user: %w", err)
	}
	return nil
}

// FindByLogin returns nil (no error) when no user has the login.
func (r *UserRepository) FindByLogin(login string) (*models.User, error) {
	query := `SELECT id, login, password_hash, salt, created_at FROM users WHERE login = ?`

	var (
		u     models.User
		idStr string
	)
	err := r.db.QueryRow(query, login).Scan(&idStr, &u.Login, &u.PasswordHash, &u.Salt, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Error trying to get user: %w", err)
	}

	if u.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("Error trying to parse user id: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) Exists(id uuid.UUID) (bool, error) {
	query := `SELECT COUNT(1) FROM users WHERE id = ?`

	var count int
	if err := r.db.QueryRow(query, id.String()).Scan(&count); err != nil {
		return false, fmt.Errorf("Error trying to check user: %w", err)
	}
	return count > 0, nil
}
