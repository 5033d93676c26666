package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ToDoList/task-tracker/internal/models"
	"github.com/google/uuid"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(session *models.Session) error {
	query := `INSERT INTO sessions (token, user_id, created_at) VALUES (?, ?, ?)`

	_, err := r.db.Exec(query,
		session.Token,
		session.UserID.String(),
		session.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("Error trying to create session: %w", err)
	}
	return nil
}

// FindUserByToken resolves a bearer token to its user id. The bool is
// false when the token is unknown.
func (r *SessionRepository) FindUserByToken(token string) (uuid.UUID, bool, error) {
	query := `SELECT user_id FROM sessions WHERE token = ?`

	var idStr string
	err := r.db.QueryRow(query, token).Scan(&idStr)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("Error trying to get session: %w", err)
	}

	userID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("Error trying to parse user id: %w", err)
	}
	return userID, true, nil
}
