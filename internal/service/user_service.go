package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ToDoList/task-tracker/internal/models"
	"github.com/google/uuid"
)

type UserAccountStore interface {
	Create(user *models.User) error
	FindByLogin(login string) (*models.User, error)
}

type SessionStore interface {
	Create(session *models.Session) error
	FindUserByToken(token string) (uuid.UUID, bool, error)
}

// UserService handles registration and login. Both return a fresh
// bearer token; the API middleware resolves tokens back to user ids so
// the task service only ever sees an explicit user id.
type UserService struct {
	users    UserAccountStore
	sessions SessionStore
	now      func() time.Time
}

func NewUserService(users UserAccountStore, sessions SessionStore) *UserService {
	return &UserService{
		users:    users,
		sessions: sessions,
		now:      time.Now,
	}
}

func (s *UserService) Register(login, password string) (string, error) {
	existing, err := s.users.FindByLogin(login)
	if err != nil {
		return "", fmt.Errorf("error trying to look up login: %w", err)
	}
	if existing != nil {
		return "", fmt.Errorf("%w: login %q is taken", ErrConflict, login)
	}

	salt := uuid.NewString()
	user := &models.User{
		ID:           uuid.New(),
		Login:        login,
		PasswordHash: hashPassword(salt, password),
		Salt:         salt,
		CreatedAt:    s.now(),
	}

	if err := s.users.Create(user); err != nil {
		return "", fmt.Errorf("error trying to create user: %w", err)
	}
	return s.issueToken(user.ID)
}

// Login folds "unknown login" and "wrong password" into the same
// ErrNotFound so the response does not reveal which part failed.
func (s *UserService) Login(login, password string) (string, error) {
	user, err := s.users.FindByLogin(login)
	if err != nil {
		return "", fmt.Errorf("error trying to look up login: %w", err)
	}
	if user == nil {
		return "", fmt.Errorf("%w: user", ErrNotFound)
	}

	hash := hashPassword(user.Salt, password)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(user.PasswordHash)) != 1 {
		return "", fmt.Errorf("%w: user", ErrNotFound)
	}

	return s.issueToken(user.ID)
}

func (s *UserService) issueToken(userID uuid.UUID) (string, error) {
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: s.now(),
	}
	if err := s.sessions.Create(session); err != nil {
		return "", fmt.Errorf("error trying to create session: %w", err)
	}
	return session.Token, nil
}

func hashPassword(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}
