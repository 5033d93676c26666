package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenResolver turns a bearer token into a user id. The bool is false
// for unknown tokens.
type TokenResolver interface {
	FindUserByToken(token string) (uuid.UUID, bool, error)
}

// RequireAuth resolves the Authorization bearer token and stores the
// user id on the request context. The id never travels further than the
// handler; services take it as an explicit parameter.
func RequireAuth(sessions TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			userID, ok, err := sessions.FindUserByToken(token)
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, "Error trying to resolve token: "+err.Error())
				return
			}
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "unknown token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated caller's id. Only valid on requests
// that went through RequireAuth.
func UserID(r *http.Request) uuid.UUID {
	id, _ := r.Context().Value(userIDKey).(uuid.UUID)
	return id
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
