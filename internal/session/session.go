// Package session derives the current-user identity from the configured
// API token.
package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"taskdeck/internal/task"
)

// Session is the explicit current-user capability handed to views. It
// exists so access guards can be tested without ambient state.
type Session struct {
	UserID   task.ID
	FullName string
	Role     task.Role
}

// CanReview reports whether the session may access the review workflow.
// This is a presentation-layer guard only; the backend enforces the
// authoritative check on every request.
func (s Session) CanReview() bool {
	return s.Role.Elevated()
}

// FromToken extracts the session from a JWT's claims. The signature is not
// verified: the signing key lives on the server and nothing here grants
// access the backend would not re-check. An empty token yields a zero
// session.
func FromToken(token string) (Session, error) {
	if token == "" {
		return Session{}, nil
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Session{}, fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, fmt.Errorf("unexpected claims type %T", parsed.Claims)
	}

	var s Session
	switch id := claims["user_id"].(type) {
	case string:
		s.UserID = task.ID(id)
	case float64:
		s.UserID = task.ID(fmt.Sprintf("%.0f", id))
	}
	if name, ok := claims["full_name"].(string); ok {
		s.FullName = name
	}
	if role, ok := claims["role"].(string); ok {
		s.Role = task.Role(role)
	}
	return s, nil
}
