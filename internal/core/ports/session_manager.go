package ports

import (
	"context"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
)

// RegisterInput carries the fields collected by the registration form.
type RegisterInput struct {
	Email  string
	Secret string
	Name   string
	Avatar string
}

// SessionManager is the single authority for "who is logged in".
type SessionManager interface {
	// Login validates credentials against the directory and, on success,
	// establishes a persisted session for a sanitized copy of the account.
	Login(ctx context.Context, email, secret string) (*domain.Session, error)

	// Register creates an end-user account and establishes a session for
	// it, exactly as Login would.
	Register(ctx context.Context, input RegisterInput) (*domain.Session, error)

	// Restore resolves a previously issued token back to its session.
	// It never fails: an absent, corrupt, or unreadable stored session
	// yields nil (logged out).
	Restore(ctx context.Context, token string) *domain.Session

	// Logout removes the persisted session. Idempotent.
	Logout(ctx context.Context, token string) error
}
