package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

const defaultKeyPrefix = "session:"

// SessionManager implements login, registration, logout and session
// restoration over a user directory and a persistent key-value store.
type SessionManager struct {
	directory ports.UserDirectory
	store     ports.SessionStore
	keyPrefix string
	logger    zerolog.Logger
}

func NewSessionManager(directory ports.UserDirectory, store ports.SessionStore, keyPrefix string, logger zerolog.Logger) *SessionManager {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &SessionManager{directory: directory, store: store, keyPrefix: keyPrefix, logger: logger}
}

// Login validates the credential pair against the directory. Both an
// unknown email and a wrong secret yield the same ErrInvalidCredentials,
// so a caller cannot probe which accounts exist.
func (m *SessionManager) Login(ctx context.Context, email, secret string) (*domain.Session, error) {
	if email == "" || secret == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := m.directory.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.SecretHash), []byte(secret)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return m.establish(ctx, *user)
}

// Register creates an end-user account and establishes a session for it.
// The role is always end-user for this flow; a duplicate email is reported
// as domain.ErrUserExists with no directory mutation.
func (m *SessionManager) Register(ctx context.Context, input ports.RegisterInput) (*domain.Session, error) {
	if input.Email == "" || input.Secret == "" || input.Name == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	avatar := input.Avatar
	if avatar == "" {
		avatar = domain.DefaultAvatar
	}

	user := &domain.User{
		Email:      input.Email,
		SecretHash: string(hash),
		Role:       domain.RoleUser,
		Name:       input.Name,
		Avatar:     avatar,
	}

	created, err := m.directory.Insert(ctx, user)
	if err != nil {
		if err == domain.ErrUserExists {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	return m.establish(ctx, *created)
}

// Restore resolves a token to its persisted session. It never fails: an
// absent key, a store fault, or a corrupt stored value all resolve to nil,
// presenting the caller as logged out.
func (m *SessionManager) Restore(ctx context.Context, token string) *domain.Session {
	if token == "" {
		return nil
	}

	raw, err := m.store.Get(ctx, m.keyPrefix+token)
	if err != nil {
		if err != domain.ErrSessionNotFound {
			m.logger.Warn().Err(err).Msg("session restore failed, treating as logged out")
		}
		return nil
	}

	user, ok := decodeSessionUser(raw)
	if !ok {
		// Tokens are bearer credentials; only a short prefix may be logged.
		m.logger.Warn().Str("token_prefix", tokenPrefix(token)).Msg("corrupt stored session, treating as logged out")
		return nil
	}

	return &domain.Session{Token: token, User: *user}
}

// Logout removes the persisted session. Removing a session that does not
// exist is not an error.
func (m *SessionManager) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.store.Remove(ctx, m.keyPrefix+token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// establish mints a token, persists the sanitized user under it, and
// returns the resulting session. Shared tail of Login and Register.
func (m *SessionManager) establish(ctx context.Context, user domain.User) (*domain.Session, error) {
	sanitized := user.Sanitized()

	raw, err := json.Marshal(sanitized)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}

	token := uuid.NewString()
	if err := m.store.Set(ctx, m.keyPrefix+token, string(raw)); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	return &domain.Session{Token: token, User: sanitized}, nil
}

// tokenPrefix returns at most the first 8 characters of a token, enough
// to correlate log lines without exposing the credential itself.
func tokenPrefix(token string) string {
	if len(token) > 8 {
		return token[:8]
	}
	return token
}

// decodeSessionUser parses a stored session value. A value that is not
// valid JSON or is missing the identity fields is rejected so that
// restoration fails open to the logged-out state.
func decodeSessionUser(raw string) (*domain.User, bool) {
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false
	}
	if user.ID == "" || user.Email == "" {
		return nil, false
	}
	return &user, true
}
