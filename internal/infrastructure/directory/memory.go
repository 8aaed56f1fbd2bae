// Package directory provides the in-memory user directory used when no
// external database is configured. It is the default backend and the seam
// tests build on.
package directory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
)

// Memory is a mutex-guarded in-memory user directory. Identifiers come
// from a monotonic counter, decoupled from the collection size, so they
// stay unique even if deletions are ever introduced.
type Memory struct {
	mu      sync.Mutex
	byEmail map[string]*domain.User
	nextID  int
}

func NewMemory() *Memory {
	return &Memory{byEmail: make(map[string]*domain.User), nextID: 1}
}

func (m *Memory) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

// Insert stores the user under a freshly assigned identifier. The
// duplicate-email check and the append happen under one lock, so
// concurrent registrations of the same email cannot both succeed.
func (m *Memory) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}

	clone := *user
	clone.ID = strconv.Itoa(m.nextID)
	m.nextID++
	m.byEmail[clone.Email] = &clone

	out := clone
	return &out, nil
}

// List returns every record, ordered by identifier.
func (m *Memory) List(_ context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.User, 0, len(m.byEmail))
	for _, u := range m.byEmail {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := strconv.Atoi(out[i].ID)
		b, _ := strconv.Atoi(out[j].ID)
		return a < b
	})
	return out, nil
}

func (m *Memory) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.byEmail)), nil
}
