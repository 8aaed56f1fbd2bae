package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

type stubDirectory struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int
}

func newStubDirectory() *stubDirectory {
	return &stubDirectory{users: make(map[string]*domain.User), nextID: 1}
}

func (d *stubDirectory) seed(email, secret, role, name string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	u, _ := d.Insert(context.Background(), &domain.User{
		Email:      email,
		SecretHash: string(hash),
		Role:       role,
		Name:       name,
	})
	return u
}

func (d *stubDirectory) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if u, ok := d.users[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (d *stubDirectory) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	clone.ID = strconv.Itoa(d.nextID)
	d.nextID++
	d.users[user.Email] = &clone
	out := clone
	return &out, nil
}

func (d *stubDirectory) List(_ context.Context) ([]domain.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.User, 0, len(d.users))
	for _, u := range d.users {
		out = append(out, *u)
	}
	return out, nil
}

func (d *stubDirectory) Count(_ context.Context) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return int64(len(d.users)), nil
}

type stubStore struct {
	mu     sync.Mutex
	values map[string]string
}

func newStubStore() *stubStore {
	return &stubStore{values: make(map[string]string)}
}

func (s *stubStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	return "", domain.ErrSessionNotFound
}

func (s *stubStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *stubStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func newTestManager() (*SessionManager, *stubDirectory, *stubStore) {
	dir := newStubDirectory()
	store := newStubStore()
	return NewSessionManager(dir, store, "session:", zerolog.Nop()), dir, store
}

func TestSessionManager_Login_Success(t *testing.T) {
	m, dir, _ := newTestManager()
	seeded := dir.seed("admin@example.com", "admin123", domain.RoleAdmin, "Admin User")

	sess, err := m.Login(context.Background(), "admin@example.com", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if sess.Token == "" {
		t.Fatalf("expected a session token")
	}
	if sess.User.ID != seeded.ID || sess.User.Email != seeded.Email || sess.User.Role != seeded.Role {
		t.Fatalf("session user does not match directory record: %+v", sess.User)
	}
	if sess.User.SecretHash != "" {
		t.Fatalf("session must carry a sanitized copy")
	}
	if !sess.IsAdmin() {
		t.Fatalf("expected IsAdmin true for admin session")
	}
	if got := sess.DashboardPath(); got != "/admin" {
		t.Fatalf("expected admin dashboard route, got %q", got)
	}
}

func TestSessionManager_Login_GenericFailureMessage(t *testing.T) {
	m, dir, _ := newTestManager()
	dir.seed("admin@example.com", "admin123", domain.RoleAdmin, "Admin User")

	// Unknown email and known email with wrong secret must be
	// indistinguishable to the caller.
	_, unknownErr := m.Login(context.Background(), "ghost@example.com", "whatever")
	_, wrongErr := m.Login(context.Background(), "admin@example.com", "wrong")

	if unknownErr != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if wrongErr != domain.ErrInvalidCredentials {
		t.Fatalf("wrong secret: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("error messages differ: %q vs %q", unknownErr, wrongErr)
	}
}

func TestSessionManager_Login_AllSeededUsers(t *testing.T) {
	m, dir, _ := newTestManager()
	dir.seed("admin@example.com", "admin123", domain.RoleAdmin, "Admin User")
	dir.seed("coach@example.com", "coach123", domain.RoleCoach, "Sarah Johnson")
	dir.seed("user@example.com", "user123", domain.RoleUser, "John Doe")

	cases := []struct {
		email, secret, role string
	}{
		{"admin@example.com", "admin123", domain.RoleAdmin},
		{"coach@example.com", "coach123", domain.RoleCoach},
		{"user@example.com", "user123", domain.RoleUser},
	}
	for _, tc := range cases {
		sess, err := m.Login(context.Background(), tc.email, tc.secret)
		if err != nil {
			t.Fatalf("login %s: %v", tc.email, err)
		}
		if sess.User.Role != tc.role {
			t.Fatalf("login %s: expected role %s, got %s", tc.email, tc.role, sess.User.Role)
		}
	}
}

func TestSessionManager_Register_Success(t *testing.T) {
	m, dir, _ := newTestManager()

	before, _ := dir.Count(context.Background())
	sess, err := m.Register(context.Background(), ports.RegisterInput{
		Email:  "new@example.com",
		Secret: "s3cret",
		Name:   "New User",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	after, _ := dir.Count(context.Background())

	if after != before+1 {
		t.Fatalf("expected exactly one new record, count %d -> %d", before, after)
	}
	if sess.User.Role != domain.RoleUser {
		t.Fatalf("self-registered accounts must get the end-user role, got %s", sess.User.Role)
	}
	if sess.User.Avatar != domain.DefaultAvatar {
		t.Fatalf("expected default avatar, got %q", sess.User.Avatar)
	}
	if sess.User.SecretHash != "" {
		t.Fatalf("session copy must not carry the secret")
	}

	// Stored record keeps the hash, never the plaintext.
	stored, err := dir.FindByEmail(context.Background(), "new@example.com")
	if err != nil {
		t.Fatalf("find after register: %v", err)
	}
	if stored.SecretHash == "" || stored.SecretHash == "s3cret" {
		t.Fatalf("directory record must hold a hash, got %q", stored.SecretHash)
	}
}

func TestSessionManager_Register_Duplicate(t *testing.T) {
	m, dir, _ := newTestManager()
	dir.seed("admin@example.com", "admin123", domain.RoleAdmin, "Admin User")

	before, _ := dir.Count(context.Background())
	_, err := m.Register(context.Background(), ports.RegisterInput{
		Email:  "admin@example.com",
		Secret: "other",
		Name:   "Impostor",
	})
	after, _ := dir.Count(context.Background())

	if err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if after != before {
		t.Fatalf("duplicate registration mutated the directory: %d -> %d", before, after)
	}
}

func TestSessionManager_Register_ConcurrentSameEmail(t *testing.T) {
	m, dir, _ := newTestManager()

	const attempts = 16
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Register(context.Background(), ports.RegisterInput{
				Email:  "race@example.com",
				Secret: "pass",
				Name:   "Racer",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var successes, duplicates int
	for err := range errs {
		switch err {
		case nil:
			successes++
		case domain.ErrUserExists:
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || duplicates != attempts-1 {
		t.Fatalf("expected 1 success and %d duplicates, got %d/%d", attempts-1, successes, duplicates)
	}
	if n, _ := dir.Count(context.Background()); n != 1 {
		t.Fatalf("expected a single directory record, got %d", n)
	}
}

func TestSessionManager_Restore_RoundTrip(t *testing.T) {
	m, dir, store := newTestManager()
	dir.seed("coach@example.com", "coach123", domain.RoleCoach, "Sarah Johnson")

	sess, err := m.Login(context.Background(), "coach@example.com", "coach123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// A fresh manager over the same store must reproduce the session.
	fresh := NewSessionManager(newStubDirectory(), store, "session:", zerolog.Nop())
	restored := fresh.Restore(context.Background(), sess.Token)
	if restored == nil {
		t.Fatalf("expected restored session")
	}
	if restored.User.ID != sess.User.ID || restored.User.Email != sess.User.Email ||
		restored.User.Role != sess.User.Role || restored.User.Name != sess.User.Name {
		t.Fatalf("restored session differs: %+v vs %+v", restored.User, sess.User)
	}
	if restored.User.SecretHash != "" {
		t.Fatalf("restored session must remain sanitized")
	}
	if !restored.IsCoach() {
		t.Fatalf("expected IsCoach true after restore")
	}
}

func TestSessionManager_Restore_FailsOpen(t *testing.T) {
	m, _, store := newTestManager()

	// Absent token.
	if sess := m.Restore(context.Background(), "missing-token"); sess != nil {
		t.Fatalf("absent session must restore as logged out, got %+v", sess)
	}

	// Corrupt stored values: not JSON, wrong shape, missing identity,
	// unsanitized.
	corrupt := []string{
		"not-json",
		"[]",
		`{"name":"no identity"}`,
		`{"id":"1"}`,
	}
	for i, raw := range corrupt {
		token := "corrupt-" + strconv.Itoa(i)
		if err := store.Set(context.Background(), "session:"+token, raw); err != nil {
			t.Fatalf("seed store: %v", err)
		}
		if sess := m.Restore(context.Background(), token); sess != nil {
			t.Fatalf("corrupt value %q must restore as logged out", raw)
		}
	}
}

func TestSessionManager_Logout_Idempotent(t *testing.T) {
	m, dir, _ := newTestManager()
	dir.seed("user@example.com", "user123", domain.RoleUser, "John Doe")

	sess, err := m.Login(context.Background(), "user@example.com", "user123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := m.Logout(context.Background(), sess.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if restored := m.Restore(context.Background(), sess.Token); restored != nil {
		t.Fatalf("expected logged-out state after logout")
	}
	// Second logout is a no-op, not an error.
	if err := m.Logout(context.Background(), sess.Token); err != nil {
		t.Fatalf("repeated logout failed: %v", err)
	}
}

func TestTokenPrefix(t *testing.T) {
	token := "0f4b2c1a-9d73-4a1e-b6c1-2f8e5d7a9c31"
	if got := tokenPrefix(token); got != "0f4b2c1a" {
		t.Fatalf("tokenPrefix(%q) = %q", token, got)
	}
	if got := tokenPrefix("short"); got != "short" {
		t.Fatalf("tokenPrefix(short) = %q", got)
	}
}

func TestDecodeSessionUser_SecretNeverSerialized(t *testing.T) {
	m, dir, store := newTestManager()
	dir.seed("user@example.com", "user123", domain.RoleUser, "John Doe")

	sess, err := m.Login(context.Background(), "user@example.com", "user123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	raw, err := store.Get(context.Background(), "session:"+sess.Token)
	if err != nil {
		t.Fatalf("stored session missing: %v", err)
	}
	if strings.Contains(raw, "user123") || strings.Contains(raw, "secret") {
		t.Fatalf("stored session leaks credential material: %s", raw)
	}
}
