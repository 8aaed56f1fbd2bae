package ports

import "context"

// SessionStore is the persistent key-value capability sessions are
// mirrored into: get/set/remove over string keys and values. Absence is
// reported as domain.ErrSessionNotFound. The SessionManager is the sole
// writer of session keys; the stored value is an opaque string to the
// store.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
