package ports

import (
	"context"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
)

// UserDirectory is the source of truth for accounts and credentials.
//
// Insert must be atomic with respect to the duplicate-email check:
// concurrent inserts of the same email must yield exactly one success and
// domain.ErrUserExists for the rest. Implementations back this with a
// mutex (in-memory) or a unique index (MongoDB).
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}
