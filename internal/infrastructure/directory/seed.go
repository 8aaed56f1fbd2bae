package directory

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

// demoAccounts are the fixed demo identities, one per role. Secrets are
// hashed at seed time; the plaintext values exist only here.
var demoAccounts = []struct {
	email, secret, role, name, avatar string
}{
	{
		email:  "admin@deepmindconcepts.com",
		secret: "admin123",
		role:   domain.RoleAdmin,
		name:   "Admin User",
		avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=387&h=387&q=80",
	},
	{
		email:  "coach@deepmindconcepts.com",
		secret: "coach123",
		role:   domain.RoleCoach,
		name:   "Sarah Johnson",
		avatar: "https://images.unsplash.com/photo-1494790108755-2616b612b786?ixlib=rb-4.0.3&auto=format&fit=crop&w=387&h=387&q=80",
	},
	{
		email:  "user@example.com",
		secret: "user123",
		role:   domain.RoleUser,
		name:   "John Doe",
		avatar: domain.DefaultAvatar,
	},
}

// SeedDemoAccounts inserts the demo accounts into dir. Accounts that
// already exist are left untouched, so seeding is safe to repeat against
// a durable directory.
func SeedDemoAccounts(ctx context.Context, dir ports.UserDirectory) error {
	for _, acc := range demoAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.secret), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed %s: %w", acc.email, err)
		}
		_, err = dir.Insert(ctx, &domain.User{
			Email:      acc.email,
			SecretHash: string(hash),
			Role:       acc.role,
			Name:       acc.name,
			Avatar:     acc.avatar,
		})
		if err != nil && err != domain.ErrUserExists {
			return fmt.Errorf("seed %s: %w", acc.email, err)
		}
	}
	return nil
}
