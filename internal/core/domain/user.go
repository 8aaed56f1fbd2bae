package domain

const (
	RoleAdmin = "admin"
	RoleCoach = "coach"
	RoleUser  = "user"
)

// DefaultAvatar is assigned to self-registered accounts that do not
// provide their own avatar reference.
const DefaultAvatar = "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=387&h=387&q=80"

// User models one account in the directory. SecretHash is the bcrypt hash
// of the user's credential and must never leave the directory: session
// copies are produced with Sanitized, which strips it.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	SecretHash string `json:"-"`
	Role       string `json:"role"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar,omitempty"`
}

// Sanitized returns a copy of the user safe to persist or display:
// identical in every field except the secret hash, which is dropped.
func (u User) Sanitized() User {
	u.SecretHash = ""
	return u
}

// ValidRole reports whether role is one of the closed enumeration.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleCoach, RoleUser:
		return true
	}
	return false
}

// DashboardPath maps a role to its dashboard landing route. The mapping is
// total: unknown roles (and the empty role of a missing session) land on
// the default user dashboard.
func DashboardPath(role string) string {
	switch role {
	case RoleAdmin:
		return "/admin"
	case RoleCoach:
		return "/coach-dashboard"
	default:
		return "/dashboard"
	}
}
