package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrSessionNotFound = errors.New("session not found")

// Session is the currently authenticated identity: a point-in-time
// sanitized copy of a directory record plus the opaque token it is
// persisted under. Later directory mutations are not reflected here.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// IsAdmin reports whether the session belongs to an administrator.
// Safe on a nil (logged-out) session.
func (s *Session) IsAdmin() bool {
	return s != nil && s.User.Role == RoleAdmin
}

// IsCoach reports whether the session belongs to a coach.
func (s *Session) IsCoach() bool {
	return s != nil && s.User.Role == RoleCoach
}

// IsUser reports whether the session belongs to a regular end-user.
func (s *Session) IsUser() bool {
	return s != nil && s.User.Role == RoleUser
}

// DashboardPath returns the dashboard landing route for the session's
// role; the default user dashboard when logged out.
func (s *Session) DashboardPath() string {
	if s == nil {
		return DashboardPath("")
	}
	return DashboardPath(s.User.Role)
}
