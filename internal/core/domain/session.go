package domain

import "errors"

var ErrSessionNotFound = errors.New("session not found")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrNotAdmin = errors.New("not admin")

// Profile is the demo payload stored under the session's "user" slot.
type Profile struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Session is the server-side per-visitor state, correlated to the client by
// an opaque token delivered in a cookie. UserID and Role are bound together
// at login and cleared together at logout: the admin capability is derived
// from the authenticated account's role, never set on its own.
type Session struct {
	ID        string   `json:"-"`
	UserID    string   `json:"user_id,omitempty"`
	Role      string   `json:"role,omitempty"`
	Profile   *Profile `json:"user,omitempty"`
	Visited   int64    `json:"visited"`
	ViewCount int64    `json:"view_count"`
}

// Authenticated reports whether a user identity is bound to the session.
func (s *Session) Authenticated() bool {
	return s.UserID != ""
}

// IsAdmin reports whether the session carries the admin capability.
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
