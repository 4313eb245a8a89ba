package model

import "slices"

// UserProfile is the authenticated user as cached alongside the bearer token.
// It is an explicit tagged structure; the original frontend passed the user
// around as an untyped blob and optional-chained through it.
type UserProfile struct {
	ID    int64    `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name,omitempty"`
	Role  string   `json:"role,omitempty"`
	Perms []string `json:"perms,omitempty"`
}

// IsZero reports whether the profile carries no user. Some upstream
// deployments return the token alone on login.
func (u UserProfile) IsZero() bool {
	return u.ID == 0 && u.Email == "" && u.Name == "" && u.Role == "" && len(u.Perms) == 0
}

// HasPerm reports whether the profile carries the given permission.
func (u UserProfile) HasPerm(perm string) bool {
	return slices.Contains(u.Perms, perm)
}

// HasAnyPerm reports whether the profile carries at least one of the given
// permissions.
func (u UserProfile) HasAnyPerm(perms []string) bool {
	for _, p := range perms {
		if u.HasPerm(p) {
			return true
		}
	}
	return false
}

// AuthSession is the result of a successful login: the bearer token plus the
// profile the upstream attached to it.
type AuthSession struct {
	AccessToken string      `json:"accessToken"`
	User        UserProfile `json:"user"`
}

// LoginRequest is the credential pair sent to the upstream login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}
