// Package session holds the process-wide bearer token and cached user
// profile. The in-memory view is authoritative for the life of the process;
// a durable Backend keeps the pair across restarts on a best-effort basis.
package session

import (
	"context"

	"github.com/eventdesk/eventdesk/internal/domain/model"
)

// Durable key names. The two-key layout mirrors what the portal has always
// persisted: the raw token under one key, the profile JSON under another.
const (
	KeyAccessToken = "auth:accessToken"
	KeyUser        = "auth:user"
)

// Backend is the durable storage behind the token store. Implementations
// return ErrNotFound for absent values.
type Backend interface {
	ReadToken(ctx context.Context) (string, error)
	WriteToken(ctx context.Context, token string) error
	DeleteToken(ctx context.Context) error

	ReadProfile(ctx context.Context) (model.UserProfile, error)
	WriteProfile(ctx context.Context, profile model.UserProfile) error
	DeleteProfile(ctx context.Context) error
}

// ErrNotFound is returned by backends when a key holds no value.
type notFoundError struct{}

func (notFoundError) Error() string { return "session value not found" }

var ErrNotFound error = notFoundError{}
