package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdesk/eventdesk/internal/domain/model"
)

func TestTokenStore_EmptyByDefault(t *testing.T) {
	t.Parallel()

	store := NewTokenStore(NewMemoryBackend(), nil)
	ctx := context.Background()

	assert.Equal(t, "", store.Token(ctx))
	_, ok := store.Profile(ctx)
	assert.False(t, ok)
}

func TestTokenStore_SetAndRead(t *testing.T) {
	t.Parallel()

	store := NewTokenStore(NewMemoryBackend(), nil)
	ctx := context.Background()

	res := store.SetToken(ctx, "tok-123")
	assert.True(t, res.Persisted)
	assert.Equal(t, "tok-123", store.Token(ctx))

	profile := model.UserProfile{ID: 1, Email: "admin@example.com", Perms: []string{"events:write"}}
	res = store.SetProfile(ctx, profile)
	assert.True(t, res.Persisted)

	got, ok := store.Profile(ctx)
	require.True(t, ok)
	assert.Equal(t, profile, got)
}

func TestTokenStore_ReadThroughFromBackend(t *testing.T) {
	t.Parallel()

	backend := NewMemoryBackend()
	ctx := context.Background()
	require.NoError(t, backend.WriteToken(ctx, "persisted-token"))
	require.NoError(t, backend.WriteProfile(ctx, model.UserProfile{ID: 4, Email: "a@b.c"}))

	// A fresh store simulates a process restart: the first read falls
	// through to the durable backend.
	store := NewTokenStore(backend, nil)
	assert.Equal(t, "persisted-token", store.Token(ctx))

	profile, ok := store.Profile(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(4), profile.ID)
}

func TestTokenStore_ClearEmptiesEverything(t *testing.T) {
	t.Parallel()

	backend := NewMemoryBackend()
	store := NewTokenStore(backend, nil)
	ctx := context.Background()

	store.SetToken(ctx, "tok")
	store.SetProfile(ctx, model.UserProfile{ID: 1})

	res := store.Clear(ctx)
	assert.True(t, res.Persisted)

	assert.Equal(t, "", store.Token(ctx))
	_, ok := store.Profile(ctx)
	assert.False(t, ok)

	// The durable copy is gone too.
	_, err := backend.ReadToken(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = backend.ReadProfile(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

// failingBackend rejects every durable operation, standing in for a Redis
// that is down.
type failingBackend struct{}

var errBackendDown = errors.New("backend down")

func (failingBackend) ReadToken(context.Context) (string, error) { return "", errBackendDown }
func (failingBackend) WriteToken(context.Context, string) error  { return errBackendDown }
func (failingBackend) DeleteToken(context.Context) error         { return errBackendDown }
func (failingBackend) ReadProfile(context.Context) (model.UserProfile, error) {
	return model.UserProfile{}, errBackendDown
}
func (failingBackend) WriteProfile(context.Context, model.UserProfile) error { return errBackendDown }
func (failingBackend) DeleteProfile(context.Context) error                   { return errBackendDown }

func TestTokenStore_BestEffortPersistence(t *testing.T) {
	t.Parallel()

	store := NewTokenStore(failingBackend{}, nil)
	ctx := context.Background()

	// The write is reported as not persisted but the session still works
	// in memory for the life of the process.
	res := store.SetToken(ctx, "tok")
	assert.False(t, res.Persisted)
	assert.ErrorIs(t, res.Err, errBackendDown)
	assert.Equal(t, "tok", store.Token(ctx))

	res = store.Clear(ctx)
	assert.False(t, res.Persisted)
	assert.Equal(t, "", store.Token(ctx))
}

func TestTokenStore_BackendReadFailureMeansLoggedOut(t *testing.T) {
	t.Parallel()

	store := NewTokenStore(failingBackend{}, nil)
	assert.Equal(t, "", store.Token(context.Background()))
}
