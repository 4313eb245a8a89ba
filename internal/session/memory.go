package session

import (
	"context"
	"sync"

	"github.com/eventdesk/eventdesk/internal/domain/model"
)

// MemoryBackend is an in-process backend for tests and development setups
// without Redis. Values do not survive a restart.
type MemoryBackend struct {
	mu      sync.RWMutex
	token   *string
	profile *model.UserProfile
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) ReadToken(_ context.Context) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.token == nil {
		return "", ErrNotFound
	}
	return *b.token, nil
}

func (b *MemoryBackend) WriteToken(_ context.Context, token string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.token = &token
	return nil
}

func (b *MemoryBackend) DeleteToken(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.token = nil
	return nil
}

func (b *MemoryBackend) ReadProfile(_ context.Context) (model.UserProfile, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.profile == nil {
		return model.UserProfile{}, ErrNotFound
	}
	return *b.profile, nil
}

func (b *MemoryBackend) WriteProfile(_ context.Context, profile model.UserProfile) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.profile = &profile
	return nil
}

func (b *MemoryBackend) DeleteProfile(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.profile = nil
	return nil
}
