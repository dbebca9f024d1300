package handlers_test

import (
	"context"
	"errors"
	"time"

	"github.com/JuliusMoehring/shrinkify.app/internal/store"
)

var errMock = errors.New("mock error")

const testTarget = "https://example.com"

// mockRepo is a test double for shrink.Repository backed by the in-memory
// store, with switchable per-operation failures.
type mockRepo struct {
	backing *store.MemoryStore

	fetchErr    error
	putErr      error
	expireAtErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{backing: store.NewMemoryStore()}
}

func (m *mockRepo) Fetch(ctx context.Context, origin string) (map[string]string, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}

	return m.backing.Fetch(ctx, origin)
}

func (m *mockRepo) Put(ctx context.Context, origin, target string, status int) error {
	if m.putErr != nil {
		return m.putErr
	}

	return m.backing.Put(ctx, origin, target, status)
}

func (m *mockRepo) ExpireAt(ctx context.Context, origin string, at time.Time) error {
	if m.expireAtErr != nil {
		return m.expireAtErr
	}

	return m.backing.ExpireAt(ctx, origin, at)
}
