package store

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/JuliusMoehring/shrinkify.app/internal/shrink"
)

type memoryRecord struct {
	fields   map[string]string
	expireAt *time.Time
}

// MemoryStore is an in-memory implementation of shrink.Repository. Expiry is
// honored at read time: an expired record reads as absent, like a purged key.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
}

// NewMemoryStore creates a new in-memory record store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]memoryRecord),
	}
}

func (m *MemoryStore) Fetch(_ context.Context, origin string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[origin]
	if !ok {
		return map[string]string{}, nil
	}

	if record.expireAt != nil && !time.Now().Before(*record.expireAt) {
		return map[string]string{}, nil
	}

	fields := make(map[string]string, len(record.fields))
	for name, value := range record.fields {
		fields[name] = value
	}

	return fields, nil
}

func (m *MemoryStore) Put(_ context.Context, origin, target string, status int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[origin] = memoryRecord{
		fields: map[string]string{
			shrink.FieldTarget: target,
			shrink.FieldStatus: strconv.Itoa(status),
		},
	}

	return nil
}

func (m *MemoryStore) ExpireAt(_ context.Context, origin string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[origin]
	if !ok {
		return nil
	}

	record.expireAt = &at
	m.records[origin] = record

	return nil
}

// Compile-time check.
var _ shrink.Repository = (*MemoryStore)(nil)
