package services

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// MemoryStore is an in-process ObjectStore, used in tests and in development
// when no bucket is configured
type MemoryStore struct {
	objects map[string][]byte
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

// PutObject stores the whole body under key
func (m *MemoryStore) PutObject(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	content, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	m.mu.Lock()
	m.objects[key] = content
	m.mu.Unlock()
	return nil
}

// PresignGet returns a fake link for an existing key
func (m *MemoryStore) PresignGet(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}

	m.mu.RLock()
	_, exists := m.objects[key]
	m.mu.RUnlock()
	if !exists {
		return "", fmt.Errorf("object not found in memory store: %s", key)
	}
	return fmt.Sprintf("https://memory.local/%s?mock=true", key), nil
}

// DeleteObject forgets key
func (m *MemoryStore) DeleteObject(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.objects, key)
	m.mu.Unlock()
	return nil
}

// Objects returns a copy of everything stored (for testing assertions)
func (m *MemoryStore) Objects() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	objects := make(map[string][]byte, len(m.objects))
	for k, v := range m.objects {
		objects[k] = v
	}
	return objects
}

// Exists reports whether key is stored
func (m *MemoryStore) Exists(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.objects[key]
	return exists
}
