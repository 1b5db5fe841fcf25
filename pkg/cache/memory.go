package cache

import (
	"context"
	"sync"
)

// Memory is an in-process KV
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory makes an empty in-process KV
func NewMemory() *Memory {
	return &Memory{data: map[string]string{}}
}

// Get returns value by key
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores value by key
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Delete removes key
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
