package repository

import (
	"context"
	"sync"
)

// MemoryStorageFactory keeps every device's storage in process memory. It
// backs tests and single-instance development runs.
type MemoryStorageFactory struct {
	mu      sync.Mutex
	devices map[string]*MemoryStorage
}

func NewMemoryStorageFactory() *MemoryStorageFactory {
	return &MemoryStorageFactory{devices: make(map[string]*MemoryStorage)}
}

func (f *MemoryStorageFactory) ForDevice(deviceID string) DeviceStorage {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.devices[deviceID]
	if !ok {
		s = NewMemoryStorage()
		f.devices[deviceID] = s
	}

	return s
}

type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *MemoryStorage) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}
