package store

import (
	"errors"
	"sync"
)

// ErrUnavailable simulates storage that refuses access
var ErrUnavailable = errors.New("store: storage unavailable")

// Memory is an in-process Backend with switchable faults
type Memory struct {
	mu         sync.Mutex
	data       map[string]string
	FailReads  bool
	FailWrites bool
}

// NewMemory creates an empty memory backend
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Read(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailReads {
		return "", ErrUnavailable
	}
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Write(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrUnavailable
	}
	m.data[key] = value
	return nil
}

// Raw returns the stored text for key, used to plant corrupt records in tests
func (m *Memory) Raw(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

// Put stores text without encoding
func (m *Memory) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

func (m *Memory) Close() error { return nil }
