// Package store is the arcade's best-effort key/value persistence.
//
// Values are JSON text under string keys. Persistence is a side channel:
// reads fall back to a caller-supplied default and writes silently drop on
// failure. No error from this package ever reaches gameplay.
package store

import (
	"encoding/json"
	"errors"
	"log"
)

// ErrNotFound is returned by backends for keys that were never written
var ErrNotFound = errors.New("store: key not found")

// Backend is durable storage for JSON text keyed by string
type Backend interface {
	Read(key string) (string, error)
	Write(key, value string) error
	Close() error
}

// Store serializes values through a Backend
// A Store with a nil backend behaves as permanently unavailable storage
type Store struct {
	backend Backend
}

// New wraps backend; nil is allowed
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Available reports whether a backend is attached
func (s *Store) Available() bool {
	return s != nil && s.backend != nil
}

// Get decodes the value under key into a T
// Missing key, decode failure and backend failure all return fallback
func Get[T any](s *Store, key string, fallback T) T {
	if !s.Available() {
		return fallback
	}

	raw, err := s.backend.Read(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("store: read %q failed: %v", key, err)
		}
		return fallback
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Printf("store: decode %q failed: %v", key, err)
		return fallback
	}
	return v
}

// Set encodes v and writes it under key; failures are logged and dropped
func (s *Store) Set(key string, v any) {
	if !s.Available() {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("store: encode %q failed: %v", key, err)
		return
	}
	if err := s.backend.Write(key, string(data)); err != nil {
		log.Printf("store: write %q dropped: %v", key, err)
	}
}

// RaiseBest stores max(stored, v) under key and returns the resulting best
func RaiseBest(s *Store, key string, v int) int {
	best := Get(s, key, 0)
	if v > best {
		s.Set(key, v)
		return v
	}
	return best
}

// Close releases the backend
func (s *Store) Close() error {
	if !s.Available() {
		return nil
	}
	return s.backend.Close()
}
