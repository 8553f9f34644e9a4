package store

import (
	"fmt"
	"log"
	"path/filepath"
)

// Backend kinds accepted by Open
const (
	KindSQLite = "sqlite"
	KindFile   = "file"
	KindMemory = "memory"
	KindNone   = "none"
)

// Location returns the backend path for kind inside the data directory
func Location(kind, dataDir string) string {
	switch kind {
	case KindSQLite:
		return filepath.Join(dataDir, "arcade.db")
	case KindFile:
		return filepath.Join(dataDir, "kv")
	default:
		return ""
	}
}

// Open builds a backend of the given kind at path
func Open(kind, path string) (Backend, error) {
	switch kind {
	case KindSQLite:
		return OpenSQLite(path)
	case KindFile:
		return OpenFile(path)
	case KindMemory:
		return NewMemory(), nil
	case KindNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", kind)
	}
}

// OpenOrDegrade opens a Store; any backend failure yields a Store without
// persistence so the arcade still runs
func OpenOrDegrade(kind, path string) *Store {
	backend, err := Open(kind, path)
	if err != nil {
		log.Printf("store: %v, continuing without persistence", err)
		return New(nil)
	}
	if backend == nil {
		return New(nil)
	}
	return New(backend)
}
