// Package store provides the local persistent key-value store that
// backs the demo data layer: the session token, the credential
// directory, the dashboard collections and the GitHub cache.  Values
// are plain strings (mostly JSON documents) under fixed string keys,
// with last-write-wins semantics between processes sharing a data
// directory.
package store

import (
	"os"
	"path/filepath"
	"sync"
)

// Store is a minimal string key-value interface.  Get reports
// whether the key existed; Set and Delete overwrite or remove a key
// whole.  Implementations must make a completed Set visible to the
// next Get as a whole value, never partially.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// FileStore persists each key as a file inside a data directory.
// Writes go through a temp file and a rename so readers never see a
// half-written value.  Writers in other processes are not
// coordinated; the last rename wins.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the data directory if needed and returns a
// store rooted at it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Get reads the value stored for key.  A missing or unreadable file
// reports absence rather than an error.
func (s *FileStore) Get(key string) (string, bool) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Set writes the value for key atomically via rename.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

// Delete removes the key.  Deleting a missing key is not an error.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryStore is an in-process Store used by tests and as a
// fallback when no data directory is writable.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
