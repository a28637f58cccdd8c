// Package store keeps the host settings in a single JSON document on disk.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Store is a JSON document addressed by gjson paths, e.g. "api_keys.google".
type Store struct {
	mu   sync.RWMutex
	path string
	doc  []byte
}

// Open loads the document at path. A missing file yields an empty document.
func Open(path string) (*Store, error) {
	doc, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		doc = []byte("{}")
	case err != nil:
		return nil, fmt.Errorf("read settings: %w", err)
	case len(doc) == 0:
		doc = []byte("{}")
	case !gjson.ValidBytes(doc):
		return nil, fmt.Errorf("read settings: %s is not valid JSON", path)
	}
	return &Store{path: path, doc: doc}, nil
}

// DefaultPath returns the settings file location under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "scribe", "settings.json"), nil
}

// Path returns the file the store saves to.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value at key. Use Result.Exists to tell a missing key apart.
func (s *Store) Get(key string) gjson.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return gjson.GetBytes(s.doc, key)
}

// Set stores value at key, creating intermediate objects.
func (s *Store) Set(key string, value any) error {
	return s.modify(func(doc []byte) ([]byte, error) {
		return sjson.SetBytes(doc, key, value)
	})
}

// SetRaw stores an already encoded JSON value at key.
func (s *Store) SetRaw(key string, raw []byte) error {
	if !gjson.ValidBytes(raw) {
		return fmt.Errorf("set %s: invalid JSON value", key)
	}
	return s.modify(func(doc []byte) ([]byte, error) {
		return sjson.SetRawBytes(doc, key, raw)
	})
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	return s.modify(func(doc []byte) ([]byte, error) {
		return sjson.DeleteBytes(doc, key)
	})
}

// Bytes returns a copy of the whole document.
func (s *Store) Bytes() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]byte(nil), s.doc...)
}

// Save writes the document to a temporary file next to the target and renames it into
// place, so a crash never leaves a truncated settings file.
func (s *Store) Save() error {
	s.mu.RLock()
	doc := append([]byte(nil), s.doc...)
	s.mu.RUnlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("save settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (s *Store) modify(fn func([]byte) ([]byte, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := fn(s.doc)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}
