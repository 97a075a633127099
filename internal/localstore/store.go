package localstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Well-known keys mirrored from the web client's local storage.
const (
	KeyUser       = "knowrist_user"
	KeyToken      = "knowrist_token"
	KeyAdminToken = "admin_token"
	KeyAdminRole  = "admin_role"
)

// ProfilePictureKey returns the storage key for a user's profile picture.
func ProfilePictureKey(userID string) string {
	return "profile_picture_" + userID
}

// Store is a file-backed key-value store holding the plain string values the
// browser client keeps in localStorage. Values are persisted to a single JSON
// document on every mutation.
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

func Open(path string) (*Store, error) {
	s := &Store{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	return value, ok
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.flush()
}

// Remove deletes the given keys. Missing keys are ignored.
func (s *Store) Remove(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.values, key)
	}
	return s.flush()
}

// SetJSON marshals v and stores it under key.
func (s *Store) SetJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, string(data))
}

// GetJSON unmarshals the value under key into v. Returns false if the key is
// absent.
func (s *Store) GetJSON(key string, v interface{}) (bool, error) {
	value, ok := s.Get(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(value), v); err != nil {
		return false, err
	}
	return true, nil
}

// flush writes the store to disk. Caller must hold the lock. The write goes
// through a temp file so a crash mid-write cannot truncate existing state.
func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
