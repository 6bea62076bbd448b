package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenKey is the fixed name the auth token is persisted under.
const TokenKey = "auth_token"

// TokenStore persists the single opaque auth token. An absent token is
// reported as ("", nil): it just means the caller is unauthenticated.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a file named after TokenKey inside a
// directory.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a store rooted at dir, creating it if needed.
func NewFileTokenStore(dir string) (*FileTokenStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create token dir: %w", err)
	}
	return &FileTokenStore{path: filepath.Join(dir, TokenKey)}, nil
}

func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Save(token string) error {
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

// MemoryTokenStore is an in-process store for tests.
type MemoryTokenStore struct {
	token string
}

func (s *MemoryTokenStore) Load() (string, error) { return s.token, nil }

func (s *MemoryTokenStore) Save(token string) error {
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.token = ""
	return nil
}
