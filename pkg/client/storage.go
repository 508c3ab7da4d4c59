package client

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Storage persists the session snapshot between runs. Load returns
// ErrNoSnapshot when nothing has been saved yet.
type Storage interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Clear() error
}

// ErrNoSnapshot is returned by Storage.Load when no snapshot exists.
var ErrNoSnapshot = errors.New("no session snapshot")

const (
	configDirName   = "jobctl"
	sessionFileName = "session.json"
)

// FileStorage keeps the snapshot as a JSON file under the user config dir.
type FileStorage struct {
	path string
}

// NewFileStorage resolves the snapshot path under os.UserConfigDir. Pass a
// non-empty dir to override the location, mainly for tests.
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, configDirName)
	}
	return &FileStorage{path: filepath.Join(dir, sessionFileName)}, nil
}

func (s *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return data, nil
}

func (s *FileStorage) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	// The snapshot carries the auth token, keep it owner-readable only.
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStorage) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStorage is an in-process Storage used by tests.
type MemoryStorage struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, ErrNoSnapshot
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *MemoryStorage) Save(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	return nil
}

func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}
