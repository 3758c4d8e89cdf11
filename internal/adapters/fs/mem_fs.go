package fs

import (
	iofs "io/fs"
	"path"
	"sync"
)

// MemFileSystem keeps files in memory. Directories are implicit.
type MemFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemFileSystem() *MemFileSystem {
	return &MemFileSystem{files: make(map[string][]byte)}
}

func (m *MemFileSystem) ReadFile(p string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.files[path.Clean(p)]
	if !ok {
		return nil, &iofs.PathError{Op: "open", Path: p, Err: iofs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (m *MemFileSystem) FileExists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.files[path.Clean(p)]
	return ok
}

func (m *MemFileSystem) WriteFile(p string, data []byte, _ iofs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[path.Clean(p)] = append([]byte(nil), data...)
	return nil
}

func (m *MemFileSystem) MkdirAll(string, iofs.FileMode) error {
	return nil
}
