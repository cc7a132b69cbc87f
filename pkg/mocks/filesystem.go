// Package mocks provides test doubles for the port interfaces.
package mocks

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"sync"

	"github.com/user/fileprov/pkg/ports"
)

// FileSystem is a mock implementation of ports.FileSystem. Its default
// behavior mimics the os adapter closely enough for handler tests: reads
// and removes of unknown paths fail with fs.ErrNotExist.
type FileSystem struct {
	mu      sync.RWMutex
	files   map[string][]byte
	tempSeq int

	ReadFileFunc  func(path string) ([]byte, error)
	WriteFileFunc func(path string, data []byte) error
	TempFileFunc  func(dir, pattern string) (string, error)
	ExistsFunc    func(path string) (bool, error)
	RemoveFunc    func(path string) error
}

// NewFileSystem creates a new mock FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files: make(map[string][]byte),
	}
}

func (m *FileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.files[path]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("open %s: %w", path, iofs.ErrNotExist)
}

func (m *FileSystem) WriteFile(path string, data []byte) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(path, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = data
	return nil
}

func (m *FileSystem) TempFile(dir, pattern string) (string, error) {
	if m.TempFileFunc != nil {
		return m.TempFileFunc(dir, pattern)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if dir == "" {
		dir = "/tmp"
	}
	m.tempSeq++
	path := filepath.Join(dir, fmt.Sprintf("%s%d", pattern, m.tempSeq))
	m.files[path] = nil
	return path, nil
}

func (m *FileSystem) Exists(path string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(path)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[path]
	return ok, nil
}

func (m *FileSystem) Remove(path string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(path)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[path]; !ok {
		return fmt.Errorf("remove %s: %w", path, iofs.ErrNotExist)
	}
	delete(m.files, path)
	return nil
}

// GetFile returns the contents of a file (for test verification).
func (m *FileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	return data, ok
}

// GetAllFiles returns all files (for test verification).
func (m *FileSystem) GetAllFiles() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[string][]byte)
	for k, v := range m.files {
		result[k] = v
	}
	return result
}

var _ ports.FileSystem = (*FileSystem)(nil)
