package system

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// MockFileSystem is an in-memory FileSystemManager for tests.
// Directories are seeded with AddDirectory; files written through CreateFile
// land in WrittenFiles once they are closed.
type MockFileSystem struct {
	mu           sync.Mutex
	dirs         map[string][]string
	WrittenFiles map[string][]byte

	// WriteErr, when set, is returned from every Write on files created by CreateFile
	WriteErr error
	// CreateErr, when set, is returned from CreateFile
	CreateErr error
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		dirs:         make(map[string][]string),
		WrittenFiles: make(map[string][]byte),
	}
}

// AddDirectory registers a directory and the entry names it contains
func (m *MockFileSystem) AddDirectory(path string, entries ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = append([]string(nil), entries...)
}

// ListDirectory returns the entries registered for path.
func (m *MockFileSystem) ListDirectory(path string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, ok := m.dirs[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, path)
	}
	return append([]string{}, entries...), nil
}

// CreateFile returns a writer whose content is captured on Close.
func (m *MockFileSystem) CreateFile(path string) (io.WriteCloser, error) {
	if m.CreateErr != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileWrite, path, m.CreateErr)
	}

	m.mu.Lock()
	// Truncate immediately, like the real implementation
	m.WrittenFiles[path] = []byte{}
	m.mu.Unlock()

	return &mockFile{fs: m, path: path}, nil
}

// OpenFile returns the content last written to path.
func (m *MockFileSystem) OpenFile(path string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	content, ok := m.WrittenFiles[path]
	if !ok {
		return nil, fmt.Errorf("failed to open %s: file does not exist", path)
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

// FileExists reports whether path was written or registered as a directory.
func (m *MockFileSystem) FileExists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.WrittenFiles[path]; ok {
		return true, nil
	}
	_, ok := m.dirs[path]
	return ok, nil
}

type mockFile struct {
	fs   *MockFileSystem
	path string
	buf  bytes.Buffer
}

func (f *mockFile) Write(p []byte) (int, error) {
	if f.fs.WriteErr != nil {
		return 0, f.fs.WriteErr
	}
	return f.buf.Write(p)
}

func (f *mockFile) Close() error {
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()
	f.fs.WrittenFiles[f.path] = f.buf.Bytes()
	return nil
}
