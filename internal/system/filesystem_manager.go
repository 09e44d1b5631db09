package system

import (
	"errors"
	"io"
)

var (
	// ErrDirectoryNotFound is returned when the source path is missing or is not a directory
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrFileWrite is returned when the output file cannot be opened or written
	ErrFileWrite = errors.New("cannot write file")
)

// FileSystemManager defines the interface for file system operations.
// This allows for mocking the file system in tests.
type FileSystemManager interface {
	ListDirectory(path string) ([]string, error)
	CreateFile(path string) (io.WriteCloser, error)
	OpenFile(path string) (io.ReadCloser, error)
	FileExists(path string) (bool, error)
}
