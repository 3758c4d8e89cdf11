package fs

import (
	iofs "io/fs"
)

// FileSystem is what the exporter and dataset loader need from the disk.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	FileExists(path string) bool
	WriteFile(path string, data []byte, perm iofs.FileMode) error
	MkdirAll(path string, perm iofs.FileMode) error
}
