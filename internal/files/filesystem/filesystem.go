package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider is the read-only view of a filesystem used by the
// directory lister and the file reader.
type FileSystemProvider interface {
	// ReadFile reads a specific file at the given path.
	// Reading a directory is an error.
	ReadFile(path string) ([]byte, error)

	// ReadDir reads the entries directly contained in the directory at path,
	// files and subdirectories alike, sorted by name.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
