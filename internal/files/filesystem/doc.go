// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the read-only operations gjhint needs (list a
// directory, read a file, stat a path), enabling testability through an
// in-memory implementation while using the OS filesystem in production.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// Both implementations return *fs.PathError values, so callers can rely on
// errors.Is(err, fs.ErrNotExist) regardless of the backing store.
package filesystem
