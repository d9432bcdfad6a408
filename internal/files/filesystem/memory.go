package filesystem

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Safe for concurrent reads; AddFile and AddDir must not race with readers.
type MemoryFileSystem struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry // absolute slash path -> entry
	root    string
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
// Relative paths passed to any method are resolved against root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.entries[root] = newDirEntry(root)
	return mfs
}

func newDirEntry(p string) *memoryEntry {
	return &memoryEntry{info: &memoryFileInfo{
		name:    path.Base(p),
		mode:    0755 | fs.ModeDir,
		modTime: time.Now(),
	}}
}

// AddFile adds a file to the in-memory filesystem, creating parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	abs := mfs.resolve(filePath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.entries[abs] = &memoryEntry{
		content: []byte(content),
		info: &memoryFileInfo{
			name:    path.Base(abs),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
	mfs.ensureParents(abs)
}

// AddDir adds an empty directory, creating parent directories.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	abs := mfs.resolve(dirPath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	if _, ok := mfs.entries[abs]; !ok {
		mfs.entries[abs] = newDirEntry(abs)
	}
	mfs.ensureParents(abs)
}

// ensureParents creates directory entries for all parent directories.
// Caller holds mu.
func (mfs *MemoryFileSystem) ensureParents(p string) {
	for dir := path.Dir(p); dir != p; p, dir = dir, path.Dir(dir) {
		if _, exists := mfs.entries[dir]; exists {
			return
		}
		mfs.entries[dir] = newDirEntry(dir)
	}
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) lookup(op, p string) (*memoryEntry, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	e, ok := mfs.entries[mfs.resolve(p)]
	if !ok {
		return nil, &fs.PathError{Op: op, Path: p, Err: fs.ErrNotExist}
	}
	return e, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	e, err := mfs.lookup("open", filePath)
	if err != nil {
		return nil, err
	}
	if e.info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: syscall.EISDIR}
	}

	out := make([]byte, len(e.content))
	copy(out, e.content)
	return out, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	e, err := mfs.lookup("open", dirPath)
	if err != nil {
		return nil, err
	}
	if !e.info.IsDir() {
		return nil, &fs.PathError{Op: "readdirent", Path: dirPath, Err: syscall.ENOTDIR}
	}

	abs := mfs.resolve(dirPath)
	prefix := abs + "/"
	if abs == "/" {
		prefix = "/"
	}

	mfs.mu.RLock()
	var result []FileInfo
	for p, child := range mfs.entries {
		if p == abs || !strings.HasPrefix(p, prefix) {
			continue
		}
		if strings.Contains(strings.TrimPrefix(p, prefix), "/") {
			continue // not a direct child
		}
		result = append(result, child.info)
	}
	mfs.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	e, err := mfs.lookup("stat", statPath)
	if err != nil {
		return nil, err
	}
	return e.info, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
