package scanner

import (
	"strings"

	"github.com/vvka-141/gjhint/internal/files/filesystem"
	"github.com/vvka-141/gjhint/pkg/gjhint"
)

// Scanner lists directories through a filesystem provider.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a new scanner using the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewScannerWithFS creates a new scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
	}
}

// List returns the names of the entries directly contained in dir. Files
// and subdirectories are not distinguished.
//
// A missing path or a path that is not a directory yields a KindIO
// *gjhint.Error wrapping the provider's error.
func (s *Scanner) List(dir string) ([]string, error) {
	infos, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		return nil, gjhint.NewIOError(dir, err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names, nil
}

// FilterGeoJSON returns the names ending in .geojson, preserving order.
//
// "No matches" is always nil, whether the input was empty or nothing in it
// matched, so the filter is idempotent.
func FilterGeoJSON(entries []string) []string {
	if len(entries) == 0 {
		return nil
	}

	matches := make([]string, 0, len(entries))
	for _, name := range entries {
		if IsGeoJSONName(name) {
			matches = append(matches, name)
		}
	}
	if len(matches) == 0 {
		return nil
	}
	return matches
}

// IsGeoJSONName reports whether name carries the .geojson extension.
// The comparison is case-sensitive, so "map.GEOJSON" is not a match.
func IsGeoJSONName(name string) bool {
	return strings.HasSuffix(name, gjhint.GeoJSONExtension)
}

// Verify Scanner implements the interface at compile time
var _ gjhint.FileScanner = (*Scanner)(nil)
