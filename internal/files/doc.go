// Package files groups the file access used by a run into sub-packages:
//   - filesystem: Filesystem abstraction with OS and in-memory implementations
//   - reader: Reads a file's content, optionally decoding a text encoding
//   - scanner: Lists a directory and keeps the *.geojson entries
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/gjhint/internal/files/reader"
//	    "github.com/vvka-141/gjhint/internal/files/scanner"
//	)
//
//	names, err := scanner.NewScanner().List("./data")
//	candidates := scanner.FilterGeoJSON(names)
//	content, err := reader.NewReader().Read("./data/a.geojson", gjhint.EncodingUTF8)
//
// Every sub-package accepts a filesystem.FileSystemProvider so tests can run
// against filesystem.NewMemoryFileSystem instead of the disk.
package files
