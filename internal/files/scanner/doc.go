// Package scanner lists a directory and selects its GeoJSON files.
//
// The scanner package is responsible for:
//   - Listing the entries directly contained in a directory (non-recursive)
//   - Filtering entry names down to those ending in .geojson
//
// The scanner is filesystem-agnostic through the
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
