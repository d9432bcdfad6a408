package gjhint

// FileScanner discovers the GeoJSON candidates of a directory.
// Implementations must be safe for concurrent use by multiple goroutines.
type FileScanner interface {
	// List returns the names of the entries directly contained in dir.
	List(dir string) ([]string, error)
}

// FileReader reads one file, decoding it when encoding is not EncodingRaw.
type FileReader interface {
	Read(path, encoding string) ([]byte, error)
}
