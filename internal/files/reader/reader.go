// Package reader reads whole files through a filesystem provider,
// optionally decoding them from a named text encoding to UTF-8.
package reader

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/vvka-141/gjhint/internal/files/filesystem"
	"github.com/vvka-141/gjhint/pkg/gjhint"
)

// Reader reads file content. It holds no state besides its provider and is
// safe for concurrent use when the provider is.
type Reader struct {
	fsProvider filesystem.FileSystemProvider
}

// NewReader creates a Reader backed by the OS filesystem.
func NewReader() *Reader {
	return &Reader{fsProvider: filesystem.NewOSFileSystem()}
}

// NewReaderWithFS creates a Reader with a custom filesystem provider.
// Panics if fsProvider is nil.
func NewReaderWithFS(fsProvider filesystem.FileSystemProvider) *Reader {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Reader{fsProvider: fsProvider}
}

// Read returns the content of the file at path.
//
// With gjhint.EncodingRaw the bytes are returned as stored. Any other value
// names an encoding (IANA names and aliases, case-insensitive) and the
// content is decoded to UTF-8; for UTF-8 a leading byte order mark is removed.
//
// Filesystem failures come back as a KindIO *gjhint.Error whose cause is the
// provider's error, untouched. An unknown encoding is a KindUnexpected error.
func (r *Reader) Read(path, encodingName string) ([]byte, error) {
	var enc encoding.Encoding
	if encodingName != gjhint.EncodingRaw {
		var err error
		enc, err = lookupEncoding(encodingName)
		if err != nil {
			return nil, gjhint.NewUnexpectedError(path, err)
		}
	}

	data, err := r.fsProvider.ReadFile(path)
	if err != nil {
		return nil, gjhint.NewIOError(path, err)
	}

	if enc == nil {
		return data, nil
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, gjhint.NewIOError(path, fmt.Errorf("decode %s: %w", encodingName, err))
	}
	return decoded, nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

// Verify Reader implements the interface at compile time
var _ gjhint.FileReader = (*Reader)(nil)
