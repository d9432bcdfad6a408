package services

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/gjhint/internal/files/filesystem"
	"github.com/vvka-141/gjhint/internal/files/reader"
	"github.com/vvka-141/gjhint/internal/geojson"
	"github.com/vvka-141/gjhint/internal/logging"
	"github.com/vvka-141/gjhint/pkg/gjhint"
)

func newTestHinter(mfs *filesystem.MemoryFileSystem, rep gjhint.Reporter) *HintService {
	return NewHintService(
		reader.NewReaderWithFS(mfs),
		geojson.NewValidator(gjhint.DefaultHintOptions()),
		rep,
		logging.NewNullLogger(),
	)
}

func TestHintService_ValidFileIsReported(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("/data/a.geojson", `{"type":"Point","coordinates":[1,2]}`)
	rep := &recordingReporter{}

	err := newTestHinter(mfs, rep).Hint(context.Background(), "/data/a.geojson")

	require.NoError(t, err)
	assert.Equal(t, []string{"/data/a.geojson"}, rep.Valid())
}

func TestHintService_StripsByteOrderMark(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("/data/bom.geojson", "\ufeff"+`{"type":"Point","coordinates":[1,2]}`)
	rep := &recordingReporter{}

	err := newTestHinter(mfs, rep).Hint(context.Background(), "/data/bom.geojson")

	require.NoError(t, err)
	assert.Len(t, rep.Valid(), 1)
}

func TestHintService_ErrorsAreReturnedUnreported(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		content  string
		sentinel error
	}{
		{"missing file", "/data/missing.geojson", "", gjhint.ErrIO},
		{"invalid json", "/data/bad.geojson", `{"type":`, gjhint.ErrInvalidJSON},
		{"invalid geojson", "/data/bad.geojson", `{"type":"Potato"}`, gjhint.ErrInvalidGeoJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := filesystem.NewMemoryFileSystem("/data")
			if tt.content != "" {
				mfs.AddFile(tt.path, tt.content)
			}
			rep := &recordingReporter{}

			err := newTestHinter(mfs, rep).Hint(context.Background(), tt.path)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))
			assert.Equal(t, tt.path, gjhint.PathOf(err))
			assert.Empty(t, rep.Valid())
		})
	}
}

func TestHintService_MissingFileKeepsSystemError(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")

	err := newTestHinter(mfs, &recordingReporter{}).Hint(context.Background(), "/data/nope.geojson")

	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestHintService_DoneContextSuppressesSuccess(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("/data/a.geojson", `{"type":"Point","coordinates":[1,2]}`)
	rep := &recordingReporter{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestHinter(mfs, rep).Hint(ctx, "/data/a.geojson")

	require.NoError(t, err)
	assert.Empty(t, rep.Valid())
}

func TestHintService_UsesUTF8(t *testing.T) {
	var gotEncoding string
	rd := readerFunc(func(_, enc string) ([]byte, error) {
		gotEncoding = enc
		return []byte(`{}`), nil
	})
	svc := NewHintService(rd, &mockValidator{}, &recordingReporter{}, logging.NewNullLogger())

	require.NoError(t, svc.Hint(context.Background(), "x.geojson"))
	assert.Equal(t, gjhint.EncodingUTF8, gotEncoding)
}

func TestNewHintService_PanicsOnNil(t *testing.T) {
	rd := reader.NewReaderWithFS(filesystem.NewMemoryFileSystem("/"))
	v := &mockValidator{}
	rep := &recordingReporter{}
	log := logging.NewNullLogger()

	assert.Panics(t, func() { NewHintService(nil, v, rep, log) })
	assert.Panics(t, func() { NewHintService(rd, nil, rep, log) })
	assert.Panics(t, func() { NewHintService(rd, v, nil, log) })
	assert.Panics(t, func() { NewHintService(rd, v, rep, nil) })
}

type readerFunc func(path, encoding string) ([]byte, error)

func (f readerFunc) Read(path, encoding string) ([]byte, error) { return f(path, encoding) }
