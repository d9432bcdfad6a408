package filesystem

import (
	"errors"
	iofs "io/fs"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	expectedContent := `{"type":"Point","coordinates":[0,0]}`
	mfs.AddFile("point.geojson", expectedContent)

	content, err := mfs.ReadFile("/test/project/point.geojson")
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content))

	// Relative paths resolve against root
	content, err = mfs.ReadFile("point.geojson")
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content))
}

func TestMemoryFileSystem_ReadFile_Errors(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddDir("data")

	_, err := mfs.ReadFile("missing.geojson")
	require.True(t, errors.Is(err, iofs.ErrNotExist), "got %v", err)

	_, err = mfs.ReadFile("data")
	require.Error(t, err, "reading a directory must fail")
}

func TestMemoryFileSystem_ReadFile_ReturnsCopy(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("a.geojson", "{}")

	content, err := mfs.ReadFile("a.geojson")
	require.NoError(t, err)
	content[0] = 'X'

	again, err := mfs.ReadFile("a.geojson")
	require.NoError(t, err)
	require.Equal(t, "{}", string(again))
}

func TestMemoryFileSystem_ReadDir_DirectChildrenOnly(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("b.geojson", "{}")
	mfs.AddFile("a.txt", "hello")
	mfs.AddFile("nested/deep/c.geojson", "{}")
	mfs.AddDir("empty")

	infos, err := mfs.ReadDir("/test/project")
	require.NoError(t, err)

	var names []string
	for _, info := range infos {
		names = append(names, info.Name())
	}
	require.Equal(t, []string{"a.txt", "b.geojson", "empty", "nested"}, names)

	nested, err := mfs.ReadDir("nested")
	require.NoError(t, err)
	require.Len(t, nested, 1)
	require.Equal(t, "deep", nested[0].Name())
	require.True(t, nested[0].IsDir())
}

func TestMemoryFileSystem_ReadDir_Errors(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("a.geojson", "{}")

	_, err := mfs.ReadDir("missing")
	require.True(t, errors.Is(err, iofs.ErrNotExist), "got %v", err)

	_, err = mfs.ReadDir("a.geojson")
	require.Error(t, err, "listing a file must fail")
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("root.geojson", "{}")

	info, err := mfs.Stat("/test/project/root.geojson")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, "root.geojson", info.Name())
	require.Equal(t, int64(2), info.Size())

	info, err = mfs.Stat("/test/project")
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestMemoryFileSystem_RootSlash(t *testing.T) {
	mfs := NewMemoryFileSystem("/")
	mfs.AddFile("a.geojson", "{}")
	mfs.AddFile("dir/b.geojson", "{}")

	infos, err := mfs.ReadDir("/")
	require.NoError(t, err)
	require.Len(t, infos, 2)
}

func TestMemoryFileSystem_ConcurrentReads(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("a.geojson", "{}")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = mfs.ReadFile("a.geojson")
			_, _ = mfs.ReadDir(".")
		}()
	}
	wg.Wait()
}
