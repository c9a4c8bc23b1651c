package connectors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("x,y\n1,2\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte("x\n1\n2\n3\n4\n5\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "c.csv"), []byte("z\n9\n"), 0644))
	return dir
}

func TestDiscoverFilesFlat(t *testing.T) {
	dir := seedDir(t)

	files, count, err := DiscoverFiles(dir, "csv", DiscoveryOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, files, 2)
}

func TestDiscoverFilesRecursive(t *testing.T) {
	dir := seedDir(t)

	_, count, err := DiscoverFiles(dir, "csv", DiscoveryOptions{Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestDiscoverFilesDefaultExtension(t *testing.T) {
	dir := seedDir(t)

	_, count, err := DiscoverFiles(dir, "", DiscoveryOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestDiscoverFilesSizeFilters(t *testing.T) {
	dir := seedDir(t)

	// a.csv is 8 bytes, b.csv is 12.
	_, count, err := DiscoverFiles(dir, "csv", DiscoveryOptions{MinSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, count, err = DiscoverFiles(dir, "csv", DiscoveryOptions{MaxSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDiscoverFilesEmptyResult(t *testing.T) {
	dir := t.TempDir()

	files, count, err := DiscoverFiles(dir, "csv", DiscoveryOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, files)
}

func TestDiscoverFilesBadRoot(t *testing.T) {
	_, _, err := DiscoverFiles("", "csv", DiscoveryOptions{})
	require.Error(t, err)

	_, _, err = DiscoverFiles(filepath.Join(t.TempDir(), "missing"), "csv", DiscoveryOptions{})
	require.Error(t, err)

	file := filepath.Join(t.TempDir(), "f.csv")
	require.NoError(t, os.WriteFile(file, []byte("x\n"), 0644))
	_, _, err = DiscoverFiles(file, "csv", DiscoveryOptions{})
	require.Error(t, err)
}
