package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDirectoryImageFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.jpg"), []byte("jpg-bytes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), []byte("png-bytes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	images, err := LoadDirectoryImageFiles(dir)
	require.NoError(t, err)

	require.Len(t, images, 2)
	assert.Equal(t, filepath.Join(dir, "a.png"), images[0].Path)
	assert.Equal(t, []byte("png-bytes"), images[0].Data)
	assert.Equal(t, filepath.Join(dir, "b.jpg"), images[1].Path)
	assert.Equal(t, []byte("jpg-bytes"), images[1].Data)
}

func TestLoadDirectoryImageFilesMissingDir(t *testing.T) {
	_, err := LoadDirectoryImageFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
