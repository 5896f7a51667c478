package inference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogDisplayName(t *testing.T) {
	catalog := NewCatalog([]string{"golden_retriever", "tabby", ""})

	assert.Equal(t, "golden retriever", catalog.DisplayName(0))
	assert.Equal(t, "tabby", catalog.DisplayName(1))
	// Gap entry falls back to the synthesized name.
	assert.Equal(t, "class 2", catalog.DisplayName(2))
	// Out of range too.
	assert.Equal(t, "class 9", catalog.DisplayName(9))
}

func TestCatalogCanonicalName(t *testing.T) {
	catalog := NewCatalog([]string{"tench", ""})

	name, ok := catalog.CanonicalName(0)
	assert.True(t, ok)
	assert.Equal(t, "tench", name)

	_, ok = catalog.CanonicalName(1)
	assert.False(t, ok)
	_, ok = catalog.CanonicalName(-1)
	assert.False(t, ok)
}

func TestNilCatalogIsUsable(t *testing.T) {
	var catalog *Catalog
	assert.Equal(t, 0, catalog.Len())
	assert.Equal(t, "class 3", catalog.DisplayName(3))
}

func TestCatalogIsDetachedFromInput(t *testing.T) {
	names := []string{"tench"}
	catalog := NewCatalog(names)
	names[0] = "mutated"
	assert.Equal(t, "tench", catalog.DisplayName(0))
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.txt")
	content := "# ImageNet subset\ntench\ngoldfish\n\ngreat_white_shark\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, 4, catalog.Len())
	assert.Equal(t, "tench", catalog.DisplayName(0))
	assert.Equal(t, "goldfish", catalog.DisplayName(1))
	// The blank line keeps its index as a gap.
	assert.Equal(t, "class 2", catalog.DisplayName(2))
	assert.Equal(t, "great white shark", catalog.DisplayName(3))
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
