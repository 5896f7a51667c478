package inference

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Catalog maps contiguous 0-based class indices to canonical class names.
// Canonical names use underscores between words ("golden_retriever").
// A Catalog is built once at startup and never mutated afterwards, so it
// is safe to share across goroutines.
type Catalog struct {
	names []string
}

// NewCatalog builds a catalog from canonical names in index order. Empty
// entries mark gaps: those indices fall back to a synthesized name.
func NewCatalog(names []string) *Catalog {
	copied := make([]string, len(names))
	copy(copied, names)
	return &Catalog{names: copied}
}

// LoadCatalog reads a catalog from a labels file: one canonical name per
// line, index order, lines starting with '#' ignored. Blank lines are
// kept as gaps so that sparse tables keep their indexing.
//
// Arguments:
//   - path: Path to the labels file.
//
// Returns:
//   - *Catalog: The loaded catalog.
//   - error: An error if the file cannot be read.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening labels file")
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading labels file")
	}
	return &Catalog{names: names}, nil
}

// Len returns the number of catalog entries, gaps included.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// CanonicalName returns the underscore-separated name for an index and
// whether the catalog has one.
func (c *Catalog) CanonicalName(index int) (string, bool) {
	if c == nil || index < 0 || index >= len(c.names) || c.names[index] == "" {
		return "", false
	}
	return c.names[index], true
}

// DisplayName returns the human-readable name for a class index:
// the canonical name, or "class_<index>" when the catalog has no entry,
// with underscores rendered as spaces either way.
func (c *Catalog) DisplayName(index int) string {
	name, ok := c.CanonicalName(index)
	if !ok {
		name = fmt.Sprintf("class_%d", index)
	}
	return strings.ReplaceAll(name, "_", " ")
}
