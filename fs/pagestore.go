package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fwojciec/nethys"
)

// File extensions of the page cache.
const (
	PageExt    = ".html"
	MissingExt = ".404"
)

// Ensure PageStore implements nethys.PageCache at compile time.
var _ nethys.PageCache = (*PageStore)(nil)

// PageStore caches fetched entry markup as <dataDir>/<category-dir>/<id>.html.
// Ids the site reported as nonexistent get an empty <id>.404 marker.
type PageStore struct {
	dataDir string
}

// NewPageStore creates a PageStore rooted at dataDir.
func NewPageStore(dataDir string) *PageStore {
	return &PageStore{dataDir: dataDir}
}

func (s *PageStore) path(info nethys.CategoryInfo, id int, ext string) string {
	return filepath.Join(s.dataDir, info.Dir, strconv.Itoa(id)+ext)
}

// Has reports whether the entry was already saved or marked missing.
func (s *PageStore) Has(info nethys.CategoryInfo, id int) bool {
	return exists(s.path(info, id, PageExt)) || exists(s.path(info, id, MissingExt))
}

// Save writes the entry markup to its page file.
func (s *PageStore) Save(ctx context.Context, info nethys.CategoryInfo, id int, markup string) error {
	path := s.path(info, id, PageExt)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(markup), 0644)
}

// MarkMissing writes an empty marker recording that the entry does not exist.
func (s *PageStore) MarkMissing(ctx context.Context, info nethys.CategoryInfo, id int) error {
	path := s.path(info, id, MissingExt)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, nil, 0644)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
