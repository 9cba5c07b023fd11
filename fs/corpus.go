// Package fs provides file-based storage for the entry corpus and the
// packed upload batches.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/nethys"
)

// Ensure Corpus implements nethys.Corpus at compile time.
var _ nethys.Corpus = (*Corpus)(nil)

// Corpus reads entry markup from <dataDir>/<category-dir>/<id>.html.
type Corpus struct {
	dataDir    string
	categories []nethys.CategoryInfo

	// Include limits entries to those whose slash-separated path relative to
	// the data directory matches one of these patterns ("spells/1*.html",
	// "**/12.html"). All entries are listed when empty.
	Include []string
}

// NewCorpus creates a Corpus over dataDir. When categories are given only
// those are listed and each must have a directory; otherwise every category
// directory present is listed.
func NewCorpus(dataDir string, categories ...nethys.CategoryInfo) *Corpus {
	return &Corpus{dataDir: dataDir, categories: categories}
}

// Entries lists entries ordered by category directory, then numeric id.
// Empty files and missing markers are left out.
func (c *Corpus) Entries(ctx context.Context) ([]nethys.Entry, error) {
	for _, pattern := range c.Include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, nethys.Errorf(nethys.ECONFIG, "invalid include pattern %q", pattern)
		}
	}

	infos, err := c.resolveCategories()
	if err != nil {
		return nil, err
	}

	var entries []nethys.Entry
	for _, info := range infos {
		ids, err := c.categoryIDs(info)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			if !c.included(info.Dir + "/" + strconv.Itoa(id) + PageExt) {
				continue
			}
			entries = append(entries, nethys.Entry{Category: info.Category, ID: strconv.Itoa(id)})
		}
	}
	return entries, nil
}

// Markup returns the stored markup of an entry.
func (c *Corpus) Markup(ctx context.Context, entry nethys.Entry) (string, error) {
	info, ok := nethys.LookupCategory(entry.Category)
	if !ok {
		return "", nethys.Errorf(nethys.EINVALID, "unknown category %q", entry.Category)
	}
	data, err := os.ReadFile(filepath.Join(c.dataDir, info.Dir, entry.ID+PageExt))
	if errors.Is(err, os.ErrNotExist) {
		return "", nethys.Errorf(nethys.ENOTFOUND, "%s-%s not in corpus", entry.Category, entry.ID)
	} else if err != nil {
		return "", err
	}
	return string(data), nil
}

func (c *Corpus) included(rel string) bool {
	if len(c.Include) == 0 {
		return true
	}
	for _, pattern := range c.Include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func (c *Corpus) resolveCategories() ([]nethys.CategoryInfo, error) {
	if fi, err := os.Stat(c.dataDir); err != nil || !fi.IsDir() {
		return nil, nethys.Errorf(nethys.ECONFIG, "data directory %s not found", c.dataDir)
	}

	if len(c.categories) > 0 {
		infos := append([]nethys.CategoryInfo(nil), c.categories...)
		sort.SliceStable(infos, func(i, j int) bool { return infos[i].Dir < infos[j].Dir })
		for _, info := range infos {
			if fi, err := os.Stat(filepath.Join(c.dataDir, info.Dir)); err != nil || !fi.IsDir() {
				return nil, nethys.Errorf(nethys.ECONFIG, "category directory %s not found", info.Dir)
			}
		}
		return infos, nil
	}

	dirEntries, err := os.ReadDir(c.dataDir)
	if err != nil {
		return nil, err
	}
	var infos []nethys.CategoryInfo
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}
		info, ok := nethys.LookupDir(de.Name())
		if !ok {
			return nil, nethys.Errorf(nethys.ECONFIG, "unknown category directory %s", de.Name())
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (c *Corpus) categoryIDs(info nethys.CategoryInfo) ([]int, error) {
	dirEntries, err := os.ReadDir(filepath.Join(c.dataDir, info.Dir))
	if err != nil {
		return nil, err
	}

	var ids []int
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(name, PageExt) {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSuffix(name, PageExt))
		if err != nil || id <= 0 {
			continue
		}
		fi, err := de.Info()
		if err != nil {
			return nil, err
		}
		if fi.Size() == 0 {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}
