// Package maintenance changes files and folders on disk and keeps the path
// cache pointing at what is really there.
package maintenance

import (
	"path/filepath"
	"strings"

	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
	"go.trai.ch/zerr"
)

// Maintainer performs rename, delete and create operations.
// The disk change happens first; the cache is updated only when it succeeded.
type Maintainer struct {
	cache   ports.PathCache
	fsys    ports.FileSystem
	logger  ports.Logger
	baseDir string
}

// New creates a Maintainer that creates folders under baseDir.
func New(cache ports.PathCache, fsys ports.FileSystem, logger ports.Logger, baseDir string) *Maintainer {
	return &Maintainer{
		cache:   cache,
		fsys:    fsys,
		logger:  logger,
		baseDir: baseDir,
	}
}

// Rename moves oldPath to newName. A bare name stays in the same folder; an
// absolute path is used as is. Any other relative name is refused. Cached keys follow the entry, and keys that
// pointed inside a renamed folder are dropped.
func (m *Maintainer) Rename(oldPath, newName string) (domain.Item, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return domain.Item{}, domain.ErrEmptyName
	}

	oldPath = filepath.Clean(oldPath)
	newPath := newName
	if !filepath.IsAbs(newPath) {
		if !isBareName(newName) {
			return domain.Item{}, zerr.With(zerr.Wrap(domain.ErrInvalidName, ""), "name", newName)
		}
		newPath = filepath.Join(filepath.Dir(oldPath), newName)
	}
	newPath = filepath.Clean(newPath)

	item, err := m.fsys.Stat(oldPath)
	if err != nil {
		return domain.Item{}, err
	}
	if newPath == oldPath {
		return item, nil
	}

	if err := m.fsys.Rename(oldPath, newPath); err != nil {
		return domain.Item{}, err
	}

	moved := m.cache.ReplaceValue(oldPath, newPath)
	dropped := 0
	if item.IsDir() {
		dropped = m.cache.RemoveWithin(oldPath)
	}

	m.logger.Info("renamed", "from", oldPath, "to", newPath, "moved", moved, "dropped", dropped)
	return domain.NewItem(newPath, item.IsDir()), nil
}

func isBareName(name string) bool {
	return name != "." && name != ".." && filepath.Base(name) == name && !strings.ContainsAny(name, `/\`)
}

// Delete removes path. Non-empty folders need recursive.
func (m *Maintainer) Delete(path string, recursive bool) (domain.Item, error) {
	path = filepath.Clean(path)

	item, err := m.fsys.Stat(path)
	if err != nil {
		return domain.Item{}, err
	}

	if err := m.fsys.Remove(path, recursive); err != nil {
		return domain.Item{}, err
	}

	dropped := m.cache.RemoveByValue(path)
	if item.IsDir() {
		dropped += m.cache.RemoveWithin(path)
	}

	m.logger.Info("deleted", "path", path, "kind", item.Kind.String(), "dropped", dropped)
	return item, nil
}

// CreateFolder creates name under the base directory. The cache is not touched.
func (m *Maintainer) CreateFolder(name string) (domain.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Item{}, domain.ErrEmptyName
	}

	path := filepath.Join(m.baseDir, name)
	if !domain.IsWithin(path, m.baseDir) {
		return domain.Item{}, zerr.With(zerr.Wrap(domain.ErrCreateFolderFailed, "folder must stay inside the base directory"), "name", name)
	}

	if err := m.fsys.Mkdir(path); err != nil {
		return domain.Item{}, err
	}

	m.logger.Info("created folder", "path", path)
	return domain.NewItem(path, true), nil
}

// Refresh forgets every cached path and returns how many there were.
func (m *Maintainer) Refresh() int {
	n := m.cache.Len()
	m.cache.Clear()
	m.logger.Info("path cache cleared", "entries", n)
	return n
}
