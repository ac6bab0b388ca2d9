// Package fs provides file system adapters for walking search roots and changing entries on disk.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
)

// Walker implements ports.Walker with a bounded, depth-first directory listing.
type Walker struct {
	readDir func(dir string) ([]fs.DirEntry, error)
	stat    func(path string) (fs.FileInfo, error)
}

var _ ports.Walker = (*Walker)(nil)

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{
		readDir: readDirUnsorted,
		stat:    os.Stat,
	}
}

// readDirUnsorted lists dir in the order the OS returns entries.
func readDirUnsorted(dir string) ([]fs.DirEntry, error) {
	//nolint:gosec // Directories come from configured search roots
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return f.ReadDir(-1)
}

// Walk scans root for entries whose lower-cased name contains query.
// Entries directly under root are depth 0; directories are descended while depth < maxDepth-1.
// Hidden entries are neither matched nor descended. Symlinked directories are matched but not descended.
func (w *Walker) Walk(root, query string, maxDepth int) domain.WalkReport {
	report := domain.WalkReport{Root: root}

	info, err := w.stat(root)
	if err != nil || !info.IsDir() {
		report.Skips = append(report.Skips, domain.Skip{Path: root, Reason: domain.SkipMissingRoot, Err: err})
		return report
	}

	w.walkDir(&report, root, query, 0, maxDepth)
	return report
}

func (w *Walker) walkDir(report *domain.WalkReport, dir, query string, depth, maxDepth int) {
	entries, err := w.readDir(dir)
	if err != nil {
		report.Skips = append(report.Skips, domain.Skip{Path: dir, Reason: classify(err), Err: err})
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if domain.IsHidden(name) {
			continue
		}

		path := filepath.Join(dir, name)
		isDir := w.isDir(entry, path)

		if strings.Contains(strings.ToLower(name), query) {
			report.Candidates = append(report.Candidates, domain.NewItem(path, isDir))
		}

		if isDir && entry.Type()&fs.ModeSymlink == 0 && depth < maxDepth-1 {
			w.walkDir(report, path, query, depth+1, maxDepth)
		}
	}
}

// isDir follows symlinks so a link to a directory reports as one.
func (w *Walker) isDir(entry fs.DirEntry, path string) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := w.stat(path)
	return err == nil && info.IsDir()
}

func classify(err error) domain.SkipReason {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return domain.SkipPermission
	case errors.Is(err, fs.ErrNotExist):
		return domain.SkipNotExist
	default:
		return domain.SkipIO
	}
}
