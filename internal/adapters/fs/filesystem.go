package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
	"go.trai.ch/zerr"
)

// FileSystem implements ports.FileSystem on the local disk.
type FileSystem struct{}

var _ ports.FileSystem = (*FileSystem)(nil)

// NewFileSystem creates a new FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// Stat returns the entry at path, following symlinks.
func (f *FileSystem) Stat(path string) (domain.Item, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Item{}, zerr.With(zerr.Wrap(err, domain.ErrStatFailed.Error()), "path", path)
	}
	return domain.NewItem(path, info.IsDir()), nil
}

// Exists reports whether anything, including a dangling symlink, is at path.
func (f *FileSystem) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Rename moves oldPath to newPath without replacing an existing entry.
func (f *FileSystem) Rename(oldPath, newPath string) error {
	if f.Exists(newPath) {
		return zerr.With(zerr.Wrap(domain.ErrTargetExists, ""), "path", newPath)
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		err = zerr.Wrap(err, domain.ErrRenameFailed.Error())
		err = zerr.With(err, "from", oldPath)
		return zerr.With(err, "to", newPath)
	}
	return nil
}

// Remove deletes a file or directory. A non-empty directory needs recursive.
func (f *FileSystem) Remove(path string, recursive bool) error {
	info, err := os.Lstat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDeleteFailed.Error()), "path", path)
	}

	if info.IsDir() && !recursive {
		entries, err := os.ReadDir(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, domain.ErrDeleteFailed.Error()), "path", path)
		}
		if len(entries) > 0 {
			return zerr.With(zerr.Wrap(domain.ErrDirectoryNotEmpty, ""), "path", path)
		}
	}

	remove := os.Remove
	if recursive {
		remove = os.RemoveAll
	}
	if err := remove(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDeleteFailed.Error()), "path", path)
	}
	return nil
}

// Mkdir creates path and any missing parents. An existing directory is not an error.
func (f *FileSystem) Mkdir(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCreateFolderFailed.Error()), "path", path)
	}
	return nil
}
