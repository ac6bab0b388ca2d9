package ports

import "go.stonic.dev/stonic/internal/core/domain"

// FileSystem performs the disk side of maintenance operations.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Stat returns the entry at path.
	Stat(path string) (domain.Item, error)

	// Exists reports whether anything is at path.
	Exists(path string) bool

	// Rename moves oldPath to newPath. It fails if newPath exists.
	Rename(oldPath, newPath string) error

	// Remove deletes a file or directory. Non-empty directories need recursive.
	Remove(path string, recursive bool) error

	// Mkdir creates a directory and any missing parents.
	Mkdir(path string) error
}
