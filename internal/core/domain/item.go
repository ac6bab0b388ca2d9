package domain

import (
	"path/filepath"
	"strings"
)

// Kind tells files and directories apart.
type Kind uint8

const (
	// KindFile is a regular file (or anything that is not a directory).
	KindFile Kind = iota
	// KindDirectory is a directory.
	KindDirectory
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// KindOf returns KindDirectory when isDir is set.
func KindOf(isDir bool) Kind {
	if isDir {
		return KindDirectory
	}
	return KindFile
}

// Item is a filesystem entry found while resolving a query.
type Item struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Kind Kind   `json:"kind"`
}

// NewItem builds an Item from an absolute path.
func NewItem(path string, isDir bool) Item {
	return Item{
		Name: filepath.Base(path),
		Path: path,
		Kind: KindOf(isDir),
	}
}

// IsDir reports whether the item is a directory.
func (i Item) IsDir() bool {
	return i.Kind == KindDirectory
}

// Source records how a resolution was obtained.
type Source uint8

const (
	// SourceCache means the path came from the path cache.
	SourceCache Source = iota
	// SourceExact means a walked entry's name equals the query.
	SourceExact
	// SourceFuzzy means the best scoring candidate cleared the threshold.
	SourceFuzzy
)

// String returns the lower-case name of the source.
func (s Source) String() string {
	switch s {
	case SourceCache:
		return "cache"
	case SourceExact:
		return "exact"
	case SourceFuzzy:
		return "fuzzy"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Resolution is a successful answer to a query.
type Resolution struct {
	Item
	Source Source `json:"source"`
	// Score is the fuzzy score, 100 for exact and cached hits.
	Score int `json:"score"`
}

// NormalizeQuery lower-cases and trims a query. The result is also the cache key.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// IsHidden reports whether a base name is hidden from the walk.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, HiddenPrefix)
}

// IsWithin reports whether path lies strictly inside dir.
func IsWithin(path, dir string) bool {
	dir = filepath.Clean(dir)
	path = filepath.Clean(path)
	if dir == path {
		return false
	}
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		dir += string(filepath.Separator)
	}
	return strings.HasPrefix(path, dir)
}
