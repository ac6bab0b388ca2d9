package domain

import "strings"

// SkipReason classifies why part of a search root contributed nothing.
type SkipReason uint8

const (
	// SkipMissingRoot means the root itself does not exist or is not a directory.
	SkipMissingRoot SkipReason = iota
	// SkipPermission means a directory could not be listed due to permissions.
	SkipPermission
	// SkipNotExist means a directory disappeared during the walk.
	SkipNotExist
	// SkipIO covers any other listing failure.
	SkipIO
)

// String returns the snake_case name of the reason.
func (r SkipReason) String() string {
	switch r {
	case SkipMissingRoot:
		return "missing_root"
	case SkipPermission:
		return "permission"
	case SkipNotExist:
		return "not_exist"
	case SkipIO:
		return "io"
	default:
		return "unknown"
	}
}

// Skip records one directory the walker could not read.
type Skip struct {
	Path   string
	Reason SkipReason
	Err    error
}

// WalkReport is the result of walking one search root.
type WalkReport struct {
	Root string
	// Candidates are entries whose lower-cased name contains the query, in walk order.
	Candidates []Item
	Skips      []Skip
}

// FirstExact returns the first candidate whose lower-cased name equals query.
// The query must already be normalized.
func (r WalkReport) FirstExact(query string) (Item, bool) {
	for _, c := range r.Candidates {
		if strings.ToLower(c.Name) == query {
			return c, true
		}
	}
	return Item{}, false
}
