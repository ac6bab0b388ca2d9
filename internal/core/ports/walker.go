package ports

import "go.stonic.dev/stonic/internal/core/domain"

// Walker scans one search root for entries whose name contains a query.
//
//go:generate mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks
type Walker interface {
	// Walk lists root down to maxDepth levels and collects candidates in walk order.
	// The query must be normalized. Unreadable directories become skip records.
	Walk(root, query string, maxDepth int) domain.WalkReport
}
