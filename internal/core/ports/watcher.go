package ports

import "context"

// Watcher keeps the path cache in sync with changes made outside the assistant.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Watch blocks until ctx is done, evicting cache entries whose paths are removed or renamed.
	Watch(ctx context.Context) error
}
