package ports

import (
	"context"

	"go.stonic.dev/stonic/internal/core/domain"
)

// Launcher starts desktop processes.
//
//go:generate mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Launcher interface {
	// Open opens a file or directory with the platform opener.
	Open(ctx context.Context, item domain.Item) error

	// Launch starts an application by spoken name and returns the command line used.
	Launch(ctx context.Context, app string) (string, error)
}
