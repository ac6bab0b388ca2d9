// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.stonic.dev/stonic/internal/adapters/config"
	_ "go.stonic.dev/stonic/internal/adapters/fs"
	_ "go.stonic.dev/stonic/internal/adapters/fuzzy"
	_ "go.stonic.dev/stonic/internal/adapters/logger"
	_ "go.stonic.dev/stonic/internal/adapters/pathcache"
	_ "go.stonic.dev/stonic/internal/adapters/shell"
	_ "go.stonic.dev/stonic/internal/adapters/state"
	_ "go.stonic.dev/stonic/internal/adapters/telemetry"
	_ "go.stonic.dev/stonic/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.stonic.dev/stonic/internal/app"
	_ "go.stonic.dev/stonic/internal/engine/maintenance"
	_ "go.stonic.dev/stonic/internal/engine/resolver"
)
