package domain

import "go.trai.ch/zerr"

var (
	// ErrNotFound is returned when no cached, exact or sufficiently similar entry matches a query.
	ErrNotFound = zerr.New("no matching file or folder found")

	// ErrEmptyQuery is returned when a query is blank after normalization.
	ErrEmptyQuery = zerr.New("query is empty")

	// ErrNoRoots is returned when there is no search root to walk.
	ErrNoRoots = zerr.New("no search roots configured")

	// ErrResolveCanceled is returned when resolution stops because the context was canceled.
	ErrResolveCanceled = zerr.New("resolution canceled")

	// ErrCacheReadFailed is returned when the path cache file cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read path cache")

	// ErrCacheDecodeFailed is returned when the path cache file is not valid JSON.
	ErrCacheDecodeFailed = zerr.New("failed to decode path cache")

	// ErrCacheTimestampInvalid is returned when the path cache timestamp cannot be parsed.
	ErrCacheTimestampInvalid = zerr.New("invalid path cache timestamp")

	// ErrCacheWriteFailed is returned when the path cache cannot be persisted.
	ErrCacheWriteFailed = zerr.New("failed to write path cache")

	// ErrTargetExists is returned when a rename or create would replace an existing entry.
	ErrTargetExists = zerr.New("target already exists")

	// ErrEmptyName is returned when a new name is blank.
	ErrEmptyName = zerr.New("name is empty")

	// ErrInvalidName is returned when a relative new name is not a single path element.
	ErrInvalidName = zerr.New("name must not contain path separators")

	// ErrRenameFailed is returned when an entry cannot be renamed on disk.
	ErrRenameFailed = zerr.New("failed to rename")

	// ErrDeleteFailed is returned when an entry cannot be removed from disk.
	ErrDeleteFailed = zerr.New("failed to delete")

	// ErrDirectoryNotEmpty is returned when deleting a non-empty directory without recursion.
	ErrDirectoryNotEmpty = zerr.New("directory is not empty, use recursive delete")

	// ErrCreateFolderFailed is returned when a folder cannot be created.
	ErrCreateFolderFailed = zerr.New("failed to create folder")

	// ErrStatFailed is returned when an entry cannot be inspected.
	ErrStatFailed = zerr.New("failed to inspect path")

	// ErrInvalidCommand is returned when a free-text command cannot be parsed.
	ErrInvalidCommand = zerr.New("invalid command")

	// ErrInvalidRenameCommand is returned when a rename command has no "to" clause.
	ErrInvalidRenameCommand = zerr.New("invalid rename command, use: rename <old name> to <new name>")

	// ErrOpenFailed is returned when the platform opener cannot be started.
	ErrOpenFailed = zerr.New("failed to open")

	// ErrLaunchFailed is returned when an application cannot be started.
	ErrLaunchFailed = zerr.New("failed to launch application")

	// ErrEmptyAppName is returned when launch is called without an application name.
	ErrEmptyAppName = zerr.New("application name is empty")

	// ErrUnsupportedPlatform is returned when there is no known opener for the OS.
	ErrUnsupportedPlatform = zerr.New("unsupported platform")

	// ErrStateReadFailed is returned when the sleep state file cannot be read.
	ErrStateReadFailed = zerr.New("failed to read sleep state")

	// ErrStateWriteFailed is returned when the sleep state file cannot be written.
	ErrStateWriteFailed = zerr.New("failed to write sleep state")

	// ErrStateVerifyFailed is returned when the sleep state read back differs from what was written.
	ErrStateVerifyFailed = zerr.New("sleep state verification failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrUnknownScorer is returned when the configured scorer name is not recognized.
	ErrUnknownScorer = zerr.New("unknown scorer, expected one of weighted, ratio, token_sort, token_set, jaro_winkler")

	// ErrWatcherStartFailed is returned when the filesystem watcher cannot be created.
	ErrWatcherStartFailed = zerr.New("failed to start filesystem watcher")

	// ErrTracerInitFailed is returned when the trace exporter cannot be set up.
	ErrTracerInitFailed = zerr.New("failed to initialize tracing")
)
