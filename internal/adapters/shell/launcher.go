// Package shell starts desktop processes: the platform opener for files and
// folders, and applications named in the configured app table.
package shell

import (
	"context"
	"os/exec"
	"runtime"
	"strings"

	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
	"go.trai.ch/zerr"
)

// StartFunc starts a process without waiting for it to exit.
type StartFunc func(ctx context.Context, name string, args ...string) error

// Option configures a Launcher.
type Option func(*Launcher)

// WithGOOS overrides the platform used to pick the opener.
func WithGOOS(goos string) Option {
	return func(l *Launcher) {
		l.goos = goos
	}
}

// WithStart replaces the process starter.
func WithStart(start StartFunc) Option {
	return func(l *Launcher) {
		l.start = start
	}
}

// Launcher implements ports.Launcher with os/exec.
type Launcher struct {
	apps   map[string]string
	goos   string
	start  StartFunc
	logger ports.Logger
}

// NewLauncher creates a Launcher. Keys of apps must already be normalized.
func NewLauncher(apps map[string]string, logger ports.Logger, opts ...Option) *Launcher {
	l := &Launcher{
		apps:   apps,
		goos:   runtime.GOOS,
		start:  startDetached,
		logger: logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open opens item with the platform opener.
func (l *Launcher) Open(ctx context.Context, item domain.Item) error {
	name, args, ok := openerCommand(l.goos, item.Path)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrUnsupportedPlatform, ""), "goos", l.goos)
	}

	if err := l.start(ctx, name, args...); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOpenFailed.Error()), "path", item.Path)
	}

	l.logger.Info("opened", "path", item.Path, "kind", item.Kind.String())
	return nil
}

// Launch starts the application mapped to app, or app itself when it is not in the table.
// It returns the command line that was started.
func (l *Launcher) Launch(ctx context.Context, app string) (string, error) {
	key := domain.NormalizeQuery(app)
	if key == "" {
		return "", domain.ErrEmptyAppName
	}

	cmdline, ok := l.apps[key]
	if !ok {
		cmdline = strings.TrimSpace(app)
	}

	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return "", zerr.With(zerr.Wrap(domain.ErrEmptyAppName, ""), "app", app)
	}

	if err := l.start(ctx, fields[0], fields[1:]...); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrLaunchFailed.Error()), "app", key)
	}

	l.logger.Info("launched", "app", key, "command", cmdline, "mapped", ok)
	return cmdline, nil
}

func openerCommand(goos, path string) (string, []string, bool) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{path}, true
	case "darwin":
		return "open", []string{path}, true
	case "windows":
		// The empty argument is the window title expected by start.
		return "cmd", []string{"/c", "start", "", path}, true
	default:
		return "", nil, false
	}
}

func startDetached(ctx context.Context, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Not bound to ctx: the started program outlives the command that opened it.
	cmd := exec.Command(name, args...) //nolint:gosec // program comes from the user's app table
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
