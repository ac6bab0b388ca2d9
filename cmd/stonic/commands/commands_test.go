package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.stonic.dev/stonic/cmd/stonic/commands"
	"go.stonic.dev/stonic/internal/build"
	"go.stonic.dev/stonic/internal/core/domain"
)

type mockApp struct {
	resolveFunc      func(ctx context.Context, query string) (domain.Resolution, error)
	openFunc         func(ctx context.Context, query string) (domain.Resolution, error)
	doFunc           func(ctx context.Context, command string) string
	renameFunc       func(ctx context.Context, query, newName string) (domain.Item, error)
	deleteFunc       func(ctx context.Context, query string, recursive bool) (domain.Item, error)
	createFolderFunc func(ctx context.Context, name string) (domain.Item, error)
	refreshFunc      func(ctx context.Context) int
	entries          []domain.CacheEntry
	launchFunc       func(ctx context.Context, app string) (string, error)
	setSleepingFunc  func(sleeping bool) error
	status           string
	serveFunc        func(ctx context.Context, t mcp.Transport) error
}

func (m *mockApp) Resolve(ctx context.Context, query string) (domain.Resolution, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, query)
	}
	return domain.Resolution{}, nil
}

func (m *mockApp) Open(ctx context.Context, query string) (domain.Resolution, error) {
	if m.openFunc != nil {
		return m.openFunc(ctx, query)
	}
	return domain.Resolution{}, nil
}

func (m *mockApp) Do(ctx context.Context, command string) string {
	if m.doFunc != nil {
		return m.doFunc(ctx, command)
	}
	return ""
}

func (m *mockApp) Rename(ctx context.Context, query, newName string) (domain.Item, error) {
	if m.renameFunc != nil {
		return m.renameFunc(ctx, query, newName)
	}
	return domain.Item{}, nil
}

func (m *mockApp) Delete(ctx context.Context, query string, recursive bool) (domain.Item, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, query, recursive)
	}
	return domain.Item{}, nil
}

func (m *mockApp) CreateFolder(ctx context.Context, name string) (domain.Item, error) {
	if m.createFolderFunc != nil {
		return m.createFolderFunc(ctx, name)
	}
	return domain.Item{}, nil
}

func (m *mockApp) RefreshCache(ctx context.Context) int {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx)
	}
	return 0
}

func (m *mockApp) CachedPaths() []domain.CacheEntry {
	return m.entries
}

func (m *mockApp) Launch(ctx context.Context, app string) (string, error) {
	if m.launchFunc != nil {
		return m.launchFunc(ctx, app)
	}
	return app, nil
}

func (m *mockApp) SetSleeping(sleeping bool) error {
	if m.setSleepingFunc != nil {
		return m.setSleepingFunc(sleeping)
	}
	return nil
}

func (m *mockApp) SleepStatus() string {
	return m.status
}

func (m *mockApp) Serve(ctx context.Context, t mcp.Transport) error {
	if m.serveFunc != nil {
		return m.serveFunc(ctx, t)
	}
	return nil
}

type fakeLogControl struct {
	json    bool
	verbose bool
}

func (f *fakeLogControl) SetJSON(enabled bool)    { f.json = enabled }
func (f *fakeLogControl) SetVerbose(enabled bool) { f.verbose = enabled }

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cli := commands.New(a)
	out := new(bytes.Buffer)
	cli.SetOutput(out, out)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Resolve(t *testing.T) {
	alpha := domain.Resolution{
		Item:   domain.NewItem("/home/u/Documents/ProjectAlpha", true),
		Source: domain.SourceExact,
		Score:  100,
	}

	t.Run("joins words into one query", func(t *testing.T) {
		var got string
		mock := &mockApp{
			resolveFunc: func(_ context.Context, query string) (domain.Resolution, error) {
				got = query
				return alpha, nil
			},
		}

		out, err := execute(t, mock, "resolve", "project", "alpha")
		require.NoError(t, err)
		assert.Equal(t, "project alpha", got)
		assert.Contains(t, out, "ProjectAlpha")
		assert.Contains(t, out, "/home/u/Documents/ProjectAlpha")
		assert.Contains(t, out, "(exact, 100)")
	})

	t.Run("json output", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(context.Context, string) (domain.Resolution, error) {
				return alpha, nil
			},
		}

		out, err := execute(t, mock, "resolve", "--json", "projectalpha")
		require.NoError(t, err)
		assert.Contains(t, out, `"path": "/home/u/Documents/ProjectAlpha"`)
		assert.Contains(t, out, `"kind": "directory"`)
		assert.Contains(t, out, `"source": "exact"`)
	})

	t.Run("not found is returned", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(context.Context, string) (domain.Resolution, error) {
				return domain.Resolution{}, domain.ErrNotFound
			},
		}

		_, err := execute(t, mock, "resolve", "ghost")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("requires a query", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(context.Context, string) (domain.Resolution, error) {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "resolve")
		require.Error(t, err)
	})
}

func TestCommands_Open(t *testing.T) {
	mock := &mockApp{
		openFunc: func(_ context.Context, query string) (domain.Resolution, error) {
			return domain.Resolution{Item: domain.NewItem("/d/"+query+".txt", false), Source: domain.SourceFuzzy, Score: 88}, nil
		},
	}

	out, err := execute(t, mock, "open", "notes")
	require.NoError(t, err)
	assert.Contains(t, out, "notes.txt")
	assert.Contains(t, out, "(fuzzy, 88)")
}

func TestCommands_Do(t *testing.T) {
	var got string
	mock := &mockApp{
		doFunc: func(_ context.Context, command string) string {
			got = command
			return "Folder created: /d/reports"
		},
	}

	out, err := execute(t, mock, "do", "create", "folder", "reports")
	require.NoError(t, err)
	assert.Equal(t, "create folder reports", got)
	assert.Equal(t, "Folder created: /d/reports\n", out)
}

func TestCommands_Rename(t *testing.T) {
	t.Run("passes query and new name", func(t *testing.T) {
		var query, newName string
		mock := &mockApp{
			renameFunc: func(_ context.Context, q, n string) (domain.Item, error) {
				query, newName = q, n
				return domain.NewItem("/d/beta", true), nil
			},
		}

		out, err := execute(t, mock, "rename", "project alpha", "beta")
		require.NoError(t, err)
		assert.Equal(t, "project alpha", query)
		assert.Equal(t, "beta", newName)
		assert.Contains(t, out, "/d/beta")
	})

	t.Run("needs two arguments", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "rename", "alpha")
		require.Error(t, err)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			renameFunc: func(context.Context, string, string) (domain.Item, error) {
				return domain.Item{}, domain.ErrTargetExists
			},
		}

		_, err := execute(t, mock, "rename", "alpha", "beta")
		require.ErrorIs(t, err, domain.ErrTargetExists)
	})
}

func TestCommands_Delete(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		recursive bool
	}{
		{name: "default", args: []string{"delete", "old", "notes"}},
		{name: "long flag", args: []string{"delete", "--recursive", "old", "notes"}, recursive: true},
		{name: "short flag", args: []string{"delete", "-r", "old", "notes"}, recursive: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var query string
			var recursive bool
			mock := &mockApp{
				deleteFunc: func(_ context.Context, q string, r bool) (domain.Item, error) {
					query, recursive = q, r
					return domain.NewItem("/d/old notes", true), nil
				},
			}

			out, err := execute(t, mock, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, "old notes", query)
			assert.Equal(t, tt.recursive, recursive)
			assert.Contains(t, out, "deleted /d/old notes")
		})
	}
}

func TestCommands_Mkdir(t *testing.T) {
	var got string
	mock := &mockApp{
		createFolderFunc: func(_ context.Context, name string) (domain.Item, error) {
			got = name
			return domain.NewItem("/d/"+name, true), nil
		},
	}

	out, err := execute(t, mock, "mkdir", "tax", "2024")
	require.NoError(t, err)
	assert.Equal(t, "tax 2024", got)
	assert.Contains(t, out, "created /d/tax 2024")
}

func TestCommands_Launch(t *testing.T) {
	t.Run("prints the command line", func(t *testing.T) {
		mock := &mockApp{
			launchFunc: func(context.Context, string) (string, error) {
				return "gnome-calculator", nil
			},
		}

		out, err := execute(t, mock, "launch", "calculator")
		require.NoError(t, err)
		assert.Contains(t, out, "started gnome-calculator")
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			launchFunc: func(context.Context, string) (string, error) {
				return "", errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "launch", "calculator")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Cache(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		mock := &mockApp{
			entries: []domain.CacheEntry{
				{Key: "project alpha", Path: "/d/ProjectAlpha", RecordedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
			},
		}

		out, err := execute(t, mock, "cache", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "project alpha")
		assert.Contains(t, out, "/d/ProjectAlpha")
		assert.Contains(t, out, "2026-01-02 03:04:05")
	})

	t.Run("list json", func(t *testing.T) {
		mock := &mockApp{
			entries: []domain.CacheEntry{{Key: "notes", Path: "/d/notes.txt"}},
		}

		out, err := execute(t, mock, "cache", "list", "--json")
		require.NoError(t, err)
		assert.Contains(t, out, `"key": "notes"`)
		assert.Contains(t, out, `"path": "/d/notes.txt"`)
	})

	t.Run("clear", func(t *testing.T) {
		called := false
		mock := &mockApp{
			refreshFunc: func(context.Context) int {
				called = true
				return 3
			},
		}

		out, err := execute(t, mock, "cache", "clear")
		require.NoError(t, err)
		assert.True(t, called)
		assert.Contains(t, out, "cleared 3 cached paths")
	})
}

func TestCommands_SleepWake(t *testing.T) {
	var calls []bool
	mock := &mockApp{
		setSleepingFunc: func(sleeping bool) error {
			calls = append(calls, sleeping)
			return nil
		},
		status: domain.AwakeStatus,
	}

	out, err := execute(t, mock, "sleep")
	require.NoError(t, err)
	assert.Equal(t, domain.SleepingStatus+"\n", out)

	out, err = execute(t, mock, "wake")
	require.NoError(t, err)
	assert.Equal(t, domain.WakeReply+"\n", out)

	out, err = execute(t, mock, "status")
	require.NoError(t, err)
	assert.Equal(t, domain.AwakeStatus+"\n", out)

	assert.Equal(t, []bool{true, false}, calls)
}

func TestCommands_SleepWriteFails(t *testing.T) {
	mock := &mockApp{
		setSleepingFunc: func(bool) error {
			return domain.ErrStateWriteFailed
		},
	}

	_, err := execute(t, mock, "sleep")
	require.ErrorIs(t, err, domain.ErrStateWriteFailed)
}

func TestCommands_Serve(t *testing.T) {
	var transport mcp.Transport
	mock := &mockApp{
		serveFunc: func(_ context.Context, t mcp.Transport) error {
			transport = t
			return nil
		},
	}

	_, err := execute(t, mock, "serve")
	require.NoError(t, err)
	assert.IsType(t, &mcp.StdioTransport{}, transport)
}

func TestCommands_LogFlags(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	lc := &fakeLogControl{}

	cli := commands.New(&mockApp{status: domain.AwakeStatus}, commands.WithLogControl(lc))
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"--json-logs", "-v", "status"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, lc.json)
	assert.True(t, lc.verbose)
}

func TestCommands_Version(t *testing.T) {
	t.Run("subcommand", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "version")
		require.NoError(t, err)
		assert.Equal(t, "stonic version "+build.Version+"\n", out)
	})

	t.Run("flag", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "--version")
		require.NoError(t, err)
		assert.Contains(t, out, "stonic version "+build.Version)
		assert.Contains(t, out, "commit: "+build.Commit)
	})
}
