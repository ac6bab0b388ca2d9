package fs_test

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.stonic.dev/stonic/internal/adapters/fs"
	"go.stonic.dev/stonic/internal/core/domain"
)

// buildTree creates:
//
//	root/
//	  ProjectAlpha/
//	    alpha-notes.txt
//	    deep/
//	      alphaDeep/
//	        tooDeep-alpha.txt
//	  .hidden-alpha/
//	    alpha.txt
//	  beta.txt
func buildTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	dirs := []string{
		"ProjectAlpha/deep/alphaDeep",
		".hidden-alpha",
	}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0o750))
	}

	files := []string{
		"ProjectAlpha/alpha-notes.txt",
		"ProjectAlpha/deep/alphaDeep/tooDeep-alpha.txt",
		".hidden-alpha/alpha.txt",
		"beta.txt",
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, filepath.FromSlash(f)), []byte("x"), 0o600))
	}
	return root
}

func candidatePaths(report domain.WalkReport) []string {
	paths := make([]string, 0, len(report.Candidates))
	for _, c := range report.Candidates {
		paths = append(paths, c.Path)
	}
	return paths
}

func TestWalker_Walk(t *testing.T) {
	root := buildTree(t)
	w := fs.NewWalker()

	report := w.Walk(root, "alpha", domain.DefaultMaxDepth)

	assert.Equal(t, root, report.Root)
	assert.Empty(t, report.Skips)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "ProjectAlpha"),
		filepath.Join(root, "ProjectAlpha", "alpha-notes.txt"),
		filepath.Join(root, "ProjectAlpha", "deep", "alphaDeep"),
	}, candidatePaths(report))

	for _, c := range report.Candidates {
		switch c.Name {
		case "ProjectAlpha", "alphaDeep":
			assert.Equal(t, domain.KindDirectory, c.Kind, c.Name)
		default:
			assert.Equal(t, domain.KindFile, c.Kind, c.Name)
		}
	}
}

func TestWalker_Walk_DepthLimit(t *testing.T) {
	root := buildTree(t)
	w := fs.NewWalker()

	tests := []struct {
		maxDepth int
		want     []string
	}{
		{maxDepth: 1, want: []string{filepath.Join(root, "ProjectAlpha")}},
		{maxDepth: 2, want: []string{
			filepath.Join(root, "ProjectAlpha"),
			filepath.Join(root, "ProjectAlpha", "alpha-notes.txt"),
		}},
		{maxDepth: 4, want: []string{
			filepath.Join(root, "ProjectAlpha"),
			filepath.Join(root, "ProjectAlpha", "alpha-notes.txt"),
			filepath.Join(root, "ProjectAlpha", "deep", "alphaDeep"),
			filepath.Join(root, "ProjectAlpha", "deep", "alphaDeep", "tooDeep-alpha.txt"),
		}},
	}

	for _, tt := range tests {
		report := w.Walk(root, "alpha", tt.maxDepth)
		assert.ElementsMatch(t, tt.want, candidatePaths(report), "max depth %d", tt.maxDepth)
	}
}

func TestWalker_Walk_CaseInsensitive(t *testing.T) {
	root := buildTree(t)
	report := fs.NewWalker().Walk(root, "projectalpha", domain.DefaultMaxDepth)

	item, ok := report.FirstExact("projectalpha")
	require.True(t, ok)
	assert.Equal(t, "ProjectAlpha", item.Name)
}

func TestWalker_Walk_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nope")
	report := fs.NewWalker().Walk(root, "alpha", domain.DefaultMaxDepth)

	assert.Empty(t, report.Candidates)
	require.Len(t, report.Skips, 1)
	assert.Equal(t, domain.SkipMissingRoot, report.Skips[0].Reason)
	assert.Equal(t, root, report.Skips[0].Path)
}

func TestWalker_Walk_FileRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0o600))

	report := fs.NewWalker().Walk(root, "file", domain.DefaultMaxDepth)

	assert.Empty(t, report.Candidates)
	require.Len(t, report.Skips, 1)
	assert.Equal(t, domain.SkipMissingRoot, report.Skips[0].Reason)
}

func TestWalker_Walk_UnreadableDirectories(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.SkipReason
	}{
		{name: "permission", err: &iofs.PathError{Op: "open", Err: iofs.ErrPermission}, want: domain.SkipPermission},
		{name: "vanished", err: &iofs.PathError{Op: "open", Err: iofs.ErrNotExist}, want: domain.SkipNotExist},
		{name: "other", err: errors.New("input/output error"), want: domain.SkipIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := buildTree(t)
			locked := filepath.Join(root, "ProjectAlpha")

			w := fs.NewWalker()
			w.SetReadDir(func(dir string) ([]iofs.DirEntry, error) {
				if dir == locked {
					return nil, tt.err
				}
				return os.ReadDir(dir)
			})

			report := w.Walk(root, "alpha", domain.DefaultMaxDepth)

			assert.Equal(t, []string{locked}, candidatePaths(report))
			require.Len(t, report.Skips, 1)
			assert.Equal(t, locked, report.Skips[0].Path)
			assert.Equal(t, tt.want, report.Skips[0].Reason)
			assert.Equal(t, tt.err, report.Skips[0].Err)
		})
	}
}

func TestWalker_Walk_SymlinkedDirectory(t *testing.T) {
	root := buildTree(t)
	link := filepath.Join(root, "alpha-link")
	if err := os.Symlink(filepath.Join(root, "ProjectAlpha"), link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	report := fs.NewWalker().Walk(root, "alpha", domain.DefaultMaxDepth)

	var found *domain.Item
	for i := range report.Candidates {
		if report.Candidates[i].Path == link {
			found = &report.Candidates[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, domain.KindDirectory, found.Kind)
	assert.Len(t, report.Candidates, 4, "link target is not walked twice")
}
