package maintenance_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.stonic.dev/stonic/internal/adapters/fs"
	"go.stonic.dev/stonic/internal/adapters/logger"
	"go.stonic.dev/stonic/internal/adapters/pathcache"
	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports/mocks"
	"go.stonic.dev/stonic/internal/engine/maintenance"
	"go.uber.org/mock/gomock"
)

func newMocked(t *testing.T) (*maintenance.Maintainer, *mocks.MockPathCache, *mocks.MockFileSystem) {
	t.Helper()
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockPathCache(ctrl)
	fsys := mocks.NewMockFileSystem(ctrl)
	return maintenance.New(cache, fsys, logger.NewWithOutput(io.Discard, true), "/home/user/Desktop"), cache, fsys
}

func TestRename_SiblingName(t *testing.T) {
	m, cache, fsys := newMocked(t)
	old := "/home/user/Documents/notes.txt"
	renamed := "/home/user/Documents/old notes.txt"

	gomock.InOrder(
		fsys.EXPECT().Stat(old).Return(domain.NewItem(old, false), nil),
		fsys.EXPECT().Rename(old, renamed).Return(nil),
		cache.EXPECT().ReplaceValue(old, renamed).Return(1),
	)

	item, err := m.Rename(old, " old notes.txt ")
	require.NoError(t, err)
	assert.Equal(t, domain.NewItem(renamed, false), item)
}

func TestRename_DirectoryDropsNestedKeys(t *testing.T) {
	m, cache, fsys := newMocked(t)
	old := "/home/user/Projects/Alpha"
	target := "/home/user/Archive/Alpha"

	gomock.InOrder(
		fsys.EXPECT().Stat(old).Return(domain.NewItem(old, true), nil),
		fsys.EXPECT().Rename(old, target).Return(nil),
		cache.EXPECT().ReplaceValue(old, target).Return(1),
		cache.EXPECT().RemoveWithin(old).Return(2),
	)

	item, err := m.Rename(old, target)
	require.NoError(t, err)
	assert.Equal(t, domain.KindDirectory, item.Kind)
	assert.Equal(t, target, item.Path)
}

func TestRename_FailureLeavesCache(t *testing.T) {
	m, _, fsys := newMocked(t)
	old := "/home/user/a.txt"

	fsys.EXPECT().Stat(old).Return(domain.NewItem(old, false), nil)
	fsys.EXPECT().Rename(old, "/home/user/b.txt").Return(domain.ErrTargetExists)

	_, err := m.Rename(old, "b.txt")
	require.ErrorIs(t, err, domain.ErrTargetExists)
}

func TestRename_SameNameIsNoop(t *testing.T) {
	m, _, fsys := newMocked(t)
	old := "/home/user/a.txt"

	fsys.EXPECT().Stat(old).Return(domain.NewItem(old, false), nil)

	item, err := m.Rename(old, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, old, item.Path)
}

func TestRename_EmptyName(t *testing.T) {
	m, _, _ := newMocked(t)

	_, err := m.Rename("/home/user/a.txt", "  ")
	require.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestRename_RejectsRelativePaths(t *testing.T) {
	for _, name := range []string{"../../moved.txt", "sub/moved.txt", "..", "."} {
		t.Run(name, func(t *testing.T) {
			m, _, _ := newMocked(t)

			_, err := m.Rename("/home/user/Documents/notes.txt", name)
			require.ErrorIs(t, err, domain.ErrInvalidName)
		})
	}
}

func TestRename_RelativeEscapeLeavesDiskAlone(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	old := filepath.Join(nested, "notes.txt")
	require.NoError(t, os.WriteFile(old, []byte("x"), 0o600))

	log := logger.NewWithOutput(io.Discard, true)
	cache := pathcache.NewStore(filepath.Join(t.TempDir(), domain.CacheFileName), log)
	m := maintenance.New(cache, fs.NewFileSystem(), log, dir)

	_, err := m.Rename(old, "../../moved.txt")
	require.ErrorIs(t, err, domain.ErrInvalidName)

	assert.FileExists(t, old)
	assert.NoFileExists(t, filepath.Join(dir, "moved.txt"))
}

func TestDelete(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		m, cache, fsys := newMocked(t)
		path := "/home/user/a.txt"

		gomock.InOrder(
			fsys.EXPECT().Stat(path).Return(domain.NewItem(path, false), nil),
			fsys.EXPECT().Remove(path, false).Return(nil),
			cache.EXPECT().RemoveByValue(path).Return(1),
		)

		item, err := m.Delete(path, false)
		require.NoError(t, err)
		assert.Equal(t, "a.txt", item.Name)
	})

	t.Run("directory", func(t *testing.T) {
		m, cache, fsys := newMocked(t)
		path := "/home/user/Projects"

		gomock.InOrder(
			fsys.EXPECT().Stat(path).Return(domain.NewItem(path, true), nil),
			fsys.EXPECT().Remove(path, true).Return(nil),
			cache.EXPECT().RemoveByValue(path).Return(0),
			cache.EXPECT().RemoveWithin(path).Return(3),
		)

		_, err := m.Delete(path, true)
		require.NoError(t, err)
	})

	t.Run("not empty", func(t *testing.T) {
		m, _, fsys := newMocked(t)
		path := "/home/user/Projects"

		fsys.EXPECT().Stat(path).Return(domain.NewItem(path, true), nil)
		fsys.EXPECT().Remove(path, false).Return(domain.ErrDirectoryNotEmpty)

		_, err := m.Delete(path, false)
		require.ErrorIs(t, err, domain.ErrDirectoryNotEmpty)
	})
}

func TestCreateFolder(t *testing.T) {
	m, _, fsys := newMocked(t)
	fsys.EXPECT().Mkdir("/home/user/Desktop/Reports 2025").Return(nil)

	item, err := m.CreateFolder(" Reports 2025 ")
	require.NoError(t, err)
	assert.Equal(t, domain.NewItem("/home/user/Desktop/Reports 2025", true), item)
}

func TestCreateFolder_Rejects(t *testing.T) {
	m, _, _ := newMocked(t)

	_, err := m.CreateFolder("")
	require.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = m.CreateFolder("../escape")
	require.ErrorIs(t, err, domain.ErrCreateFolderFailed)
}

func TestRefresh(t *testing.T) {
	m, cache, _ := newMocked(t)
	gomock.InOrder(
		cache.EXPECT().Len().Return(4),
		cache.EXPECT().Clear(),
	)

	assert.Equal(t, 4, m.Refresh())
}

func TestRename_KeepsCacheInSyncOnDisk(t *testing.T) {
	dir := t.TempDir()
	log := logger.NewWithOutput(io.Discard, true)
	cache := pathcache.NewStore(filepath.Join(dir, "cache", domain.CacheFileName), log)

	projects := filepath.Join(dir, "Projects")
	alpha := filepath.Join(projects, "Alpha")
	notes := filepath.Join(alpha, "notes.md")
	require.NoError(t, os.MkdirAll(alpha, 0o750))
	require.NoError(t, os.WriteFile(notes, []byte("x"), 0o600))

	cache.Put("alpha", alpha)
	cache.Put("notes", notes)

	m := maintenance.New(cache, fs.NewFileSystem(), log, dir)

	_, err := m.Rename(alpha, "Beta")
	require.NoError(t, err)

	beta := filepath.Join(projects, "Beta")
	got, ok := cache.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, beta, got)

	_, ok = cache.Get("notes")
	assert.False(t, ok)
	assert.Equal(t, 1, cache.Len())
}
