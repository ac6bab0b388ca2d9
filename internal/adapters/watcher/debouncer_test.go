package watcher_test

import (
	"sort"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.stonic.dev/stonic/internal/adapters/watcher"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var calls [][]string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			sort.Strings(paths)
			calls = append(calls, paths)
		})

		d.Add("/home/user/a")
		time.Sleep(50 * time.Millisecond)
		d.Add("/home/user/b")
		d.Add("/home/user/a")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, [][]string{{"/home/user/a", "/home/user/b"}}, calls)
	})
}

func TestDebouncer_FlushRunsPending(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var got []string
		d := watcher.NewDebouncer(time.Hour, func(paths []string) {
			got = paths
		})

		d.Add("/home/user/a")
		d.Flush()

		assert.Equal(t, []string{"/home/user/a"}, got)
	})
}

func TestDebouncer_FlushWithNothingPending(t *testing.T) {
	called := false
	d := watcher.NewDebouncer(time.Millisecond, func([]string) { called = true })
	d.Flush()
	assert.False(t, called)
}
