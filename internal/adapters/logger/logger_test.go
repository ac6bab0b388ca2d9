package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.stonic.dev/stonic/internal/adapters/logger"
	"go.stonic.dev/stonic/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a pretty logger writing to a buffer without ANSI escapes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewWithOutput(buf, false), buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		args       []any
		goldenName string
	}{
		{name: "with attributes", msg: "loaded cached paths", args: []any{"count", 3}, goldenName: "info_attrs"},
		{name: "multiline message", msg: "line1\nline2", goldenName: "info_multiline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg, tt.args...)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("could not save path cache", "path", "/tmp/cache.json")

	g := goldie.New(t)
	g.Assert(t, "warn_attrs", buf.Bytes())
}

func TestLogger_Debug(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.SetVerbose(true)
	lg.Debug("walk root", "root", "/tmp")
	assert.Equal(t, "· walk root root=/tmp\n", buf.String())

	buf.Reset()
	lg.SetVerbose(false)
	lg.Debug("hidden again")
	assert.Empty(t, buf.String())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "standard error",
			err:        errors.New("boom"),
			goldenName: "error_simple",
		},
		{
			name:       "two level chain",
			err:        zerr.Wrap(errors.New("permission denied"), "failed to write path cache"),
			goldenName: "error_chain_two",
		},
		{
			name: "three level chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("permission denied"), "failed to write path cache"),
				"failed to save resolution",
			),
			goldenName: "error_chain_three",
		},
		{
			name:       "metadata on sentinel",
			err:        zerr.With(zerr.Wrap(domain.ErrNotFound, ""), "query", "budget"),
			goldenName: "error_metadata",
		},
		{
			name:       "multiline cause",
			err:        zerr.Wrap(errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal"), "failed to read config"),
			goldenName: "error_multiline_cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.NewWithOutput(buf, true)

	lg.Info("resolved", "query", "projectalpha")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "resolved", record["msg"])
	assert.Equal(t, "projectalpha", record["query"])
}

func TestLogger_SetJSONAndOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	first := &bytes.Buffer{}
	second := &bytes.Buffer{}

	lg := logger.NewWithOutput(first, false)
	lg.SetJSON(true)
	lg.SetOutput(second)
	lg.Warn("switched")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), `"msg":"switched"`)

	lg.SetJSON(false)
	second.Reset()
	lg.Info("pretty again")
	assert.Equal(t, "pretty again\n", second.String())
}

func TestCollectErrorEntries(t *testing.T) {
	inner := zerr.With(zerr.New("inner"), "path", "/a")
	outer := zerr.With(zerr.Wrap(inner, "outer"), "op", "rename")

	entries := logger.CollectErrorEntries(outer)
	require.Len(t, entries, 2)
	assert.Equal(t, "outer", entries[0].Message())
	assert.Equal(t, map[string]any{"op": "rename"}, entries[0].Metadata())
	assert.Equal(t, "inner", entries[1].Message())
	assert.Equal(t, map[string]any{"path": "/a"}, entries[1].Metadata())

	assert.Nil(t, logger.CollectErrorEntries(nil))
}

func TestFormatErrorEntries_Multiline(t *testing.T) {
	entries := logger.CollectErrorEntries(zerr.Wrap(errors.New("line one\nline two"), "top"))
	got := logger.FormatErrorEntries(entries)
	assert.Equal(t, "Error: top\n\n  Caused by:\n    → line one\n      line two", got)
}
