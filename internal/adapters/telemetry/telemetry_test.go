package telemetry_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.stonic.dev/stonic/internal/adapters/telemetry"
	"go.stonic.dev/stonic/internal/core/domain"
)

func TestOTelTracer_RecordsAttributes(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	p := telemetry.NewProviderWith(nil, sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	ctx, parent := p.Tracer().Start(context.Background(), "resolve")
	parent.SetAttribute("query", "alpha")
	parent.SetAttribute("score", 90)
	parent.SetAttribute("hit", false)
	parent.SetAttribute("source", domain.SourceFuzzy)

	_, child := p.Tracer().Start(ctx, "walk_root")
	child.RecordError(errors.New("boom"))
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)

	walk, resolve := spans[0], spans[1]
	assert.Equal(t, "walk_root", walk.Name())
	assert.Equal(t, resolve.SpanContext().SpanID(), walk.Parent().SpanID())
	assert.Equal(t, codes.Error, walk.Status().Code)

	assert.Equal(t, "resolve", resolve.Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("query", "alpha"),
		attribute.Int("score", 90),
		attribute.Bool("hit", false),
		attribute.String("source", "fuzzy"),
	}, resolve.Attributes())
}

func TestProvider_EmptyTraceFileDropsSpans(t *testing.T) {
	p, err := telemetry.NewProvider("")
	require.NoError(t, err)

	_, span := p.Tracer().Start(context.Background(), "resolve")
	span.SetAttribute("query", "alpha")
	span.RecordError(errors.New("ignored"))
	span.End()

	require.NoError(t, p.Shutdown(context.Background()))
}

func TestProvider_ExportsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces", "stonic.jsonl")

	p, err := telemetry.NewProvider(path)
	require.NoError(t, err)

	_, span := p.Tracer().Start(context.Background(), "resolve")
	span.SetAttribute("query", "project alpha")
	span.End()

	require.NoError(t, p.Shutdown(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Name":"resolve"`)
	assert.Contains(t, string(data), "project alpha")
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	got, span := tracer.Start(ctx, "resolve")
	assert.Equal(t, ctx, got)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("x"))
	span.End()
}
