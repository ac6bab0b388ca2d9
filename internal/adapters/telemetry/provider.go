// Package telemetry traces resolver work with OpenTelemetry.
package telemetry

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/core/ports"
	"go.trai.ch/zerr"
)

// InstrumentationName names the tracer that resolver spans are created with.
const InstrumentationName = "go.stonic.dev/stonic"

// Provider owns the tracer provider and the trace file it exports into.
type Provider struct {
	tp     *sdktrace.TracerProvider
	file   *os.File
	tracer ports.Tracer
}

// NewProvider exports spans as JSON lines into traceFile.
// An empty traceFile yields a provider whose spans are dropped.
func NewProvider(traceFile string) (*Provider, error) {
	if traceFile == "" {
		return &Provider{tracer: NewOTelTracer(noop.NewTracerProvider().Tracer(InstrumentationName))}, nil
	}

	if err := os.MkdirAll(filepath.Dir(traceFile), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTracerInitFailed.Error()), "path", traceFile)
	}
	f, err := os.OpenFile(traceFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTracerInitFailed.Error()), "path", traceFile)
	}

	exp, err := stdouttrace.New(stdouttrace.WithWriter(f))
	if err != nil {
		_ = f.Close()
		return nil, zerr.Wrap(err, domain.ErrTracerInitFailed.Error())
	}

	return NewProviderWith(f, sdktrace.WithBatcher(exp)), nil
}

// NewProviderWith builds a provider from tracer provider options. file, when
// not nil, is closed on Shutdown.
func NewProviderWith(file *os.File, opts ...sdktrace.TracerProviderOption) *Provider {
	tp := sdktrace.NewTracerProvider(opts...)
	return &Provider{
		tp:     tp,
		file:   file,
		tracer: NewOTelTracer(tp.Tracer(InstrumentationName)),
	}
}

// Tracer returns the tracer handed to the resolver.
func (p *Provider) Tracer() ports.Tracer {
	return p.tracer
}

// Shutdown flushes pending spans and closes the trace file.
func (p *Provider) Shutdown(ctx context.Context) error {
	var errs []error
	if p.tp != nil {
		errs = append(errs, p.tp.Shutdown(ctx))
	}
	if p.file != nil {
		errs = append(errs, p.file.Close())
	}
	return errors.Join(errs...)
}
