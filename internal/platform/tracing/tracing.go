// Package tracing starts child spans for code running inside a traced request.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Scope names spans for one layer. Calls made outside a traced request (health
// probes, CLIs, tests) get no span, so helpers never open stray root traces.
type Scope struct {
	name   string
	accept func(spanName string) bool
}

// NewScope returns a Scope whose tracer is resolved lazily so it follows the
// global provider installed at startup. A nil accept allows every non-empty name.
func NewScope(name string, accept func(spanName string) bool) Scope {
	return Scope{name: name, accept: accept}
}

// Start opens a child span, or returns ctx with the current span when there is
// no valid parent or the name is filtered out.
func (s Scope) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if spanName == "" || !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	if s.accept != nil && !s.accept(spanName) {
		return ctx, parent
	}
	return otel.Tracer(s.name).Start(ctx, spanName, opts...)
}
