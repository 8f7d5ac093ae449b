package httpapi

import (
	"context"
	"strings"

	"github.com/riskibarqy/football-hub/internal/platform/tracing"
	"go.opentelemetry.io/otel/trace"
)

// Only handler entry points get spans; middleware and response helpers are
// covered by the otelhttp server span.
var apiSpans = tracing.NewScope("football-hub/internal/interfaces/httpapi", func(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
})

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return apiSpans.Start(ctx, name)
}
