package observability

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Operation is one CLI command's interaction with the daemon. Its span
// parents the gRPC client spans of every call made under its context.
type Operation struct {
	ctx     context.Context
	span    trace.Span
	metrics *Metrics
	name    string
	start   time.Time
	log     *slog.Logger
}

// StartOperation opens the span for name and returns the context calls
// should be made with.
func StartOperation(ctx context.Context, m *Metrics, name string, attrs ...attribute.KeyValue) (*Operation, context.Context) {
	ctx, span := StartSpan(ctx, "cli "+name, append(attrs, attribute.String("cli.command", name))...)
	op := &Operation{
		ctx:     ctx,
		span:    span,
		metrics: m,
		name:    name,
		start:   time.Now(),
		log:     slog.Default().With("operation", name),
	}
	op.log.DebugContext(ctx, "operation started")
	return op, ctx
}

// End closes the span and counts the operation under the gRPC status code
// of err.
func (o *Operation) End(err error) {
	elapsed := time.Since(o.start)
	code := setStatus(o.span, err)
	o.span.End()
	o.metrics.observeCall(o.name, code, elapsed)

	if err != nil {
		o.log.ErrorContext(o.ctx, "operation failed", "code", code, "error", err, "duration", elapsed)
		return
	}
	o.log.DebugContext(o.ctx, "operation completed", "duration", elapsed)
}
