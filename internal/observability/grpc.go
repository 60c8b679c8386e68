package observability

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

// UnaryClientInterceptor returns a gRPC unary interceptor that creates a client
// span per call and records call metrics. m may be nil.
func UnaryClientInterceptor(m *Metrics) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx, span := tracer().Start(ctx, method, trace.WithSpanKind(trace.SpanKindClient))
		defer span.End()

		start := time.Now()
		err := invoker(injectTraceContext(ctx), method, req, reply, cc, opts...)
		m.observeCall(method, setStatus(span, err), time.Since(start))
		return err
	}
}

// StreamClientInterceptor returns a gRPC stream interceptor that creates a
// client span covering the stream open and counts received messages.
func StreamClientInterceptor(m *Metrics) grpc.StreamClientInterceptor {
	return func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		ctx, span := tracer().Start(ctx, method, trace.WithSpanKind(trace.SpanKindClient))

		start := time.Now()
		cs, err := streamer(injectTraceContext(ctx), desc, cc, method, opts...)
		if err != nil {
			m.observeCall(method, setStatus(span, err), time.Since(start))
			span.End()
			return nil, err
		}
		return &wrappedStream{ClientStream: cs, span: span, metrics: m, method: method, start: start}, nil
	}
}

func (m *Metrics) observeCall(method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.CallDuration.WithLabelValues(method, code).Observe(d.Seconds())
	m.CallsTotal.WithLabelValues(method, code).Inc()
}

// wrappedStream ends its span once the stream finishes.
type wrappedStream struct {
	grpc.ClientStream
	span    trace.Span
	metrics *Metrics
	method  string
	start   time.Time
	recv    atomic.Int64
	done    atomic.Bool
}

func (w *wrappedStream) RecvMsg(m any) error {
	err := w.ClientStream.RecvMsg(m)
	if err == nil {
		w.recv.Add(1)
		return nil
	}
	w.finish(err)
	return err
}

func (w *wrappedStream) finish(err error) {
	if !w.done.CompareAndSwap(false, true) {
		return
	}
	if errors.Is(err, io.EOF) {
		err = nil
	}
	w.span.SetAttributes(attribute.Int64("rpc.messages_received", w.recv.Load()))
	code := setStatus(w.span, err)
	w.span.End()
	w.metrics.observeCall(w.method, code, time.Since(w.start))
}
