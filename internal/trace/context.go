package trace

import "context"

type (
	tracerKey struct{}
	spanKey   struct{}
)

// FromContext returns the tracer stored in ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx != nil {
		if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
			return t
		}
	}
	return Nop
}

// WithTracer attaches t to ctx; nil means Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// SpanID returns the ID of the innermost span started through ctx, or 0.
func SpanID(ctx context.Context) uint64 {
	if ctx != nil {
		if id, ok := ctx.Value(spanKey{}).(uint64); ok {
			return id
		}
	}
	return 0
}

// Start opens a span under the one stored in ctx and returns a context
// carrying the new span. Inert spans leave ctx untouched.
func Start(ctx context.Context, scope Scope, name string) (*Span, context.Context) {
	sp := Begin(FromContext(ctx), scope, name, SpanID(ctx))
	if !sp.live() {
		return sp, ctx
	}
	return sp, context.WithValue(ctx, spanKey{}, sp.id)
}

// Mark emits a point event under the current span of ctx.
func Mark(ctx context.Context, scope Scope, name, detail string, fields ...Field) {
	Point(FromContext(ctx), scope, name, detail, SpanID(ctx), fields...)
}
