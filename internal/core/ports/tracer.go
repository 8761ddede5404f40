package ports

import "context"

// SpanConfig carries span construction options.
type SpanConfig struct{}

// SpanOption mutates a SpanConfig.
type SpanOption func(*SpanConfig)

// Span is one traced unit of work.
type Span interface {
	End()
	RecordError(err error)
	SetAttribute(key string, value any)
}

// Tracer creates spans around build phases.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)
	Shutdown(ctx context.Context) error
}
