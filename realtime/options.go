package realtime

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger for loop lifecycle, command failures and
// recovered panics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTracerProvider sets the provider used for tick spans. Nil is ignored.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Runner) {
		if tp != nil {
			r.tracer = tp.Tracer(tracerName)
		}
	}
}
