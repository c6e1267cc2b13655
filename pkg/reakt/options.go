package reakt

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/reakt-dev/reakt/pkg/host"
)

// Option configures a Runtime.
type Option func(*options)

type options struct {
	logger         *slog.Logger
	metrics        *Metrics
	tracerProvider trace.TracerProvider
	hookOrderCheck bool
	falsyAsUnset   bool
	onError        func(error)
}

func defaultOptions() options {
	return options{
		hookOrderCheck: true,
	}
}

// WithLogger sets the logger. If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics records render metrics into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider.
// Default: the global provider from otel.GetTracerProvider().
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// WithHookOrderCheck enables or disables hook order validation.
// When enabled (the default), a pass whose hook calls differ from the first
// completed pass fails with E002 instead of silently reading the wrong slot.
func WithHookOrderCheck(enabled bool) Option {
	return func(o *options) {
		o.hookOrderCheck = enabled
	}
}

// WithFalsyAsUnset makes UseState treat a stored zero value (0, "", false,
// nil) as never set, so the initial value is returned again on every pass
// while the state is zero. This is the legacy truthiness check; it is off
// by default.
func WithFalsyAsUnset(enabled bool) Option {
	return func(o *options) {
		o.falsyAsUnset = enabled
	}
}

// WithErrorHandler is called with errors that have no caller to return to,
// such as a failed re-render triggered by a state setter.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// CommitFunc is called after a pass grafts its output into the container.
type CommitFunc func(output host.Node)
