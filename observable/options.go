package observable

// Option defines a functional option for configuring an Observable.
type Option[E EventArgs] func(*Observable[E]) error

// WithName sets the name of the Observable, used as label and log attribute.
func WithName[E EventArgs](name string) Option[E] {
	return func(o *Observable[E]) error {
		if name == "" {
			return ErrEmptyObservableName
		}

		o.name = name

		return nil
	}
}

// WithLogger sets the logger for the Observable.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: subscriptions, unsubscriptions, pruned entries, raised payloads
// Info level: one summary per Raise with delivered and pruned counts and the duration
// Warn level: payloads that could not be rendered
// Error level: Raise calls aborted by a panicking observer.
func WithLogger[E EventArgs](logger Logger) Option[E] {
	return func(o *Observable[E]) error {
		o.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Observable.
// Raise logs through it with the context it was called with, so trace and span IDs get correlated.
func WithContextualLogger[E EventArgs](logger ContextualLogger) Option[E] {
	return func(o *Observable[E]) error {
		o.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Observable.
func WithMetrics[E EventArgs](collector MetricsCollector) Option[E] {
	return func(o *Observable[E]) error {
		o.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Observable.
// Every Raise call is wrapped in one span named SpanNameRaise.
func WithTracing[E EventArgs](collector TracingCollector) Option[E] {
	return func(o *Observable[E]) error {
		o.tracingCollector = collector
		return nil
	}
}
