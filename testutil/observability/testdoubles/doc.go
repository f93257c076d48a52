// Package testdoubles provides test doubles (spies) for the observable package.
//
// This package contains spy implementations of the dependency-free observability interfaces used by the Observable:
//   - MetricsCollectorSpy: captures metrics recording calls for verification
//   - ContextualMetricsCollectorSpy: additionally captures the contexts metrics were recorded with
//   - TracingCollectorSpy: captures the raise spans and their final status
//   - ContextualLoggerSpy: captures structured logging with context
//   - LogHandlerSpy: captures slog handler calls and attributes, for use with slog.New
//
// It also contains ObserverSpy, an Observer that records every delivery in a shared DeliveryLog,
// so tests can verify delivery order across several observers.
package testdoubles
