// Package oteladapters provides OpenTelemetry implementations of the observable package's
// observability interfaces:
//   - SlogBridgeLogger and OTelLogger implement observable.ContextualLogger
//   - MetricsCollector implements observable.ContextualMetricsCollector
//   - TracingCollector implements observable.TracingCollector
//
// Users who want plug-and-play observability attach them with observable.WithContextualLogger,
// observable.WithMetrics and observable.WithTracing instead of implementing the interfaces themselves.
package oteladapters
