// Package main runs the counter demo of the weak-referenced observable.
//
// Three accumulators named "Observer 1" to "Observer 3" subscribe to one observable,
// one ValueIncremented{Value: 1} event is raised, and each accumulator reports its new total on stdout:
//
//	Observer 1 received 1
//	Observer 2 received 1
//	Observer 3 received 1
//
// Flags:
//   - -log-level: debug, info, warn or error for the observable's own log lines on stderr (default: warn)
//   - -observability-enabled: attach OpenTelemetry metrics, tracing and the slog bridge logger
//   - -exporter: stdout (JSON on stderr) or otlp (gRPC to localhost:4317), only used with observability enabled
package main
