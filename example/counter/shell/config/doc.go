// Package config builds the OpenTelemetry providers used by the counter demo.
//
// Two exporter flavors are supported: "stdout" writes traces, metrics and log records as JSON
// to a writer of the caller's choice, "otlp" ships them via gRPC to a local OpenTelemetry Collector.
package config
