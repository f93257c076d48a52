package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Exporter selects where the telemetry is shipped to.
type Exporter string

const (
	ExporterStdout Exporter = "stdout"
	ExporterOTLP   Exporter = "otlp"
)

const (
	serviceName    = "weak-observer-counter"
	serviceVersion = "demo"
)

// ErrUnknownExporter is returned for an exporter other than ExporterStdout or ExporterOTLP.
var ErrUnknownExporter = errors.New("unknown exporter")

// OTELCollectorEndpoint returns the OpenTelemetry Collector gRPC endpoint used by the otlp exporter.
func OTELCollectorEndpoint() string {
	return "localhost:4317"
}

// ParseExporter validates an exporter name given on the command line.
func ParseExporter(name string) (Exporter, error) {
	switch exporter := Exporter(name); exporter {
	case ExporterStdout, ExporterOTLP:
		return exporter, nil
	default:
		return "", errors.Join(ErrUnknownExporter, fmt.Errorf("got %q, want %q or %q", name, ExporterStdout, ExporterOTLP))
	}
}

// ObservabilityProviders holds the OpenTelemetry providers of the demo.
type ObservabilityProviders struct {
	TracerProvider *trace.TracerProvider
	MeterProvider  *metric.MeterProvider
	LoggerProvider *sdklog.LoggerProvider
	Resource       *resource.Resource
}

// NewObservabilityProviders creates the tracer, meter and logger providers for the given exporter
// and registers the tracer and meter providers globally.
// The stdout exporter writes to out, the otlp exporter ignores it.
func NewObservabilityProviders(ctx context.Context, exporter Exporter, out io.Writer) (*ObservabilityProviders, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(serviceVersion),
		),
	)
	if err != nil {
		return nil, err
	}

	var (
		traceExporter  trace.SpanExporter
		metricExporter metric.Exporter
		logExporter    sdklog.Exporter
	)

	switch exporter {
	case ExporterStdout:
		traceExporter, metricExporter, logExporter, err = newStdoutExporters(out)
	case ExporterOTLP:
		traceExporter, metricExporter, logExporter, err = newOTLPExporters(ctx)
	default:
		_, err = ParseExporter(string(exporter))
	}

	if err != nil {
		return nil, err
	}

	tracerProvider := trace.NewTracerProvider(
		trace.WithBatcher(traceExporter),
		trace.WithResource(res),
	)

	meterProvider := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(metricExporter,
			metric.WithInterval(5*time.Second))),
		metric.WithResource(res),
	)

	loggerProvider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
		sdklog.WithResource(res),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetMeterProvider(meterProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return &ObservabilityProviders{
		TracerProvider: tracerProvider,
		MeterProvider:  meterProvider,
		LoggerProvider: loggerProvider,
		Resource:       res,
	}, nil
}

func newStdoutExporters(out io.Writer) (trace.SpanExporter, metric.Exporter, sdklog.Exporter, error) {
	traceExporter, err := stdouttrace.New(stdouttrace.WithWriter(out))
	if err != nil {
		return nil, nil, nil, err
	}

	metricExporter, err := stdoutmetric.New(stdoutmetric.WithWriter(out))
	if err != nil {
		return nil, nil, nil, err
	}

	logExporter, err := stdoutlog.New(stdoutlog.WithWriter(out))
	if err != nil {
		return nil, nil, nil, err
	}

	return traceExporter, metricExporter, logExporter, nil
}

func newOTLPExporters(ctx context.Context) (trace.SpanExporter, metric.Exporter, sdklog.Exporter, error) {
	traceExporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(OTELCollectorEndpoint()),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	metricExporter, err := otlpmetricgrpc.New(
		ctx,
		otlpmetricgrpc.WithEndpoint(OTELCollectorEndpoint()),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	logExporter, err := otlploggrpc.New(
		ctx,
		otlploggrpc.WithEndpoint(OTELCollectorEndpoint()),
		otlploggrpc.WithInsecure(),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	return traceExporter, metricExporter, logExporter, nil
}

// Shutdown flushes and shuts down all providers. Pending telemetry is exported before it returns.
func (p *ObservabilityProviders) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return errors.Join(
		p.TracerProvider.Shutdown(ctx),
		p.MeterProvider.Shutdown(ctx),
		p.LoggerProvider.Shutdown(ctx),
	)
}
