package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/AntonStoeckl/weak-observer-go/example/counter/core"
	"github.com/AntonStoeckl/weak-observer-go/example/counter/shell/config"
	"github.com/AntonStoeckl/weak-observer-go/observable"
	"github.com/AntonStoeckl/weak-observer-go/observable/oteladapters"
)

const (
	observableName      = "counter"
	instrumentationName = "weak-observer-counter"
)

var observerNames = []string{"Observer 1", "Observer 2", "Observer 3"}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	if err := run(context.Background(), cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("Counter demo failed: %v", err)
	}
}

// run subscribes the accumulators, raises a single ValueIncremented{Value: 1} and shuts the telemetry down.
// Accumulator reports go to stdout, log lines and stdout telemetry go to stderr.
func run(ctx context.Context, cfg Config, stdout, stderr io.Writer) (err error) {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	options := []observable.Option[core.ValueIncremented]{
		observable.WithName[core.ValueIncremented](observableName),
		observable.WithLogger[core.ValueIncremented](logger),
	}

	if cfg.ObservabilityEnabled {
		providers, providersErr := config.NewObservabilityProviders(ctx, cfg.Exporter, stderr)
		if providersErr != nil {
			return providersErr
		}

		defer func() {
			err = errors.Join(err, providers.Shutdown(context.Background()))
		}()

		options = append(options, observabilityOptions(providers)...)
		logger.Info("observability enabled", "exporter", string(cfg.Exporter))
	}

	counter, err := observable.New(options...)
	if err != nil {
		return err
	}

	owners := make([]*observable.Strong[core.ValueIncremented], 0, len(observerNames))
	for _, name := range observerNames {
		owner, shareErr := observable.Share[core.ValueIncremented](core.NewAccumulator(name, core.WithReportWriter(stdout)))
		if shareErr != nil {
			return shareErr
		}

		counter.Subscribe(owner)
		owners = append(owners, owner)
	}

	counter.Raise(ctx, core.BuildValueIncremented(1))

	for _, owner := range owners {
		owner.Release()
	}

	return nil
}

func observabilityOptions(providers *config.ObservabilityProviders) []observable.Option[core.ValueIncremented] {
	tracer := providers.TracerProvider.Tracer(instrumentationName)
	meter := providers.MeterProvider.Meter(instrumentationName)

	return []observable.Option[core.ValueIncremented]{
		observable.WithMetrics[core.ValueIncremented](oteladapters.NewMetricsCollector(meter)),
		observable.WithTracing[core.ValueIncremented](oteladapters.NewTracingCollector(tracer)),
		observable.WithContextualLogger[core.ValueIncremented](
			oteladapters.NewSlogBridgeLogger(instrumentationName, otelslog.WithLoggerProvider(providers.LoggerProvider)),
		),
	}
}
