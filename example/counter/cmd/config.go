package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/AntonStoeckl/weak-observer-go/example/counter/shell/config"
)

const (
	defaultLogLevel = "warn"
	defaultExporter = string(config.ExporterStdout)
)

// ErrInvalidLogLevel is returned when -log-level is not one of debug, info, warn or error.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Config holds all demo configuration parameters.
type Config struct {
	LogLevel             slog.Level
	ObservabilityEnabled bool
	Exporter             config.Exporter
}

// parseFlags parses command line flags and returns configuration.
func parseFlags(args []string, output io.Writer) (Config, error) {
	flags := flag.NewFlagSet("counter", flag.ContinueOnError)
	flags.SetOutput(output)

	var (
		logLevel      = flags.String("log-level", defaultLogLevel, "Log level of the observable: debug, info, warn, error")
		observability = flags.Bool("observability-enabled", false, "Enable OpenTelemetry observability")
		exporterName  = flags.String("exporter", defaultExporter, "Telemetry exporter: stdout, otlp")
	)

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return Config{}, errors.Join(ErrInvalidLogLevel, fmt.Errorf("got %q", *logLevel))
	}

	exporter, err := config.ParseExporter(*exporterName)
	if err != nil {
		return Config{}, err
	}

	return Config{
		LogLevel:             level,
		ObservabilityEnabled: *observability,
		Exporter:             exporter,
	}, nil
}
