package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/weak-observer-go/example/counter/shell/config"
	"github.com/AntonStoeckl/weak-observer-go/observable"
)

func Test_Run_ReportsEachObserverOnce(t *testing.T) {
	// arrange
	var stdout, stderr bytes.Buffer
	cfg := Config{LogLevel: slog.LevelWarn, Exporter: config.ExporterStdout}

	// act
	err := run(context.Background(), cfg, &stdout, &stderr)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Observer 1 received 1\nObserver 2 received 1\nObserver 3 received 1\n", stdout.String())
	assert.Empty(t, stderr.String(), "nothing should be logged at warn level")
}

func Test_Run_LogsRaiseAtInfoLevel(t *testing.T) {
	// arrange
	var stdout, stderr bytes.Buffer
	cfg := Config{LogLevel: slog.LevelInfo, Exporter: config.ExporterStdout}

	// act
	err := run(context.Background(), cfg, &stdout, &stderr)

	// assert
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), observable.LogMsgRaiseCompleted)
	assert.Contains(t, stderr.String(), "observable=counter")
	assert.Contains(t, stderr.String(), "delivered=3")
}

func Test_Run_WithObservability_ExportsTelemetry(t *testing.T) {
	// arrange
	var stdout, stderr bytes.Buffer
	cfg := Config{LogLevel: slog.LevelWarn, ObservabilityEnabled: true, Exporter: config.ExporterStdout}

	// act
	err := run(context.Background(), cfg, &stdout, &stderr)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Observer 1 received 1\nObserver 2 received 1\nObserver 3 received 1\n", stdout.String())
	assert.Contains(t, stderr.String(), observable.SpanNameRaise)
	assert.Contains(t, stderr.String(), observable.DeliveriesMetric)
	assert.Contains(t, stderr.String(), observable.LogMsgRaiseCompleted)
}

func Test_ParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Config
	}{
		{
			name:     "defaults",
			args:     nil,
			expected: Config{LogLevel: slog.LevelWarn, Exporter: config.ExporterStdout},
		},
		{
			name: "all flags",
			args: []string{"-log-level", "debug", "-observability-enabled", "-exporter", "otlp"},
			expected: Config{
				LogLevel:             slog.LevelDebug,
				ObservabilityEnabled: true,
				Exporter:             config.ExporterOTLP,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args, &bytes.Buffer{})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func Test_ParseFlags_InvalidValues(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr error
	}{
		{name: "log level", args: []string{"-log-level", "loud"}, expectedErr: ErrInvalidLogLevel},
		{name: "exporter", args: []string{"-exporter", "jaeger"}, expectedErr: config.ErrUnknownExporter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args, &bytes.Buffer{})

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_ParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-rate", "70"}, &bytes.Buffer{})

	assert.Error(t, err)
}
