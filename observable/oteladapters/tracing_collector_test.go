package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/weak-observer-go/observable"
	"github.com/AntonStoeckl/weak-observer-go/observable/oteladapters"
)

func Test_TracingCollector_StartAndFinishSpan_Success(t *testing.T) {
	// arrange
	recorder, collector := newTracingCollector()

	// act
	ctx, span := collector.StartSpan(context.Background(), observable.SpanNameRaise, map[string]string{
		observable.LogAttrObservable: "counter",
	})
	span.AddAttribute("extra", "value")
	collector.FinishSpan(span, observable.StatusSuccess, map[string]string{
		observable.SpanAttrDeliveredCount: "3",
	})

	// assert
	assert.True(t, trace.SpanContextFromContext(ctx).IsValid(), "returned context should carry the span")

	ended := recorder.Ended()
	require.Len(t, ended, 1, "one span should be ended")
	assert.Equal(t, observable.SpanNameRaise, ended[0].Name())
	assert.Equal(t, codes.Ok, ended[0].Status().Code)

	attrs := attribute.NewSet(ended[0].Attributes()...)
	assertAttribute(t, attrs, observable.LogAttrObservable, "counter")
	assertAttribute(t, attrs, observable.SpanAttrDeliveredCount, "3")
	assertAttribute(t, attrs, "extra", "value")
}

func Test_TracingCollector_FinishSpan_Error(t *testing.T) {
	// arrange
	recorder, collector := newTracingCollector()
	_, span := collector.StartSpan(context.Background(), observable.SpanNameRaise, nil)

	// act
	collector.FinishSpan(span, observable.StatusError, nil)

	// assert
	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
}

func Test_TracingCollector_FinishSpan_UnknownStatusBecomesAttribute(t *testing.T) {
	// arrange
	recorder, collector := newTracingCollector()
	_, span := collector.StartSpan(context.Background(), observable.SpanNameRaise, nil)

	// act
	collector.FinishSpan(span, "partial", nil)

	// assert
	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Unset, ended[0].Status().Code)
	assertAttribute(t, attribute.NewSet(ended[0].Attributes()...), "status", "partial")
}

func Test_TracingCollector_FinishSpan_IgnoresForeignSpanContext(t *testing.T) {
	_, collector := newTracingCollector()

	assert.NotPanics(t, func() {
		collector.FinishSpan(nil, observable.StatusSuccess, nil)
	})
}

func newTracingCollector() (*tracetest.SpanRecorder, *oteladapters.TracingCollector) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	return recorder, oteladapters.NewTracingCollector(provider.Tracer("test"))
}
