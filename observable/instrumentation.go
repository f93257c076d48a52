package observable

import (
	"context"
	"math"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// payloadRenderer is implemented by EventArgs that know their own JSON representation.
type payloadRenderer interface {
	PayloadToJSON() ([]byte, error)
}

// logRaiseStarted logs the raised payload at debug level if a logger is configured.
func (o *Observable[E]) logRaiseStarted(ctx context.Context, eventType string, args E) {
	if o.logger == nil && o.contextualLogger == nil {
		return
	}

	payload, err := renderPayload(args)
	if err != nil {
		o.logWarn(ctx, LogMsgPayloadNotRenderable, LogAttrEventType, eventType, LogAttrError, err.Error())
		o.logDebug(ctx, LogMsgRaiseStarted, LogAttrEventType, eventType)

		return
	}

	o.logDebug(ctx, LogMsgRaiseStarted, LogAttrEventType, eventType, LogAttrPayload, string(payload))
}

func renderPayload(args any) ([]byte, error) {
	if renderer, ok := args.(payloadRenderer); ok {
		return renderer.PayloadToJSON()
	}

	return jsoniter.ConfigFastest.Marshal(args)
}

// finishRaise records the duration metric, finishes the span, and logs the outcome of one Raise.
func (o *Observable[E]) finishRaise(
	ctx context.Context,
	span SpanContext,
	status string,
	eventType string,
	delivered int,
	pruned int,
	duration time.Duration,
) {
	o.recordDuration(ctx, RaiseDurationMetric, duration, map[string]string{
		LogAttrEventType: eventType,
		"status":         status,
	})

	o.finishTraceSpan(span, status, map[string]string{
		SpanAttrDeliveredCount: strconv.Itoa(delivered),
		SpanAttrPrunedCount:    strconv.Itoa(pruned),
	})

	args := []any{
		LogAttrEventType, eventType,
		LogAttrDelivered, delivered,
		LogAttrPruned, pruned,
		LogAttrDurationMS, toMilliseconds(duration),
	}

	if status == StatusSuccess {
		o.logInfo(ctx, LogMsgRaiseCompleted, args...)
		return
	}

	o.logError(ctx, LogMsgRaiseAborted, args...)
}

func (o *Observable[E]) logDebug(ctx context.Context, msg string, args ...any) {
	allArgs := append([]any{LogAttrObservable, o.name}, args...)

	if o.logger != nil {
		o.logger.Debug(msg, allArgs...)
	}

	if o.contextualLogger != nil {
		o.contextualLogger.DebugContext(ctx, msg, allArgs...)
	}
}

func (o *Observable[E]) logInfo(ctx context.Context, msg string, args ...any) {
	allArgs := append([]any{LogAttrObservable, o.name}, args...)

	if o.logger != nil {
		o.logger.Info(msg, allArgs...)
	}

	if o.contextualLogger != nil {
		o.contextualLogger.InfoContext(ctx, msg, allArgs...)
	}
}

func (o *Observable[E]) logWarn(ctx context.Context, msg string, args ...any) {
	allArgs := append([]any{LogAttrObservable, o.name}, args...)

	if o.logger != nil {
		o.logger.Warn(msg, allArgs...)
	}

	if o.contextualLogger != nil {
		o.contextualLogger.WarnContext(ctx, msg, allArgs...)
	}
}

func (o *Observable[E]) logError(ctx context.Context, msg string, args ...any) {
	allArgs := append([]any{LogAttrObservable, o.name}, args...)

	if o.logger != nil {
		o.logger.Error(msg, allArgs...)
	}

	if o.contextualLogger != nil {
		o.contextualLogger.ErrorContext(ctx, msg, allArgs...)
	}
}

// labelsWithObservable copies labels and adds the observable's name.
func (o *Observable[E]) labelsWithObservable(labels map[string]string) map[string]string {
	all := make(map[string]string, len(labels)+1)
	for key, value := range labels {
		all[key] = value
	}

	all[LogAttrObservable] = o.name

	return all
}

// incrementCounter increments a counter, using the context-aware method if the collector supports it.
func (o *Observable[E]) incrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if o.metricsCollector == nil {
		return
	}

	labels = o.labelsWithObservable(labels)

	if contextualCollector, ok := o.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
		return
	}

	o.metricsCollector.IncrementCounter(metric, labels)
}

// recordDuration records a duration, using the context-aware method if the collector supports it.
func (o *Observable[E]) recordDuration(ctx context.Context, metric string, duration time.Duration, labels map[string]string) {
	if o.metricsCollector == nil {
		return
	}

	labels = o.labelsWithObservable(labels)

	if contextualCollector, ok := o.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, duration, labels)
		return
	}

	o.metricsCollector.RecordDuration(metric, duration, labels)
}

// recordRegistrySize records the registry size, using the context-aware method if the collector supports it.
func (o *Observable[E]) recordRegistrySize(ctx context.Context, size int) {
	if o.metricsCollector == nil {
		return
	}

	labels := o.labelsWithObservable(nil)

	if contextualCollector, ok := o.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, RegistrySizeMetric, float64(size), labels)
		return
	}

	o.metricsCollector.RecordValue(RegistrySizeMetric, float64(size), labels)
}

// startRaiseSpan starts a tracing span if the tracing collector is configured.
func (o *Observable[E]) startRaiseSpan(ctx context.Context, eventType string) (context.Context, SpanContext) {
	if o.tracingCollector == nil {
		return ctx, nil
	}

	return o.tracingCollector.StartSpan(ctx, SpanNameRaise, map[string]string{
		LogAttrObservable: o.name,
		LogAttrEventType:  eventType,
	})
}

// finishTraceSpan finishes a tracing span if the tracing collector is configured.
func (o *Observable[E]) finishTraceSpan(span SpanContext, status string, attrs map[string]string) {
	if o.tracingCollector != nil && span != nil {
		o.tracingCollector.FinishSpan(span, status, attrs)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
