package observable

import (
	"context"
	"time"
)

const (
	// RaiseDurationMetric tracks the duration of one Raise call, including all deliveries.
	RaiseDurationMetric = "observable_raise_duration_seconds"

	// DeliveriesMetric counts successful Update calls.
	DeliveriesMetric = "observable_deliveries_total"

	// PrunedMetric counts registry entries removed because their observer is gone.
	//
	// Labels:
	//   - observable: name of the Observable
	//   - reason: "collected" (strong handle garbage collected) or "released" (owner called Release)
	PrunedMetric = "observable_pruned_total"

	// SubscriptionsMetric counts Subscribe calls.
	SubscriptionsMetric = "observable_subscriptions_total"

	// UnsubscriptionsMetric counts registry entries removed by Unsubscribe.
	UnsubscriptionsMetric = "observable_unsubscriptions_total"

	// RegistrySizeMetric records the number of registry entries after each mutation.
	RegistrySizeMetric = "observable_registry_size"

	// SpanNameRaise is the name of the span that wraps one Raise call.
	SpanNameRaise = "Observable.Raise"

	// StatusSuccess marks a Raise that visited every registry entry.
	StatusSuccess = "success"

	// StatusError marks a Raise that was aborted by a panicking observer.
	StatusError = "error"

	// LogMsgRaiseStarted is logged at debug level before the first delivery.
	LogMsgRaiseStarted = "observable raise started"

	// LogMsgRaiseCompleted is logged at info level after all deliveries.
	LogMsgRaiseCompleted = "observable raise completed"

	// LogMsgRaiseAborted is logged at error level when an observer panicked.
	LogMsgRaiseAborted = "observable raise aborted by panicking observer"

	// LogMsgSubscribed is logged at debug level for every Subscribe call.
	LogMsgSubscribed = "observer subscribed"

	// LogMsgUnsubscribed is logged at debug level when Unsubscribe removed at least one entry.
	LogMsgUnsubscribed = "observer unsubscribed"

	// LogMsgPruned is logged at debug level for every pruned registry entry.
	LogMsgPruned = "observer pruned"

	// LogMsgPayloadNotRenderable is logged at warn level when the event payload could not be rendered as JSON.
	LogMsgPayloadNotRenderable = "event payload could not be rendered as json"

	LogAttrObservable     = "observable"
	LogAttrEventType      = "event_type"
	LogAttrPayload        = "payload"
	LogAttrSubscriptionID = "subscription_id"
	LogAttrReason         = "reason"
	LogAttrDelivered      = "delivered"
	LogAttrPruned         = "pruned"
	LogAttrRegistrySize   = "registry_size"
	LogAttrDurationMS     = "duration_ms"
	LogAttrError          = "error"
	LogAttrPanic          = "panic"

	// SpanAttrDeliveredCount is added to the raise span when it is finished.
	SpanAttrDeliveredCount = "delivered_count"

	// SpanAttrPrunedCount is added to the raise span when it is finished.
	SpanAttrPrunedCount = "pruned_count"
)

// Logger interface for registry bookkeeping, delivery summaries, warnings, and error reporting.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting Observable operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// ContextualMetricsCollector extends MetricsCollector with context-aware methods for trace correlation.
// Raise uses the context-aware methods when the configured collector implements them.
type ContextualMetricsCollector interface {
	MetricsCollector
	RecordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string)
	IncrementCounterContext(ctx context.Context, metric string, labels map[string]string)
	RecordValueContext(ctx context.Context, metric string, value float64, labels map[string]string)
}

// SpanContext represents an active tracing span that can be finished and updated with attributes.
type SpanContext interface {
	SetStatus(status string)
	AddAttribute(key, value string)
}

// TracingCollector interface for collecting tracing information from Raise calls.
// It is dependency-free, the oteladapters package provides an OpenTelemetry implementation.
type TracingCollector interface {
	StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext)
	FinishSpan(spanCtx SpanContext, status string, attrs map[string]string)
}

// ContextualLogger interface for context-aware logging with automatic trace correlation.
// *slog.Logger satisfies it.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
