package observable

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultObservableName = "observable"

// subscription is one registry entry. The id only correlates log lines and spans, identity is the handle.
type subscription[E EventArgs] struct {
	id     uuid.UUID
	handle Handle[E]
}

// Observable keeps an ordered registry of weak handles to observers and raises events to them.
//
// It never holds a strong reference to an observer: subscribing does not extend an observer's lifetime.
// Entries whose observer is gone are pruned lazily by Raise, or eagerly by Prune.
type Observable[E EventArgs] struct {
	name             string
	subscriptions    []subscription[E]
	mu               sync.Mutex
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// New creates an empty Observable with optional configuration.
func New[E EventArgs](options ...Option[E]) (*Observable[E], error) {
	o := &Observable[E]{
		name: defaultObservableName,
	}

	for _, option := range options {
		if err := option(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Name returns the name configured with WithName.
func (o *Observable[E]) Name() string {
	return o.name
}

// Subscribe appends a weak handle to the strong handle's observer to the registry and returns it.
//
// The returned Handle is what Unsubscribe expects. Subscribing the same Strong twice creates two entries,
// so the observer receives every event twice until it is unsubscribed. A nil strong handle registers nothing and
// the zero Handle is returned.
func (o *Observable[E]) Subscribe(strong *Strong[E]) Handle[E] {
	if strong == nil {
		return Handle[E]{}
	}

	sub := subscription[E]{
		id:     newSubscriptionID(),
		handle: handleOf(strong),
	}

	o.mu.Lock()
	o.subscriptions = append(o.subscriptions, sub)
	size := len(o.subscriptions)
	o.mu.Unlock()

	ctx := context.Background()
	o.logDebug(ctx, LogMsgSubscribed, LogAttrSubscriptionID, sub.id.String(), LogAttrRegistrySize, size)
	o.incrementCounter(ctx, SubscriptionsMetric, nil)
	o.recordRegistrySize(ctx, size)

	return sub.handle
}

// Unsubscribe removes every registry entry whose handle is identical to handle.
// It is a no-op if no entry matches, so calling it twice with the same handle is safe.
func (o *Observable[E]) Unsubscribe(handle Handle[E]) {
	removed, size := o.remove(handle)
	if len(removed) == 0 {
		return
	}

	ctx := context.Background()
	for _, sub := range removed {
		o.logDebug(ctx, LogMsgUnsubscribed, LogAttrSubscriptionID, sub.id.String(), LogAttrRegistrySize, size)
		o.incrementCounter(ctx, UnsubscriptionsMetric, nil)
	}

	o.recordRegistrySize(ctx, size)
}

// Raise delivers args to every live observer, in subscription order.
//
// For each registry entry the weak handle is upgraded for the duration of one delivery:
//   - the strong handle was garbage collected: the entry is pruned
//   - the owner called Strong.Release: the entry is pruned without delivering
//   - otherwise the observer's Update is called with args
//
// Raise works on a snapshot of the registry taken when it starts, so observers may subscribe and unsubscribe from
// inside Update; such changes take effect with the next Raise. The context is only used for log, metric, and trace
// correlation. If an observer panics, the panic propagates to the caller and the remaining entries are not visited.
func (o *Observable[E]) Raise(ctx context.Context, args E) {
	raiseStart := time.Now()
	eventType := args.EventType()
	ctx, span := o.startRaiseSpan(ctx, eventType)
	o.logRaiseStarted(ctx, eventType, args)

	delivered, pruned := 0, 0
	completed := false

	defer func() {
		if !completed {
			o.finishRaise(ctx, span, StatusError, eventType, delivered, pruned, time.Since(raiseStart))
		}
	}()

	for _, sub := range o.snapshot() {
		strong, reason := sub.handle.upgrade()
		if reason != "" {
			pruned += o.prune(ctx, sub.handle, reason)
			continue
		}

		strong.observer.Update(args)
		delivered++
		o.incrementCounter(ctx, DeliveriesMetric, map[string]string{LogAttrEventType: eventType})
	}

	completed = true
	o.finishRaise(ctx, span, StatusSuccess, eventType, delivered, pruned, time.Since(raiseStart))
}

// Prune removes every entry whose observer was garbage collected or released, without delivering anything.
// It returns the number of removed entries.
func (o *Observable[E]) Prune() int {
	ctx := context.Background()
	pruned := 0

	for _, sub := range o.snapshot() {
		if _, reason := sub.handle.upgrade(); reason != "" {
			pruned += o.prune(ctx, sub.handle, reason)
		}
	}

	return pruned
}

// Len returns the number of registry entries, including dead ones that were not pruned yet.
func (o *Observable[E]) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.subscriptions)
}

func (o *Observable[E]) snapshot() []subscription[E] {
	o.mu.Lock()
	defer o.mu.Unlock()

	return slices.Clone(o.subscriptions)
}

// remove deletes all entries with the given handle and returns them together with the new registry size.
func (o *Observable[E]) remove(handle Handle[E]) ([]subscription[E], int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	var removed []subscription[E]
	kept := o.subscriptions[:0]

	for _, sub := range o.subscriptions {
		if sub.handle == handle {
			removed = append(removed, sub)
			continue
		}

		kept = append(kept, sub)
	}

	clear(o.subscriptions[len(kept):])
	o.subscriptions = kept

	return removed, len(kept)
}

func (o *Observable[E]) prune(ctx context.Context, handle Handle[E], reason string) int {
	removed, size := o.remove(handle)
	if len(removed) == 0 {
		return 0
	}

	for _, sub := range removed {
		o.logDebug(ctx, LogMsgPruned, LogAttrSubscriptionID, sub.id.String(), LogAttrReason, reason)
		o.incrementCounter(ctx, PrunedMetric, map[string]string{LogAttrReason: reason})
	}

	o.recordRegistrySize(ctx, size)

	return len(removed)
}

func newSubscriptionID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}
