package testdoubles

import (
	"sync"

	"github.com/AntonStoeckl/weak-observer-go/observable"
)

// Delivery is one Update call recorded in a DeliveryLog.
type Delivery struct {
	Observer  string
	EventType string
}

// DeliveryLog records deliveries of several observers in the order they happened.
type DeliveryLog struct {
	deliveries []Delivery
	mu         sync.Mutex
}

// NewDeliveryLog creates an empty DeliveryLog.
func NewDeliveryLog() *DeliveryLog {
	return &DeliveryLog{}
}

// Observers returns the observer names of all deliveries, in delivery order.
func (l *DeliveryLog) Observers() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	names := make([]string, 0, len(l.deliveries))
	for _, delivery := range l.deliveries {
		names = append(names, delivery.Observer)
	}

	return names
}

// GetDeliveries returns a copy of all deliveries.
func (l *DeliveryLog) GetDeliveries() []Delivery {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]Delivery(nil), l.deliveries...)
}

// Reset clears the log.
func (l *DeliveryLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.deliveries = l.deliveries[:0]
}

func (l *DeliveryLog) append(delivery Delivery) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.deliveries = append(l.deliveries, delivery)
}

// ObserverSpy is an Observer that captures every event it receives.
type ObserverSpy[E observable.EventArgs] struct {
	name     string
	log      *DeliveryLog
	received []E
	onUpdate func(E)
	mu       sync.Mutex
}

// NewObserverSpy creates an ObserverSpy. If log is not nil, every delivery is also appended to it.
func NewObserverSpy[E observable.EventArgs](name string, log *DeliveryLog) *ObserverSpy[E] {
	return &ObserverSpy[E]{
		name: name,
		log:  log,
	}
}

// OnUpdate registers a hook that runs after each recorded delivery, e.g. to unsubscribe or to panic.
func (s *ObserverSpy[E]) OnUpdate(hook func(E)) *ObserverSpy[E] {
	s.onUpdate = hook
	return s
}

// Update implements the Observer interface for testing.
func (s *ObserverSpy[E]) Update(args E) {
	s.mu.Lock()
	s.received = append(s.received, args)
	s.mu.Unlock()

	if s.log != nil {
		s.log.append(Delivery{Observer: s.name, EventType: args.EventType()})
	}

	if s.onUpdate != nil {
		s.onUpdate(args)
	}
}

// Name returns the spy's name.
func (s *ObserverSpy[E]) Name() string {
	return s.name
}

// GetReceived returns a copy of all received events.
func (s *ObserverSpy[E]) GetReceived() []E {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]E(nil), s.received...)
}

// CallCount returns how often Update was called.
func (s *ObserverSpy[E]) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.received)
}
