package observable

import (
	"sync/atomic"
	"weak"
)

const (
	pruneReasonCollected = "collected"
	pruneReasonReleased  = "released"
)

// Strong is the owning handle of an observer.
//
// Whoever holds a *Strong keeps the observer subscribed. It is created once by Share and may be shared freely by the
// owner; the Observable itself only ever holds weak handles to it.
type Strong[E EventArgs] struct {
	observer Observer[E]
	released atomic.Bool
}

// Share converts an observer into its strong handle.
// Returns ErrNilObserver if observer is nil.
func Share[E EventArgs](observer Observer[E]) (*Strong[E], error) {
	if observer == nil {
		return nil, ErrNilObserver
	}

	return &Strong[E]{observer: observer}, nil
}

// Observer returns the wrapped observer.
func (s *Strong[E]) Observer() Observer[E] {
	return s.observer
}

// Release ends the ownership of the observer.
//
// After Release no Observable delivers to it anymore, even if the strong handle is still reachable, and every
// registry entry pointing to it is pruned on the next Raise or Prune. Releasing twice is a no-op.
func (s *Strong[E]) Release() {
	s.released.Store(true)
}

// Released reports whether Release was called.
func (s *Strong[E]) Released() bool {
	return s.released.Load()
}

// Handle is the non-owning handle of a subscribed observer, as returned by Observable.Subscribe.
//
// Handles are comparable: two handles are equal exactly when they were derived from the same Strong.
// The zero Handle refers to nothing and is never alive.
type Handle[E EventArgs] struct {
	ptr weak.Pointer[Strong[E]]
}

func handleOf[E EventArgs](strong *Strong[E]) Handle[E] {
	return Handle[E]{ptr: weak.Make(strong)}
}

// Alive reports whether the handle still refers to an owned observer,
// i.e. the strong handle was neither garbage collected nor released.
func (h Handle[E]) Alive() bool {
	_, reason := h.upgrade()
	return reason == ""
}

// IsZero reports whether h is the zero Handle.
func (h Handle[E]) IsZero() bool {
	return h == Handle[E]{}
}

// upgrade returns the strong handle for the duration of one delivery, or an empty strong handle and
// the reason why the entry has to be pruned.
func (h Handle[E]) upgrade() (*Strong[E], string) {
	strong := h.ptr.Value()
	if strong == nil {
		return nil, pruneReasonCollected
	}

	if strong.Released() {
		return nil, pruneReasonReleased
	}

	return strong, ""
}
