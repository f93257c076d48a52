package observable

import (
	"errors"
)

var ErrEmptyObservableName = errors.New("empty observable name supplied")
var ErrNilObserver = errors.New("nil observer supplied")

// EventArgs is implemented by every payload an Observable can raise.
//
// The observable never stores EventArgs, it only hands them to its observers for the duration of one Raise call,
// so implementations should be immutable values.
type EventArgs interface {
	EventType() string
}

// Observer is the capability of receiving events of type E.
//
// Update is called synchronously from Raise. A panic in Update is treated as a programming error and is not recovered.
type Observer[E EventArgs] interface {
	Update(args E)
}
