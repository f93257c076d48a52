package observable_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/weak-observer-go/observable"
	. "github.com/AntonStoeckl/weak-observer-go/testutil/observability/testdoubles" //nolint:revive
)

const countedEventType = "Counted"

type counted struct {
	Delta int
}

func (counted) EventType() string {
	return countedEventType
}

type spy = ObserverSpy[counted]

func givenObservable(t testing.TB, options ...observable.Option[counted]) *observable.Observable[counted] {
	t.Helper()

	subject, err := observable.New[counted](options...)
	require.NoError(t, err, "error in arranging test data")

	return subject
}

// givenOwner shares observer and keeps the strong handle reachable until the test has finished.
func givenOwner(t testing.TB, observer observable.Observer[counted]) *observable.Strong[counted] {
	t.Helper()

	owner, err := observable.Share[counted](observer)
	require.NoError(t, err, "error in arranging test data")

	t.Cleanup(func() {
		runtime.KeepAlive(owner)
	})

	return owner
}

func givenSpy(name string, log *DeliveryLog) *spy {
	return NewObserverSpy[counted](name, log)
}

// subscribeUnowned subscribes observer through a strong handle that is unreachable once this function returns.
func subscribeUnowned(subject *observable.Observable[counted], observer observable.Observer[counted]) observable.Handle[counted] {
	owner, _ := observable.Share[counted](observer)
	return subject.Subscribe(owner)
}

// collectUntilDead runs the garbage collector until handle no longer resolves.
func collectUntilDead(t testing.TB, handle observable.Handle[counted]) {
	t.Helper()

	for range 10 {
		runtime.GC()

		if !handle.Alive() {
			return
		}
	}

	require.FailNow(t, "strong handle was not garbage collected")
}
