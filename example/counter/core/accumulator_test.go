package core_test

import (
	"bytes"
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/weak-observer-go/example/counter/core"
	"github.com/AntonStoeckl/weak-observer-go/observable"
)

func Test_Accumulator_Update(t *testing.T) {
	// arrange
	var out bytes.Buffer
	accumulator := core.NewAccumulator("Observer 1", core.WithReportWriter(&out))

	// act
	accumulator.Update(core.BuildValueIncremented(1))
	accumulator.Update(core.BuildValueIncremented(5))

	// assert
	assert.Equal(t, 6, accumulator.Total())
	assert.Equal(t, "Observer 1", accumulator.Name())
	assert.Equal(t, "Observer 1 received 1\nObserver 1 received 6\n", out.String())
}

func Test_Accumulator_StartsAtZero(t *testing.T) {
	accumulator := core.NewAccumulator("Observer 1")

	assert.Equal(t, 0, accumulator.Total())
}

func Test_Scenario_ThreeObserversReceiveOneEvent(t *testing.T) {
	// arrange
	var out bytes.Buffer
	subject, accumulators, owners := givenThreeSubscribedAccumulators(t, &out)

	// act
	subject.Raise(context.Background(), core.BuildValueIncremented(1))

	// assert
	for _, accumulator := range accumulators {
		assert.Equal(t, 1, accumulator.Total(), "%s should have received the event", accumulator.Name())
	}

	assert.Equal(t, "Observer 1 received 1\nObserver 2 received 1\nObserver 3 received 1\n", out.String())
	runtime.KeepAlive(owners)
}

func Test_Scenario_DroppedObserverIsPrunedOnNextRaise(t *testing.T) {
	// arrange
	var out bytes.Buffer
	subject, accumulators, owners := givenThreeSubscribedAccumulators(t, &out)
	subject.Raise(context.Background(), core.BuildValueIncremented(1))
	out.Reset()

	// act
	owners[1].Release()
	subject.Raise(context.Background(), core.BuildValueIncremented(5))

	// assert
	assert.Equal(t, 6, accumulators[0].Total())
	assert.Equal(t, 1, accumulators[1].Total(), "the dropped observer should not receive the event")
	assert.Equal(t, 6, accumulators[2].Total())
	assert.Equal(t, "Observer 1 received 6\nObserver 3 received 6\n", out.String())
	assert.Equal(t, 2, subject.Len(), "the dropped observer should be gone from the registry")
	runtime.KeepAlive(owners)
}

func givenThreeSubscribedAccumulators(
	t *testing.T,
	out *bytes.Buffer,
) (*observable.Observable[core.ValueIncremented], []*core.Accumulator, []*observable.Strong[core.ValueIncremented]) {
	t.Helper()

	subject, err := observable.New[core.ValueIncremented]()
	require.NoError(t, err, "error in arranging test data")

	accumulators := make([]*core.Accumulator, 0, 3)
	owners := make([]*observable.Strong[core.ValueIncremented], 0, 3)

	for _, name := range []string{"Observer 1", "Observer 2", "Observer 3"} {
		accumulator := core.NewAccumulator(name, core.WithReportWriter(out))
		owner, err := observable.Share[core.ValueIncremented](accumulator)
		require.NoError(t, err, "error in arranging test data")

		subject.Subscribe(owner)
		accumulators = append(accumulators, accumulator)
		owners = append(owners, owner)
	}

	return subject, accumulators, owners
}
