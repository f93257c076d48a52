package core

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/AntonStoeckl/weak-observer-go/observable"
)

// Accumulator is an observer that sums up the deltas of all ValueIncremented events it receives.
type Accumulator struct {
	name  string
	total int
	out   io.Writer
	mu    sync.Mutex
}

// AccumulatorOption defines a functional option for configuring an Accumulator.
type AccumulatorOption func(*Accumulator)

// WithReportWriter sets where the Accumulator reports its new total after each update. Default: os.Stdout.
func WithReportWriter(out io.Writer) AccumulatorOption {
	return func(a *Accumulator) {
		a.out = out
	}
}

// NewAccumulator creates an Accumulator with a total of zero and the given display name.
func NewAccumulator(name string, options ...AccumulatorOption) *Accumulator {
	a := &Accumulator{
		name: name,
		out:  os.Stdout,
	}

	for _, option := range options {
		option(a)
	}

	return a
}

// Update adds the event's delta to the total and reports "<name> received <total>".
func (a *Accumulator) Update(args ValueIncremented) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.total += args.Value
	_, _ = fmt.Fprintf(a.out, "%s received %d\n", a.name, a.total)
}

func (a *Accumulator) Name() string {
	return a.name
}

func (a *Accumulator) Total() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.total
}

var _ observable.Observer[ValueIncremented] = (*Accumulator)(nil)
