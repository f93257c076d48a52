// Package observable provides an in-process observer registry that never keeps
// its subscribers alive.
//
// An Observable holds only weak handles to its observers. The owner of an
// observer turns it into a strong handle once with Share, subscribes that handle
// and keeps it for as long as the observer should receive events. As soon as the
// owner calls Strong.Release, or the strong handle becomes unreachable and is
// garbage collected, the observer is pruned from the registry on the next Raise
// (or Prune) and never receives another event.
//
// Key types:
//   - EventArgs: the payload capability, implemented by every raised event
//   - Observer: the capability of receiving events of type E
//   - Strong: the owning handle created by Share
//   - Handle: the non-owning handle returned by Subscribe
//   - Observable: the registry with Subscribe, Unsubscribe and Raise
//
// Common usage pattern:
//
//	subject, err := observable.New[core.ValueIncremented](
//		observable.WithName[core.ValueIncremented]("counter"),
//		observable.WithLogger[core.ValueIncremented](slog.Default()),
//	)
//	if err != nil {
//		// handle error
//	}
//
//	owner, err := observable.Share[core.ValueIncremented](core.NewAccumulator("Observer 1"))
//	if err != nil {
//		// handle error
//	}
//
//	handle := subject.Subscribe(owner)
//	subject.Raise(ctx, core.BuildValueIncremented(1))
//
//	owner.Release()            // no further deliveries, pruned on the next Raise
//	subject.Unsubscribe(handle) // or remove it explicitly, both are safe
//
// The registry is guarded by a mutex, so Subscribe, Unsubscribe and Raise may be
// called from different goroutines. Observers are called outside that lock and
// must synchronize their own state if they are shared between goroutines.
package observable
