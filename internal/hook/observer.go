package hook

import "context"

// Observer receives observability events from registration hooks.
// Implementations must not mutate the attempt or the decision.
type Observer interface {
	// DecisionMade is called once per attempt with the decision returned
	// to the host.
	DecisionMade(ctx context.Context, attempt *Attempt, decision Decision)

	// PickFailed is called when the hook hits a genuine fault, before the
	// error propagates to the host.
	PickFailed(ctx context.Context, attempt *Attempt, err error)
}

// NoOpObserver discards all events.
type NoOpObserver struct{}

func (o *NoOpObserver) DecisionMade(ctx context.Context, attempt *Attempt, decision Decision) {}

func (o *NoOpObserver) PickFailed(ctx context.Context, attempt *Attempt, err error) {}
