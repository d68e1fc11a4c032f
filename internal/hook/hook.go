// Package hook implements the before-registration extension point: given the
// third-party identifiers verified for a registration attempt, decide on a
// username candidate.
package hook

import (
	"context"
	"fmt"

	"github.com/matrix-org/synapse-username-from-threepid/internal/threepid"
)

// Attempt carries the inputs the host supplies for one registration attempt.
type Attempt struct {
	// ID identifies the attempt for logging. Assigned by the host.
	ID string

	// Threepids are the verified identifiers offered during registration,
	// in the order the host received them.
	Threepids []threepid.Identifier
}

// RegistrationHook decides on a username for a registration attempt.
// Implementations hold no mutable state across invocations and are safe for
// concurrent use by the host.
type RegistrationHook interface {
	// PickUsername inspects the attempt's third-party identifiers and
	// returns a decision. An error is a genuine fault; the host treats it
	// as a registration failure.
	PickUsername(ctx context.Context, attempt *Attempt) (Decision, error)
}

// ThreepidHookConfig configures a ThreepidHook.
type ThreepidHookConfig struct {
	// Medium is the identifier kind to derive usernames from.
	Medium threepid.Medium

	// FailIfNotFound rejects the registration attempt when no identifier
	// of the configured medium was supplied. When false the hook returns
	// NoOpinion instead.
	FailIfNotFound bool

	// Observer receives decisions for observability. If nil, uses a no-op.
	Observer Observer
}

// ThreepidHook derives a username from the first identifier matching the
// configured medium. It is immutable after construction.
type ThreepidHook struct {
	medium         threepid.Medium
	failIfNotFound bool
	observer       Observer
}

// NewThreepidHook creates a hook from configuration.
func NewThreepidHook(cfg ThreepidHookConfig) (*ThreepidHook, error) {
	medium, err := threepid.ParseMedium(string(cfg.Medium))
	if err != nil {
		return nil, err
	}

	observer := cfg.Observer
	if observer == nil {
		observer = &NoOpObserver{}
	}

	return &ThreepidHook{
		medium:         medium,
		failIfNotFound: cfg.FailIfNotFound,
		observer:       observer,
	}, nil
}

// Medium returns the identifier kind this hook derives usernames from.
func (h *ThreepidHook) Medium() threepid.Medium {
	return h.medium
}

// PickUsername implements RegistrationHook.
// It scans the attempt's identifiers in order and derives a username from the
// first one whose medium matches the configured medium. At most one username
// is proposed per attempt.
func (h *ThreepidHook) PickUsername(ctx context.Context, attempt *Attempt) (Decision, error) {
	for _, id := range attempt.Threepids {
		if id.Medium != h.medium {
			continue
		}

		username, err := threepid.DeriveUsername(id)
		if err != nil {
			h.observer.PickFailed(ctx, attempt, err)
			return Decision{}, fmt.Errorf("failed to derive username from %s identifier: %w", id.Medium, err)
		}

		decision := Propose(username)
		h.observer.DecisionMade(ctx, attempt, decision)
		return decision, nil
	}

	if h.failIfNotFound {
		decision := Reject(fmt.Sprintf("registration requires a verified %s identifier", h.medium))
		h.observer.DecisionMade(ctx, attempt, decision)
		return decision, nil
	}

	decision := NoOpinion()
	h.observer.DecisionMade(ctx, attempt, decision)
	return decision, nil
}
