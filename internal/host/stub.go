package host

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/matrix-org/synapse-username-from-threepid/internal/hook"
	"github.com/matrix-org/synapse-username-from-threepid/internal/threepid"
)

// StubHost is a minimal in-memory host for tests and dry runs. It implements
// Registrar and can drive registered hooks through a registration attempt the
// way a homeserver would.
type StubHost struct {
	mu    sync.Mutex
	hooks []hook.RegistrationHook
}

// NewStubHost creates a new stub host with no hooks registered.
func NewStubHost() *StubHost {
	return &StubHost{}
}

// RegisterRegistrationHook implements Registrar.
func (s *StubHost) RegisterRegistrationHook(h hook.RegistrationHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, h)
}

// Hooks returns the registered hooks in registration order.
func (s *StubHost) Hooks() []hook.RegistrationHook {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]hook.RegistrationHook(nil), s.hooks...)
}

// RunBeforeRegistration drives one registration attempt through the
// registered hooks. Hooks run in order until one returns something other than
// NoOpinion; with no hooks, or with every hook passing, the host would fall
// back to its default username flow, represented here by NoOpinion.
func (s *StubHost) RunBeforeRegistration(ctx context.Context, threepids []threepid.Identifier) (hook.Decision, error) {
	attempt := &hook.Attempt{
		ID:        uuid.New().String(),
		Threepids: threepids,
	}

	for _, h := range s.Hooks() {
		decision, err := h.PickUsername(ctx, attempt)
		if err != nil {
			return hook.Decision{}, err
		}
		if decision.Kind != hook.KindNoOpinion {
			return decision, nil
		}
	}

	return hook.NoOpinion(), nil
}
