package module

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matrix-org/synapse-username-from-threepid/internal/hook"
	"github.com/matrix-org/synapse-username-from-threepid/internal/host"
	"github.com/matrix-org/synapse-username-from-threepid/internal/threepid"
)

func TestNew(t *testing.T) {
	t.Run("registers exactly one hook", func(t *testing.T) {
		stub := host.NewStubHost()

		m, err := New(map[string]any{"threepid_to_use": "email"}, stub)
		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Len(t, stub.Hooks(), 1)
	})

	t.Run("missing threepid_to_use prevents load", func(t *testing.T) {
		stub := host.NewStubHost()

		_, err := New(map[string]any{}, stub)
		require.Error(t, err)
		assert.Empty(t, stub.Hooks())
	})

	t.Run("invalid threepid_to_use prevents load", func(t *testing.T) {
		stub := host.NewStubHost()

		_, err := New(map[string]any{"threepid_to_use": "pager"}, stub)
		require.Error(t, err)
		assert.Empty(t, stub.Hooks())
	})

	t.Run("invalid observability type prevents load", func(t *testing.T) {
		stub := host.NewStubHost()

		_, err := New(map[string]any{
			"threepid_to_use": "email",
			"observability":   map[string]any{"type": "statsd"},
		}, stub)
		require.Error(t, err)
		assert.Empty(t, stub.Hooks())
	})
}

func TestRegistrationFlow(t *testing.T) {
	ctx := context.Background()

	load := func(t *testing.T, raw map[string]any) *host.StubHost {
		t.Helper()
		stub := host.NewStubHost()
		_, err := New(raw, stub)
		require.NoError(t, err)
		return stub
	}

	t.Run("email registration proposes the local part", func(t *testing.T) {
		stub := load(t, map[string]any{"threepid_to_use": "email"})

		decision, err := stub.RunBeforeRegistration(ctx, []threepid.Identifier{
			{Medium: threepid.MediumEmail, Address: "alice@example.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, hook.KindProposed, decision.Kind)
		assert.Equal(t, "alice", decision.Username)
	})

	t.Run("msisdn registration proposes the digit string", func(t *testing.T) {
		stub := load(t, map[string]any{"threepid_to_use": "msisdn"})

		decision, err := stub.RunBeforeRegistration(ctx, []threepid.Identifier{
			{Medium: threepid.MediumMSISDN, Address: "+15551234567"},
		})
		require.NoError(t, err)
		assert.Equal(t, hook.KindProposed, decision.Kind)
		assert.Equal(t, "15551234567", decision.Username)
	})

	t.Run("no matching threepid yields no opinion", func(t *testing.T) {
		stub := load(t, map[string]any{"threepid_to_use": "email"})

		decision, err := stub.RunBeforeRegistration(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, hook.KindNoOpinion, decision.Kind)
	})

	t.Run("fail_if_not_found rejects mismatched registrations", func(t *testing.T) {
		stub := load(t, map[string]any{
			"threepid_to_use":   "msisdn",
			"fail_if_not_found": true,
		})

		decision, err := stub.RunBeforeRegistration(ctx, []threepid.Identifier{
			{Medium: threepid.MediumEmail, Address: "alice@example.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, hook.KindRejected, decision.Kind)
		assert.Contains(t, decision.Message, "msisdn")
	})
}
