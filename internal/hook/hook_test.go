package hook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matrix-org/synapse-username-from-threepid/internal/threepid"
)

// recordingObserver captures events for assertions
type recordingObserver struct {
	decisions []Decision
	errs      []error
}

func (o *recordingObserver) DecisionMade(ctx context.Context, attempt *Attempt, decision Decision) {
	o.decisions = append(o.decisions, decision)
}

func (o *recordingObserver) PickFailed(ctx context.Context, attempt *Attempt, err error) {
	o.errs = append(o.errs, err)
}

func newTestHook(t *testing.T, cfg ThreepidHookConfig) *ThreepidHook {
	t.Helper()

	h, err := NewThreepidHook(cfg)
	require.NoError(t, err)
	return h
}

func TestNewThreepidHook(t *testing.T) {
	t.Run("rejects unknown medium", func(t *testing.T) {
		_, err := NewThreepidHook(ThreepidHookConfig{Medium: "carrier-pigeon"})
		require.Error(t, err)
	})

	t.Run("rejects empty medium", func(t *testing.T) {
		_, err := NewThreepidHook(ThreepidHookConfig{})
		require.Error(t, err)
	})
}

func TestPickUsername_Email(t *testing.T) {
	ctx := context.Background()
	h := newTestHook(t, ThreepidHookConfig{Medium: threepid.MediumEmail})

	t.Run("proposes the email local part", func(t *testing.T) {
		decision, err := h.PickUsername(ctx, &Attempt{
			Threepids: []threepid.Identifier{
				{Medium: threepid.MediumEmail, Address: "alice@example.com"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, KindProposed, decision.Kind)
		assert.Equal(t, "alice", decision.Username)
	})

	t.Run("first matching identifier wins", func(t *testing.T) {
		decision, err := h.PickUsername(ctx, &Attempt{
			Threepids: []threepid.Identifier{
				{Medium: threepid.MediumMSISDN, Address: "440000000000"},
				{Medium: threepid.MediumEmail, Address: "first@example.com"},
				{Medium: threepid.MediumEmail, Address: "second@example.com"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, KindProposed, decision.Kind)
		assert.Equal(t, "first", decision.Username)
	})

	t.Run("no identifiers means no opinion", func(t *testing.T) {
		decision, err := h.PickUsername(ctx, &Attempt{})
		require.NoError(t, err)
		assert.Equal(t, KindNoOpinion, decision.Kind)
		assert.Empty(t, decision.Username)
	})

	t.Run("only mismatched identifiers means no opinion", func(t *testing.T) {
		decision, err := h.PickUsername(ctx, &Attempt{
			Threepids: []threepid.Identifier{
				{Medium: threepid.MediumMSISDN, Address: "440000000000"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, KindNoOpinion, decision.Kind)
	})

	t.Run("derivation fault propagates as an error", func(t *testing.T) {
		observer := &recordingObserver{}
		faulty := newTestHook(t, ThreepidHookConfig{
			Medium:   threepid.MediumEmail,
			Observer: observer,
		})

		_, err := faulty.PickUsername(ctx, &Attempt{
			Threepids: []threepid.Identifier{
				{Medium: threepid.MediumEmail, Address: "@example.com"},
			},
		})
		require.Error(t, err)
		assert.Len(t, observer.errs, 1)
		assert.Empty(t, observer.decisions)
	})
}

func TestPickUsername_MSISDN(t *testing.T) {
	ctx := context.Background()
	h := newTestHook(t, ThreepidHookConfig{Medium: threepid.MediumMSISDN})

	t.Run("proposes the digit string", func(t *testing.T) {
		decision, err := h.PickUsername(ctx, &Attempt{
			Threepids: []threepid.Identifier{
				{Medium: threepid.MediumMSISDN, Address: "+15551234567"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, KindProposed, decision.Kind)
		assert.Equal(t, "15551234567", decision.Username)
	})

	t.Run("email identifiers are skipped", func(t *testing.T) {
		decision, err := h.PickUsername(ctx, &Attempt{
			Threepids: []threepid.Identifier{
				{Medium: threepid.MediumEmail, Address: "alice@example.com"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, KindNoOpinion, decision.Kind)
	})
}

func TestPickUsername_FailIfNotFound(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects when no identifier matches", func(t *testing.T) {
		h := newTestHook(t, ThreepidHookConfig{
			Medium:         threepid.MediumMSISDN,
			FailIfNotFound: true,
		})

		decision, err := h.PickUsername(ctx, &Attempt{
			Threepids: []threepid.Identifier{
				{Medium: threepid.MediumEmail, Address: "alice@example.com"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, KindRejected, decision.Kind)
		assert.Contains(t, decision.Message, "msisdn")
	})

	t.Run("rejection message names the configured medium", func(t *testing.T) {
		h := newTestHook(t, ThreepidHookConfig{
			Medium:         threepid.MediumEmail,
			FailIfNotFound: true,
		})

		decision, err := h.PickUsername(ctx, &Attempt{})
		require.NoError(t, err)
		assert.Equal(t, KindRejected, decision.Kind)
		assert.Contains(t, decision.Message, "email")
	})

	t.Run("still proposes when a match exists", func(t *testing.T) {
		h := newTestHook(t, ThreepidHookConfig{
			Medium:         threepid.MediumEmail,
			FailIfNotFound: true,
		})

		decision, err := h.PickUsername(ctx, &Attempt{
			Threepids: []threepid.Identifier{
				{Medium: threepid.MediumEmail, Address: "alice@example.com"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, KindProposed, decision.Kind)
	})
}

func TestPickUsername_ObserverSeesDecision(t *testing.T) {
	ctx := context.Background()
	observer := &recordingObserver{}
	h := newTestHook(t, ThreepidHookConfig{
		Medium:   threepid.MediumEmail,
		Observer: observer,
	})

	_, err := h.PickUsername(ctx, &Attempt{
		Threepids: []threepid.Identifier{
			{Medium: threepid.MediumEmail, Address: "alice@example.com"},
		},
	})
	require.NoError(t, err)

	require.Len(t, observer.decisions, 1)
	assert.Equal(t, KindProposed, observer.decisions[0].Kind)
	assert.Equal(t, "alice", observer.decisions[0].Username)
}
