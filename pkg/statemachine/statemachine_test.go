package statemachine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sm "github.com/atnchile/portal/pkg/statemachine"
)

const (
	draft     = sm.StringState("draft")
	review    = sm.StringState("review")
	published = sm.StringState("published")
	rejected  = sm.StringState("rejected")

	submit  = sm.StringEvent("submit")
	approve = sm.StringEvent("approve")
)

func isComplete(_ context.Context, _ sm.State, _ sm.Event, data any) bool {
	complete, _ := data.(bool)
	return complete
}

func newMachine(t *testing.T, actions ...sm.Action) *sm.Machine {
	t.Helper()
	b := sm.NewBuilder().
		From(draft).On(submit).To(review).WithGuard(isComplete).Add().
		From(review).On(approve).To(published).WithAction(actionOrNil(actions)).Add().
		From(review).On(submit).To(rejected).Add()
	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func actionOrNil(actions []sm.Action) sm.Action {
	if len(actions) == 0 {
		return nil
	}
	return actions[0]
}

func TestFire(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("follows transition", func(t *testing.T) {
		t.Parallel()
		m := newMachine(t)
		next, err := m.Fire(ctx, draft, submit, true)
		require.NoError(t, err)
		assert.Equal(t, review, next)
	})

	t.Run("guard rejects", func(t *testing.T) {
		t.Parallel()
		m := newMachine(t)
		next, err := m.Fire(ctx, draft, submit, false)
		assert.True(t, sm.IsTransitionRejectedError(err))
		assert.Equal(t, draft, next)
		assert.False(t, m.CanFire(ctx, draft, submit, false))
		assert.True(t, m.CanFire(ctx, draft, submit, true))
	})

	t.Run("unknown event", func(t *testing.T) {
		t.Parallel()
		m := newMachine(t)
		_, err := m.Fire(ctx, published, submit, nil)
		assert.True(t, sm.IsNoTransitionAvailableError(err))
		assert.Contains(t, err.Error(), "published")
	})

	t.Run("action runs and can veto", func(t *testing.T) {
		t.Parallel()
		var calls []string
		ok := newMachine(t, func(_ context.Context, from, to sm.State, _ sm.Event, _ any) error {
			calls = append(calls, from.Name()+"->"+to.Name())
			return nil
		})
		next, err := ok.Fire(ctx, review, approve, nil)
		require.NoError(t, err)
		assert.Equal(t, published, next)
		assert.Equal(t, []string{"review->published"}, calls)

		veto := newMachine(t, func(context.Context, sm.State, sm.State, sm.Event, any) error {
			return errors.New("locked")
		})
		next, err = veto.Fire(ctx, review, approve, nil)
		assert.ErrorContains(t, err, "locked")
		assert.Equal(t, review, next)
	})

	t.Run("nil inputs", func(t *testing.T) {
		t.Parallel()
		m := newMachine(t)
		_, err := m.Fire(ctx, nil, submit, nil)
		assert.ErrorIs(t, err, sm.ErrInvalidEvent)
		assert.False(t, m.CanFire(ctx, draft, nil, nil))
	})

	t.Run("machine holds no state", func(t *testing.T) {
		t.Parallel()
		m := newMachine(t)
		a, _ := m.Fire(ctx, draft, submit, true)
		b, _ := m.Fire(ctx, draft, submit, true)
		assert.Equal(t, a, b)
	})
}

func TestEvents(t *testing.T) {
	t.Parallel()
	m := newMachine(t)

	assert.Equal(t, []sm.Event{approve, submit}, m.Events(review))
	assert.Empty(t, m.Events(published))
	assert.Nil(t, m.Events(nil))
}

func TestBuilderReportsFirstError(t *testing.T) {
	t.Parallel()

	_, err := sm.NewBuilder().
		From(draft).On(submit).Add().
		From(nil).On(submit).To(review).Add().
		Build()
	require.ErrorIs(t, err, sm.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "draft --submit--> <nil>")

	assert.Panics(t, func() {
		sm.NewBuilder().From(draft).Add().MustBuild()
	})
}
