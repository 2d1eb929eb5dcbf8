package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatchingHistory(t *testing.T) {
	m := NewMatching(1, nil, 7, nil)

	assert.Equal(t, MatchingPending, m.Status)
	require.Len(t, m.History, 1)
	assert.Equal(t, MatchingActionCreated, m.History[0].Action)
	assert.Equal(t, MatchingPending, m.History[0].ToStatus)
	assert.Nil(t, m.CancelledAt)
}

func TestMatchingTransitionAppendsHistory(t *testing.T) {
	m := NewMatching(1, nil, 7, nil)

	require.NoError(t, m.Transition(MatchingActive))
	require.Len(t, m.History, 2)
	assert.Equal(t, MatchingActionUpdated, m.History[1].Action)
	assert.Equal(t, MatchingPending, m.History[1].FromStatus)
	assert.Equal(t, MatchingActive, m.History[1].ToStatus)

	// No-op transition records nothing.
	require.NoError(t, m.Transition(MatchingActive))
	assert.Len(t, m.History, 2)

	// Cancellation must not go through Transition.
	assert.Error(t, m.Transition(MatchingCancelled))
}

func TestMatchingCancelExactlyOnce(t *testing.T) {
	m := NewMatching(1, nil, 7, nil)

	require.NoError(t, m.Cancel("sponsor withdrew"))
	assert.Equal(t, MatchingCancelled, m.Status)
	assert.Equal(t, "sponsor withdrew", m.CancelReason)
	require.NotNil(t, m.CancelledAt)
	first := *m.CancelledAt

	// A second cancel is rejected and leaves the record untouched.
	err := m.Cancel("again")
	assert.ErrorIs(t, err, ErrMatchingFinal)
	assert.Equal(t, first, *m.CancelledAt)

	cancelledEvents := 0
	for _, ev := range m.History {
		if ev.Action == MatchingActionCancelled {
			cancelledEvents++
		}
	}
	assert.Equal(t, 1, cancelledEvents)

	// Final matchings reject further transitions too.
	assert.ErrorIs(t, m.Transition(MatchingActive), ErrMatchingFinal)
}

func TestMatchingCountsAsWorkload(t *testing.T) {
	m := NewMatching(1, nil, 7, nil)
	assert.True(t, m.CountsAsWorkload())

	require.NoError(t, m.Transition(MatchingActive))
	assert.True(t, m.CountsAsWorkload())

	require.NoError(t, m.Transition(MatchingCompleted))
	assert.False(t, m.CountsAsWorkload())
}
