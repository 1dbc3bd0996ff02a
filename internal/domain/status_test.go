package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []Status{
	StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
	StatusOutForDelivery, StatusDelivered, StatusCancelled,
}

func TestCanTransitionTo(t *testing.T) {
	allowed := map[Status][]Status{
		StatusPending:        {StatusConfirmed, StatusCancelled},
		StatusConfirmed:      {StatusPreparing, StatusCancelled},
		StatusPreparing:      {StatusReady, StatusCancelled},
		StatusReady:          {StatusOutForDelivery, StatusCancelled},
		StatusOutForDelivery: {StatusDelivered},
		StatusDelivered:      {},
		StatusCancelled:      {},
	}

	// Every (from, to) pair not in the table must be rejected.
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestCanTransitionToRejectsSkippedSteps(t *testing.T) {
	assert.False(t, StatusPending.CanTransitionTo(StatusOutForDelivery))
	assert.False(t, StatusPending.CanTransitionTo(StatusDelivered))
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusReady))
	assert.False(t, StatusOutForDelivery.CanTransitionTo(StatusCancelled))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())

	for _, s := range []Status{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusOutForDelivery} {
		assert.False(t, s.IsTerminal(), "%s", s)
	}
}

func TestParseStatus(t *testing.T) {
	status, ok := ParseStatus("out_for_delivery")
	assert.True(t, ok)
	assert.Equal(t, StatusOutForDelivery, status)

	_, ok = ParseStatus("cooking")
	assert.False(t, ok)

	_, ok = ParseStatus("")
	assert.False(t, ok)
}
