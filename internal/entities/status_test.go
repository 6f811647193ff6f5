package entities_test

import (
	"testing"

	"duka/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Valid(t *testing.T) {
	for _, s := range []entities.Status{
		entities.StatusPending,
		entities.StatusShipped,
		entities.StatusDelivered,
		entities.StatusCancelled,
	} {
		assert.True(t, s.Valid(), s.String())
	}

	assert.False(t, entities.Status("").Valid())
	assert.False(t, entities.Status("Processing").Valid())
	assert.False(t, entities.Status("pending").Valid())
}

func TestTransitionTable_Allowed(t *testing.T) {
	table := entities.DefaultTransitions()

	testCases := []struct {
		from entities.Status
		to   entities.Status
		want bool
	}{
		{entities.StatusPending, entities.StatusShipped, true},
		{entities.StatusPending, entities.StatusCancelled, true},
		{entities.StatusPending, entities.StatusDelivered, false},
		{entities.StatusPending, entities.StatusPending, false},

		{entities.StatusShipped, entities.StatusDelivered, true},
		{entities.StatusShipped, entities.StatusCancelled, true},
		{entities.StatusShipped, entities.StatusPending, false},
		{entities.StatusShipped, entities.StatusShipped, false},

		{entities.StatusDelivered, entities.StatusPending, false},
		{entities.StatusDelivered, entities.StatusShipped, false},
		{entities.StatusDelivered, entities.StatusCancelled, false},
		{entities.StatusDelivered, entities.StatusDelivered, false},

		{entities.StatusCancelled, entities.StatusPending, false},
		{entities.StatusCancelled, entities.StatusShipped, false},
		{entities.StatusCancelled, entities.StatusDelivered, false},
		{entities.StatusCancelled, entities.StatusCancelled, false},
	}

	for _, tc := range testCases {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, table.Allowed(tc.from, tc.to))
		})
	}
}

func TestTransitionTable_Terminal(t *testing.T) {
	table := entities.DefaultTransitions()

	assert.False(t, table.Terminal(entities.StatusPending))
	assert.False(t, table.Terminal(entities.StatusShipped))
	assert.True(t, table.Terminal(entities.StatusDelivered))
	assert.True(t, table.Terminal(entities.StatusCancelled))

	// unknown statuses are not terminal, they are invalid
	assert.False(t, table.Terminal(entities.Status("Processing")))
}
