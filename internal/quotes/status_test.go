package quotes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusNegotiating, true},
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		{StatusNegotiating, StatusNegotiating, true},
		{StatusNegotiating, StatusAccepted, true},
		{StatusNegotiating, StatusRejected, true},
		{StatusAccepted, StatusNegotiating, false},
		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusNegotiating, false},
		{StatusRejected, StatusAccepted, false},
		{StatusPending, StatusPending, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTerminal(t *testing.T) {
	assert.False(t, Quote{Status: StatusPending}.Terminal())
	assert.False(t, Quote{Status: StatusNegotiating}.Terminal())
	assert.True(t, Quote{Status: StatusAccepted}.Terminal())
	assert.True(t, Quote{Status: StatusRejected}.Terminal())
}
