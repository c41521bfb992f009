package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{Inactive, "Inactive"},
		{Initializing, "Initializing"},
		{Stopped, "Stopped"},
		{Running, "Running"},
		{Failed, "Failed"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, State(0), Inactive)
	assert.Equal(t, State(1), Initializing)
	assert.Equal(t, State(2), Stopped)
	assert.Equal(t, State(3), Running)
	assert.Equal(t, State(4), Failed)
}
