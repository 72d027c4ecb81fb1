package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAIState_String(t *testing.T) {
	tests := []struct {
		state    AIState
		expected string
	}{
		{AIPatrol, "Patrol"},
		{AIIdle, "Idle"},
		{AIChase, "Chase"},
		{AIState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestLifePhase_String(t *testing.T) {
	tests := []struct {
		phase    LifePhase
		expected string
		dying    bool
	}{
		{PhaseAlive, "Alive", false},
		{PhaseLaunched, "Launched", true},
		{PhaseShaking, "Shaking", true},
		{PhaseRespawning, "Respawning", true},
		{LifePhase(42), "Unknown", true},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
			assert.Equal(t, tt.dying, tt.phase.Dying())
		})
	}
}

func TestSpriteKind_String(t *testing.T) {
	tests := []struct {
		kind     SpriteKind
		expected string
	}{
		{SpriteIdle, "Idle"},
		{SpriteWalk, "Walk"},
		{SpriteAttack, "Attack"},
		{SpriteAirborne, "Airborne"},
		{SpriteDash, "Dash"},
		{SpriteKind(-1), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateReplayDone, "ReplayDone"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, AIState(0), AIPatrol)
	assert.Equal(t, LifePhase(0), PhaseAlive)
	assert.Equal(t, SpriteKind(0), SpriteIdle)
	assert.Equal(t, GameState(0), StatePlaying)
}
