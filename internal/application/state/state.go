package state

// AIState is the enemy behaviour state
type AIState int

const (
	AIPatrol AIState = iota
	AIIdle
	AIChase
)

// String returns the string representation of the AI state
func (s AIState) String() string {
	switch s {
	case AIPatrol:
		return "Patrol"
	case AIIdle:
		return "Idle"
	case AIChase:
		return "Chase"
	default:
		return "Unknown"
	}
}

// LifePhase is the stage of the health model's death/respawn timeline
type LifePhase int

const (
	PhaseAlive LifePhase = iota
	PhaseLaunched
	PhaseShaking
	PhaseRespawning
)

// String returns the string representation of the life phase
func (p LifePhase) String() string {
	switch p {
	case PhaseAlive:
		return "Alive"
	case PhaseLaunched:
		return "Launched"
	case PhaseShaking:
		return "Shaking"
	case PhaseRespawning:
		return "Respawning"
	default:
		return "Unknown"
	}
}

// Dying reports whether the phase is part of the death sequence
func (p LifePhase) Dying() bool {
	return p != PhaseAlive
}

// SpriteKind selects which sprite family is displayed
type SpriteKind int

const (
	SpriteIdle SpriteKind = iota
	SpriteWalk
	SpriteAttack
	SpriteAirborne
	SpriteDash
)

// String returns the string representation of the sprite kind
func (k SpriteKind) String() string {
	switch k {
	case SpriteIdle:
		return "Idle"
	case SpriteWalk:
		return "Walk"
	case SpriteAttack:
		return "Attack"
	case SpriteAirborne:
		return "Airborne"
	case SpriteDash:
		return "Dash"
	default:
		return "Unknown"
	}
}

// GameState is the playing scene's run state
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateReplayDone
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateReplayDone:
		return "ReplayDone"
	default:
		return "Unknown"
	}
}
