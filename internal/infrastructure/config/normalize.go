package config

import "strings"

// Minimum values applied by Normalize
const (
	DefaultFixedStep = 1.0 / 60.0
	DefaultMaxSteps  = 5
	MinWalkFPS       = 1.0
)

// Normalize clamps invalid values to the nearest valid ones.
// It never fails; a zero config becomes a usable one.
func (c *TuningConfig) Normalize() {
	if c.Physics.FixedStep <= 0 {
		c.Physics.FixedStep = DefaultFixedStep
	}
	if c.Physics.MaxSteps < 1 {
		c.Physics.MaxSteps = DefaultMaxSteps
	}
	if c.Physics.Iterations < 1 {
		c.Physics.Iterations = 10
	}
	nonNegInt(&c.Physics.HazardDamage)
	if c.Display.PixelsPerUnit <= 0 {
		c.Display.PixelsPerUnit = 16
	}

	c.Player.Normalize()
	for id, e := range c.Enemies {
		e.Normalize()
		if e.ID == "" {
			e.ID = id
		}
		c.Enemies[id] = e
	}
}

// Normalize clamps the player tuning
func (p *PlayerConfig) Normalize() {
	p.Size.normalize()
	if p.Mass <= 0 {
		p.Mass = 1
	}
	p.Movement.Normalize()
	p.Jump.Normalize()
	p.Dash.Normalize()
	p.Attack.Normalize()
	p.Animation.Normalize()
	p.Health.Normalize()
	nonNeg(&p.GroundCheck.OffsetY)
	nonNeg(&p.GroundCheck.Radius)
}

// Normalize clamps the enemy tuning
func (e *EnemyConfig) Normalize() {
	e.Size.normalize()
	if e.Mass <= 0 {
		e.Mass = 1
	}
	nonNegInt(&e.ContactDamage)
	e.Health.Normalize()
	e.AI.Normalize()
}

// Normalize resolves the model name and clamps rates
func (m *MovementConfig) Normalize() {
	m.Model = strings.ToLower(strings.TrimSpace(m.Model))
	if m.Model != ModelAccelerated {
		m.Model = ModelInstant
	}
	nonNeg(&m.MoveSpeed)
	nonNeg(&m.Acceleration)
	nonNeg(&m.Deceleration)
	if m.AirControlMultiplier <= 0 {
		m.AirControlMultiplier = 1
	}
	if m.TurnaroundMultiplier <= 0 {
		m.TurnaroundMultiplier = 1
	}
	if m.InputDeadzone <= 0 {
		m.InputDeadzone = 0.01
	}
}

// Normalize clamps forces and grace windows to non-negative values
func (j *JumpConfig) Normalize() {
	nonNeg(&j.Force)
	nonNeg(&j.CoyoteTime)
	nonNeg(&j.JumpBuffer)
	nonNegInt(&j.ExtraAirJumps)
}

// Normalize keeps at least one dash slot and clamps its timing
func (d *DashConfig) Normalize() {
	if d.Slots < 1 {
		d.Slots = 1
	}
	nonNeg(&d.Speed)
	nonNeg(&d.Duration)
	nonNeg(&d.Cooldown)
	nonNeg(&d.Stagger)
}

// Normalize clamps the attack duration and damage
func (a *AttackConfig) Normalize() {
	nonNeg(&a.Duration)
	nonNegInt(&a.Damage)
}

// Normalize raises the walk frame rate to MinWalkFPS
func (a *AnimationConfig) Normalize() {
	if a.WalkFPS < MinWalkFPS {
		a.WalkFPS = MinWalkFPS
	}
}

// Normalize clamps hit points and respawn timing
func (h *HealthConfig) Normalize() {
	if h.MaxHP < 1 {
		h.MaxHP = 1
	}
	nonNeg(&h.InvulnerabilityTime)
	nonNeg(&h.FlashInterval)
	nonNeg(&h.DeathFreezeDelay)
	nonNegInt(&h.DeathShakeCount)
	nonNeg(&h.DeathShakeSpeed)
	nonNeg(&h.DeathShakeInterval)
	nonNeg(&h.RespawnDelay)
}

// Normalize clamps ranges and speeds and orders the idle intervals
func (a *AIConfig) Normalize() {
	nonNeg(&a.PatrolSpeed)
	nonNeg(&a.ChaseSpeed)
	nonNeg(&a.ChaseRange)
	nonNeg(&a.IdleIntervalMin)
	nonNeg(&a.IdleIntervalMax)
	nonNeg(&a.IdleDurationMin)
	nonNeg(&a.IdleDurationMax)
	if a.IdleIntervalMin > a.IdleIntervalMax {
		a.IdleIntervalMin, a.IdleIntervalMax = a.IdleIntervalMax, a.IdleIntervalMin
	}
	if a.IdleDurationMin > a.IdleDurationMax {
		a.IdleDurationMin, a.IdleDurationMax = a.IdleDurationMax, a.IdleDurationMin
	}
	nonNeg(&a.FlipCooldown)
	nonNeg(&a.MinTravelBeforeFlip)
	nonNeg(&a.GroundCheckForward)
	nonNeg(&a.GroundCheckDown)
	nonNeg(&a.WallCheckDistance)
}

// Normalize fills defaults the stage file may omit
func (s *StageConfig) Normalize() {
	if s.TileSize <= 0 {
		s.TileSize = 1
	}
	for i := range s.Platforms {
		p := &s.Platforms[i]
		nonNeg(&p.Speed)
		if p.Width <= 0 {
			p.Width = 1
		}
		if p.Height <= 0 {
			p.Height = 0.25
		}
	}
	for i := range s.Enemies {
		if s.Enemies[i].Facing >= 0 {
			s.Enemies[i].Facing = 1
		} else {
			s.Enemies[i].Facing = -1
		}
	}
}

func (s *SizeConfig) normalize() {
	if s.Width <= 0 {
		s.Width = 1
	}
	if s.Height <= 0 {
		s.Height = 1
	}
}

func nonNeg(v *float64) {
	if *v < 0 {
		*v = 0
	}
}

func nonNegInt(v *int) {
	if *v < 0 {
		*v = 0
	}
}
