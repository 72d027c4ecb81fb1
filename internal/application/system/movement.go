package system

import (
	"math"

	"github.com/younwookim/sidecore/internal/domain/entity"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
)

// risingThreshold is the upward speed above which a ground overlap is ignored,
// so the tick right after a jump does not count as standing
const risingThreshold = 0.1

// MovementConfig bundles the tuning a movement controller is built from
type MovementConfig struct {
	Movement    config.MovementConfig
	Jump        config.JumpConfig
	Dash        config.DashConfig
	Attack      config.AttackConfig
	GroundCheck config.GroundCheckConfig
}

// MovementController turns input into velocity intents for one actor.
// Decisions are made in OnLogicTick and written to the actor in OnPhysicsTick.
type MovementController struct {
	actor   *entity.Actor
	clock   *entity.Clock
	physics Physics
	input   InputSource
	config  MovementConfig

	invulnerability Invulnerability
	pool            *entity.DashChargePool

	enabled  bool
	grounded bool
	moving   bool
	axis     float64

	timers entity.MovementTimers
	attack entity.AttackState

	dashing       bool
	dashDir       int
	dashDeadline  float64
	gravityBackup float64

	move        *MoveIntent
	pendingJump *JumpIntent
}

// NewMovementController creates an enabled controller.
// physics and input may be nil; the actor is then never grounded or idle.
func NewMovementController(actor *entity.Actor, clock *entity.Clock, physics Physics, input InputSource, cfg MovementConfig) *MovementController {
	cfg.Movement.Normalize()
	cfg.Jump.Normalize()
	cfg.Dash.Normalize()
	cfg.Attack.Normalize()

	m := &MovementController{
		actor:   actor,
		clock:   clock,
		physics: physics,
		input:   input,
		config:  cfg,
		enabled: true,
		timers:  entity.NewMovementTimers(cfg.Jump.ExtraAirJumps),
	}
	if cfg.Dash.Enabled {
		m.pool = entity.NewDashChargePool(cfg.Dash.Slots)
	}
	return m
}

// SetInput replaces the input source
func (m *MovementController) SetInput(input InputSource) {
	m.input = input
}

// SetInvulnerability sets the collaborator made invulnerable while dashing
func (m *MovementController) SetInvulnerability(inv Invulnerability) {
	m.invulnerability = inv
}

// SetEnabled turns the controller on or off. Disabling cancels any dash,
// attack and buffered jump; enabling starts from spawn-time state.
func (m *MovementController) SetEnabled(enabled bool) {
	if m.enabled == enabled {
		return
	}
	m.enabled = enabled
	m.clear()
	if enabled && m.pool != nil {
		m.pool.Reset()
	}
}

// Reset drops any dash, attack, buffered jump and pending intent and refills
// the dash pool. The enabled flag is left alone; respawns call it.
func (m *MovementController) Reset() {
	m.clear()
	if m.pool != nil {
		m.pool.Reset()
	}
}

func (m *MovementController) clear() {
	if m.dashing {
		m.endDash()
	}
	m.attack.Cancel()
	m.move = nil
	m.pendingJump = nil
	m.moving = false
	m.axis = 0
	m.timers.Reset()
}

// Enabled reports whether the controller is running
func (m *MovementController) Enabled() bool { return m.enabled }

// Grounded reports the last ground check result
func (m *MovementController) Grounded() bool { return m.grounded }

// Moving reports whether horizontal input was held on the last tick
func (m *MovementController) Moving() bool { return m.moving }

// Axis returns the last horizontal input
func (m *MovementController) Axis() float64 { return m.axis }

// Attacking reports whether the attack window is open
func (m *MovementController) Attacking() bool { return m.attack.Active }

// Dashing reports whether a dash is in progress
func (m *MovementController) Dashing() bool { return m.dashing }

// Timers returns a copy of the jump bookkeeping
func (m *MovementController) Timers() entity.MovementTimers { return m.timers }

// DashPool returns the dash charges, nil when dashing is disabled
func (m *MovementController) DashPool() *entity.DashChargePool { return m.pool }

// AttackHitbox returns the attack volume in world space while attacking
func (m *MovementController) AttackHitbox() (entity.Rect, bool) {
	if !m.attack.Active {
		return entity.Rect{}, false
	}
	hb := entity.Hitbox{
		OffsetX: m.config.Attack.Hitbox.OffsetX,
		OffsetY: m.config.Attack.Hitbox.OffsetY,
		Width:   m.config.Attack.Hitbox.Width,
		Height:  m.config.Attack.Hitbox.Height,
	}
	if hb.IsZero() {
		return entity.Rect{}, false
	}
	return hb.WorldRect(m.actor.Position, m.actor.Facing), true
}

// OnLogicTick samples input and decides this tick's intents
func (m *MovementController) OnLogicTick(dt float64) {
	if !m.enabled {
		return
	}
	now := m.clock.Now()

	var in InputState
	if m.input != nil {
		in = m.input.Sample().Clamp()
	}
	m.axis = in.Axis

	m.updateGrounded(now)

	if m.pool != nil {
		m.pool.Refill(now)
	}
	if m.dashing && now >= m.dashDeadline {
		m.endDash()
	}

	if in.JumpPressed {
		m.timers.RequestJump(now)
	}

	attacking := m.attack.Update(now)
	if in.AttackPressed && !attacking {
		attacking = m.attack.Start(now, m.config.Attack.Duration)
	}

	dir := m.inputDir(in.Axis)
	if in.DashPressed && !m.dashing {
		m.tryDash(now, dir)
	}
	m.moving = dir != 0

	if m.dashing {
		m.move = nil
		return
	}

	if !attacking && dir != 0 {
		m.actor.SetFacing(dir)
	}

	m.evaluateJump(now)

	if attacking && m.config.Movement.Model == config.ModelInstant {
		m.move = nil
		return
	}
	m.move = &MoveIntent{VX: m.horizontal(in.Axis, dir, dt)}
}

// OnPhysicsTick writes the pending intents to the actor
func (m *MovementController) OnPhysicsTick(fixedDt float64) {
	if !m.enabled {
		return
	}
	if m.dashing {
		DashIntent{Direction: m.dashDir, Speed: m.config.Dash.Speed}.Apply(m.actor)
		return
	}
	if m.move != nil {
		m.move.Apply(m.actor)
	}
	if m.pendingJump != nil {
		m.pendingJump.Apply(m.actor)
		m.pendingJump = nil
	}
}

func (m *MovementController) updateGrounded(now float64) {
	feet := m.actor.Position.Sub(entity.Vec2{Y: m.config.GroundCheck.OffsetY})
	grounded := overlapAt(m.physics, feet, m.config.GroundCheck.Radius, GroundMask)
	if grounded && m.actor.Velocity.Y > risingThreshold {
		grounded = false
	}

	if grounded {
		if !m.grounded {
			m.timers.Land()
		}
		m.timers.LastGroundedTime = now
	}
	m.grounded = grounded
}

func (m *MovementController) evaluateJump(now float64) {
	if !m.timers.Buffered(now, m.config.Jump.JumpBuffer) {
		return
	}
	coyote := m.timers.InCoyote(now, m.config.Jump.CoyoteTime)
	if !coyote && m.timers.AirJumpsRemaining <= 0 {
		return
	}
	if !coyote {
		m.timers.ConsumeAirJump()
	}
	m.timers.ClearJumpRequest()
	m.timers.LastGroundedTime = entity.Never
	m.pendingJump = &JumpIntent{Force: m.config.Jump.Force}
}

func (m *MovementController) tryDash(now float64, dir int) {
	if m.pool == nil {
		return
	}
	if _, ok := m.pool.Consume(now, m.config.Dash.Cooldown, m.config.Dash.Stagger); !ok {
		return
	}
	if dir == 0 {
		dir = m.actor.Facing
	}
	m.actor.SetFacing(dir)

	m.dashing = true
	m.dashDir = dir
	m.dashDeadline = now + m.config.Dash.Duration
	m.gravityBackup = m.actor.GravityScale
	m.actor.GravityScale = 0
	m.pendingJump = nil
	if m.invulnerability != nil {
		m.invulnerability.SetInvulnerable(true)
	}
}

func (m *MovementController) endDash() {
	m.dashing = false
	m.actor.GravityScale = m.gravityBackup
	if m.invulnerability != nil {
		m.invulnerability.SetInvulnerable(false)
	}
}

func (m *MovementController) inputDir(axis float64) int {
	if math.Abs(axis) <= m.config.Movement.InputDeadzone {
		return 0
	}
	return entity.Sign(axis)
}

// horizontal returns the next horizontal velocity for the configured model
func (m *MovementController) horizontal(axis float64, dir int, dt float64) float64 {
	mv := m.config.Movement
	if mv.Model == config.ModelInstant {
		return float64(dir) * mv.MoveSpeed
	}

	vx := m.actor.Velocity.X
	target := 0.0
	if dir != 0 {
		target = axis * mv.MoveSpeed
	}

	var rate float64
	if target != 0 {
		rate = mv.Acceleration
		if vx != 0 && entity.Sign(vx) != entity.Sign(target) {
			rate *= mv.TurnaroundMultiplier
		}
	} else {
		rate = mv.Deceleration
	}
	if !m.grounded {
		rate *= mv.AirControlMultiplier
	}
	return approach(vx, target, rate*dt)
}
