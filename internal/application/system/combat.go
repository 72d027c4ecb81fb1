package system

import (
	"github.com/younwookim/sidecore/internal/application/state"
	"github.com/younwookim/sidecore/internal/domain/entity"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
)

// Controllable is a controller the health model switches off while dying
// and resets on respawn
type Controllable interface {
	SetEnabled(enabled bool)
	Reset()
}

// Invulnerability is the part of the health model a dash needs
type Invulnerability interface {
	SetInvulnerable(on bool)
	IsInvulnerable() bool
}

// Damageable accepts damage from contact volumes and hazards
type Damageable interface {
	ApplyDamage(amount int) bool
}

// CombatHealthModel owns hit points, the post-hit invulnerability window and
// the death/respawn timeline of one actor.
type CombatHealthModel struct {
	actor      *entity.Actor
	clock      *entity.Clock
	config     config.HealthConfig
	controller Controllable

	health         entity.HealthState
	spawn          entity.Vec2
	defaultGravity float64

	manualInvulnerable bool
	windowActive       bool
	nextFlash          float64

	phase         state.LifePhase
	phaseDeadline float64
	shakeStep     int

	// Event callbacks
	OnDeath   func()
	OnRespawn func()
}

// NewCombatHealthModel creates a full-health model. The actor's current
// position and gravity scale become the respawn values.
func NewCombatHealthModel(actor *entity.Actor, clock *entity.Clock, cfg config.HealthConfig) *CombatHealthModel {
	cfg.Normalize()
	return &CombatHealthModel{
		actor:          actor,
		clock:          clock,
		config:         cfg,
		health:         entity.NewHealthState(cfg.MaxHP),
		spawn:          actor.Position,
		defaultGravity: actor.GravityScale,
		phase:          state.PhaseAlive,
	}
}

// SetController sets the controller disabled during the death sequence
func (m *CombatHealthModel) SetController(c Controllable) {
	m.controller = c
}

// SetSpawn moves the respawn point
func (m *CombatHealthModel) SetSpawn(p entity.Vec2) {
	m.spawn = p
}

// Spawn returns the respawn point
func (m *CombatHealthModel) Spawn() entity.Vec2 {
	return m.spawn
}

// HP returns current hit points
func (m *CombatHealthModel) HP() int { return m.health.HP }

// MaxHP returns maximum hit points
func (m *CombatHealthModel) MaxHP() int { return m.health.MaxHP }

// Phase returns the death/respawn stage
func (m *CombatHealthModel) Phase() state.LifePhase { return m.phase }

// Alive reports whether the actor is outside the death sequence
func (m *CombatHealthModel) Alive() bool { return m.phase == state.PhaseAlive }

// SetInvulnerable sets the manual invulnerability flag, used by dashes
func (m *CombatHealthModel) SetInvulnerable(on bool) {
	m.manualInvulnerable = on
}

// IsInvulnerable reports whether damage is currently ignored
func (m *CombatHealthModel) IsInvulnerable() bool {
	return m.manualInvulnerable || m.windowActive || m.phase.Dying()
}

// ApplyDamage subtracts amount and knocks the actor upward.
// Returns false when the hit was ignored.
func (m *CombatHealthModel) ApplyDamage(amount int) bool {
	if amount <= 0 || m.IsInvulnerable() {
		return false
	}

	dead := m.health.Take(amount)
	m.actor.Velocity.Y = m.config.HitKnockback

	if dead {
		m.startDeath()
	} else {
		m.startInvulnerability()
	}
	return true
}

// InstantRespawn cancels any pending stage and resets at the spawn point now.
// Only entities configured for it respond; returns false otherwise.
func (m *CombatHealthModel) InstantRespawn() bool {
	if !m.config.InstantRespawn {
		return false
	}
	m.respawn()
	return true
}

// Kill starts the death sequence regardless of invulnerability.
// Returns false if the actor is already dying.
func (m *CombatHealthModel) Kill() bool {
	if m.phase.Dying() {
		return false
	}
	m.health.HP = 0
	m.startDeath()
	return true
}

func (m *CombatHealthModel) startInvulnerability() {
	if m.config.InvulnerabilityTime <= 0 {
		return
	}
	now := m.clock.Now()
	m.windowActive = true
	m.health.Invulnerable = true
	m.health.InvulnerableDeadline = now + m.config.InvulnerabilityTime
	if m.config.FlashInterval > 0 {
		m.actor.Visible = !m.actor.Visible
		m.nextFlash = now + m.config.FlashInterval
	}
}

func (m *CombatHealthModel) endInvulnerability() {
	m.windowActive = false
	m.health.Invulnerable = false
	m.actor.Visible = true
}

func (m *CombatHealthModel) startDeath() {
	m.endInvulnerability()
	if m.controller != nil {
		m.controller.SetEnabled(false)
	}
	m.manualInvulnerable = false

	m.phase = state.PhaseLaunched
	m.phaseDeadline = m.clock.Now() + m.config.DeathFreezeDelay
	m.actor.Velocity = entity.Vec2{Y: m.config.DeathKnockback}
	m.actor.GravityScale = 0

	if m.OnDeath != nil {
		m.OnDeath()
	}
}

func (m *CombatHealthModel) respawn() {
	m.phase = state.PhaseAlive
	m.phaseDeadline = 0
	m.shakeStep = 0
	m.manualInvulnerable = false
	m.endInvulnerability()

	m.actor.Teleport(m.spawn)
	if m.controller != nil {
		m.controller.Reset()
	}
	m.actor.GravityScale = m.defaultGravity
	m.health.Restore()

	if m.controller != nil {
		m.controller.SetEnabled(true)
	}
	if m.OnRespawn != nil {
		m.OnRespawn()
	}
}

// OnLogicTick advances the flash and death stages
func (m *CombatHealthModel) OnLogicTick(dt float64) {
	now := m.clock.Now()

	if m.phase == state.PhaseAlive {
		m.updateInvulnerability(now)
		return
	}
	for m.advancePhase(now) {
	}
}

func (m *CombatHealthModel) updateInvulnerability(now float64) {
	if !m.windowActive {
		return
	}
	if now >= m.health.InvulnerableDeadline {
		m.endInvulnerability()
		return
	}
	if m.config.FlashInterval <= 0 {
		return
	}
	for now >= m.nextFlash {
		m.actor.Visible = !m.actor.Visible
		m.nextFlash += m.config.FlashInterval
	}
}

// advancePhase performs at most one stage transition whose deadline has passed
func (m *CombatHealthModel) advancePhase(now float64) bool {
	if now < m.phaseDeadline {
		return false
	}

	switch m.phase {
	case state.PhaseLaunched:
		m.actor.Velocity = entity.Vec2{}
		if m.config.DeathShakeCount > 0 && m.config.DeathShakeInterval > 0 {
			m.phase = state.PhaseShaking
			m.shakeStep = 0
			m.phaseDeadline += m.config.DeathShakeInterval
		} else {
			m.phase = state.PhaseRespawning
			m.phaseDeadline += m.config.RespawnDelay
		}
		return true
	case state.PhaseShaking:
		m.shakeStep++
		if m.shakeStep >= 2*m.config.DeathShakeCount {
			m.actor.Velocity = entity.Vec2{}
			m.phase = state.PhaseRespawning
			m.phaseDeadline += m.config.RespawnDelay
		} else {
			m.phaseDeadline += m.config.DeathShakeInterval
		}
		return true
	case state.PhaseRespawning:
		m.respawn()
		return false
	}
	return false
}

// OnPhysicsTick holds the velocity of the current death stage
func (m *CombatHealthModel) OnPhysicsTick(fixedDt float64) {
	switch m.phase {
	case state.PhaseShaking:
		dir := -1.0
		if m.shakeStep%2 == 1 {
			dir = 1
		}
		m.actor.Velocity = entity.Vec2{X: dir * m.config.DeathShakeSpeed}
	case state.PhaseRespawning:
		m.actor.Velocity = entity.Vec2{}
	}
}
