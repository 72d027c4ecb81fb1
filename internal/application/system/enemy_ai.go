package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/sidecore/internal/application/state"
	"github.com/younwookim/sidecore/internal/domain/entity"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
)

// EnemyAIController drives an enemy actor through Patrol, Idle and Chase.
// State changes happen in OnLogicTick, velocity is written in OnPhysicsTick.
type EnemyAIController struct {
	actor   *entity.Actor
	clock   *entity.Clock
	physics Physics
	rng     *rand.Rand
	config  config.AIConfig
	target  *entity.Actor

	enabled bool
	state   state.AIState

	lastFlipTime float64
	lastFlipPos  entity.Vec2

	idleScheduled bool
	idleAt        float64 // Patrol -> Idle
	idleUntil     float64 // Idle -> Patrol

	// OnStateChange is called after every transition
	OnStateChange func(from, to state.AIState)
}

// NewEnemyAIController creates a patrolling controller. When a target is
// given the enemy starts out facing it.
func NewEnemyAIController(actor *entity.Actor, clock *entity.Clock, physics Physics, rng *rand.Rand, target *entity.Actor, cfg config.AIConfig) *EnemyAIController {
	cfg.Normalize()
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	c := &EnemyAIController{
		actor:        actor,
		clock:        clock,
		physics:      physics,
		rng:          rng,
		config:       cfg,
		target:       target,
		enabled:      true,
		state:        state.AIPatrol,
		lastFlipTime: entity.Never,
		lastFlipPos:  actor.Position,
	}
	if target != nil {
		if target.Position.X >= actor.Position.X {
			actor.SetFacing(1)
		} else {
			actor.SetFacing(-1)
		}
	}
	c.startSchedule(clock.Now())
	return c
}

// SetTarget replaces the chased actor. nil leaves the enemy patrolling.
func (c *EnemyAIController) SetTarget(target *entity.Actor) {
	c.target = target
}

// State returns the current AI state
func (c *EnemyAIController) State() state.AIState { return c.state }

// Enabled reports whether AI evaluation is running
func (c *EnemyAIController) Enabled() bool { return c.enabled }

// LastFlipTime returns the clock time of the last facing flip
func (c *EnemyAIController) LastFlipTime() float64 { return c.lastFlipTime }

// IdleScheduled reports whether the idle scheduler is running
func (c *EnemyAIController) IdleScheduled() bool { return c.idleScheduled }

// SetEnabled suspends or resumes the AI. Disabling freezes horizontal motion
// and cancels the idle schedule; enabling resumes in Patrol.
func (c *EnemyAIController) SetEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	c.enabled = enabled
	if !enabled {
		c.actor.Velocity.X = 0
		c.cancelSchedule()
		return
	}
	c.setState(state.AIPatrol)
	c.lastFlipPos = c.actor.Position
	c.startSchedule(c.clock.Now())
}

// Reset puts the AI back in Patrol from the current position, restarting
// the idle schedule if the AI is running
func (c *EnemyAIController) Reset() {
	c.cancelSchedule()
	c.setState(state.AIPatrol)
	c.lastFlipPos = c.actor.Position
	if c.enabled {
		c.startSchedule(c.clock.Now())
	}
}

// OnLogicTick evaluates the chase range and the idle schedule
func (c *EnemyAIController) OnLogicTick(dt float64) {
	if !c.enabled {
		return
	}
	now := c.clock.Now()

	if c.target != nil {
		if c.actor.Position.Dist(c.target.Position) <= c.config.ChaseRange {
			if c.state != state.AIChase {
				c.idleScheduled = false
				c.setState(state.AIChase)
			}
			return
		}
	}
	if c.state == state.AIChase {
		c.setState(state.AIPatrol)
		c.startSchedule(now)
	}

	c.updateSchedule(now)
}

// OnPhysicsTick writes this state's velocity and runs the flip checks
func (c *EnemyAIController) OnPhysicsTick(fixedDt float64) {
	if !c.enabled {
		return
	}
	now := c.clock.Now()

	switch c.state {
	case state.AIPatrol:
		c.patrolStep(now)
	case state.AIIdle:
		c.actor.Velocity.X = 0
	case state.AIChase:
		c.chaseStep(now)
	}
}

// OnContact flips on a side-on hit against ground geometry
func (c *EnemyAIController) OnContact(contact Contact) {
	if !c.enabled || !GroundMask.Has(contact.Layer) || !contact.Side() {
		return
	}
	now := c.clock.Now()
	if c.canFlip(now, true) {
		c.flip(now)
	}
}

func (c *EnemyAIController) patrolStep(now float64) {
	dir := c.actor.Facing
	c.actor.Velocity.X = float64(dir) * c.config.PatrolSpeed

	if c.physics == nil {
		return
	}
	noGround := !c.groundAhead(dir)
	wall := c.wallAhead(dir)
	if (noGround || wall) && c.canFlip(now, true) {
		c.flip(now)
	}
}

func (c *EnemyAIController) chaseStep(now float64) {
	if c.target == nil {
		c.setState(state.AIPatrol)
		c.startSchedule(now)
		return
	}
	chaseDir := 1
	if c.target.Position.X-c.actor.Position.X < 0 {
		chaseDir = -1
	}
	c.actor.Velocity.X = float64(chaseDir) * c.config.ChaseSpeed

	if chaseDir != c.actor.Facing && c.canFlip(now, false) {
		c.flip(now)
	}
}

// groundAhead casts a ray downward just in front of the body.
// A disabled ground check reports ground.
func (c *EnemyAIController) groundAhead(dir int) bool {
	if c.config.GroundCheckDown <= 0 {
		return true
	}
	origin := c.actor.Position.Add(entity.Vec2{X: float64(dir) * c.config.GroundCheckForward})
	_, hit := raycast(c.physics, origin, entity.Vec2{Y: -1}, c.config.GroundCheckDown, GroundMask)
	return hit
}

func (c *EnemyAIController) wallAhead(dir int) bool {
	_, hit := raycast(c.physics, c.actor.Position, entity.Vec2{X: float64(dir)}, c.config.WallCheckDistance, GroundMask)
	return hit
}

func (c *EnemyAIController) canFlip(now float64, travelGuard bool) bool {
	if now-c.lastFlipTime < c.config.FlipCooldown {
		return false
	}
	if travelGuard && math.Abs(c.actor.Position.X-c.lastFlipPos.X) < c.config.MinTravelBeforeFlip {
		return false
	}
	return true
}

func (c *EnemyAIController) flip(now float64) {
	c.actor.Flip()
	c.lastFlipTime = now
	c.lastFlipPos = c.actor.Position
}

func (c *EnemyAIController) setState(s state.AIState) {
	if c.state == s {
		return
	}
	from := c.state
	c.state = s
	if c.OnStateChange != nil {
		c.OnStateChange(from, s)
	}
}

func (c *EnemyAIController) startSchedule(now float64) {
	if c.config.DisableIdle {
		c.idleScheduled = false
		return
	}
	c.idleScheduled = true
	c.idleAt = now + c.uniform(c.config.IdleIntervalMin, c.config.IdleIntervalMax)
}

func (c *EnemyAIController) cancelSchedule() {
	c.idleScheduled = false
	if c.state == state.AIIdle {
		c.setState(state.AIPatrol)
	}
}

func (c *EnemyAIController) updateSchedule(now float64) {
	if !c.idleScheduled {
		return
	}
	switch c.state {
	case state.AIPatrol:
		if now >= c.idleAt {
			c.setState(state.AIIdle)
			c.idleUntil = now + c.uniform(c.config.IdleDurationMin, c.config.IdleDurationMax)
		}
	case state.AIIdle:
		if now >= c.idleUntil {
			c.setState(state.AIPatrol)
			c.idleAt = now + c.uniform(c.config.IdleIntervalMin, c.config.IdleIntervalMax)
		}
	}
}

func (c *EnemyAIController) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + c.rng.Float64()*(hi-lo)
}
