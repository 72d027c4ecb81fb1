package world

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/younwookim/sidecore/internal/application/system"
	"github.com/younwookim/sidecore/internal/domain/entity"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
)

// Backend is the collision world the registry drives.
// physics.Space implements it.
type Backend interface {
	system.Physics
	AddStatic(rect entity.Rect, layer entity.Layer)
	AddBody(actor *entity.Actor, layer entity.Layer, kind system.BodyKind)
	RemoveBody(id entity.EntityID)
	SetCarrier(id entity.EntityID, v entity.Vec2)
	Step(fixedDt float64, listener system.ContactListener)
}

// Player groups the controllers attached to the player actor
type Player struct {
	Actor     *entity.Actor
	Movement  *system.MovementController
	Animation *system.AnimationStateSelector
	Health    *system.CombatHealthModel
	Ride      *system.PlatformRideTracker
}

// Enemy groups the controllers attached to one enemy actor
type Enemy struct {
	Kind    string
	Actor   *entity.Actor
	AI      *system.EnemyAIController
	Health  *system.CombatHealthModel
	Ride    *system.PlatformRideTracker
	Contact system.ContactDamage
}

// World is the entity registry. It owns the clock, hands out entity IDs
// and runs every controller in a fixed order each tick.
type World struct {
	nextID  entity.EntityID
	clock   *entity.Clock
	backend Backend
	rng     *rand.Rand
	tuning  config.TuningConfig
	input   system.InputSource
	sampled system.InputState

	player    *Player
	enemies   []*Enemy
	platforms []*system.MovingPlatform
	solids    []entity.Rect
	hazards   []entity.Rect

	killPlane    float64
	hasKillPlane bool
}

// New creates an empty world. backend may be nil for a world without
// collisions; rng seeds enemy idle scheduling.
func New(tuning *config.TuningConfig, backend Backend, rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	w := &World{
		nextID:  1, // 0 is NoEntity
		clock:   entity.NewClock(0),
		backend: backend,
		rng:     rng,
	}
	if tuning != nil {
		w.tuning = *tuning
		w.tuning.Enemies = make(map[string]config.EnemyConfig, len(tuning.Enemies))
		for k, v := range tuning.Enemies {
			w.tuning.Enemies[k] = v
		}
	}
	w.tuning.Normalize()
	return w
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() entity.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Clock returns the simulation clock
func (w *World) Clock() *entity.Clock { return w.clock }

// Tuning returns the normalized tuning the world was built with
func (w *World) Tuning() *config.TuningConfig { return &w.tuning }

// Player returns the player, nil if none was spawned
func (w *World) Player() *Player { return w.player }

// Enemies returns the live enemies in spawn order
func (w *World) Enemies() []*Enemy { return w.enemies }

// Platforms returns the moving platforms in spawn order
func (w *World) Platforms() []*system.MovingPlatform { return w.platforms }

// Solids returns the static ground geometry
func (w *World) Solids() []entity.Rect { return w.solids }

// Hazards returns the hazard regions
func (w *World) Hazards() []entity.Rect { return w.hazards }

// SetInput sets the player input source
func (w *World) SetInput(input system.InputSource) {
	w.input = input
}

// SetKillPlane respawns or kills anything that falls below y
func (w *World) SetKillPlane(y float64) {
	w.killPlane = y
	w.hasKillPlane = true
}

// poll reads the input source exactly once per logic tick, even while the
// player is dead, so recordings stay aligned with ticks
func (w *World) poll() {
	w.sampled = system.InputState{}
	if w.input != nil {
		w.sampled = w.input.Sample()
	}
}

// sample returns this tick's polled input
func (w *World) sample() system.InputState {
	return w.sampled
}

// AddSolid adds static ground geometry
func (w *World) AddSolid(rect entity.Rect) {
	w.solids = append(w.solids, rect)
	if w.backend != nil {
		w.backend.AddStatic(rect, entity.LayerGround)
	}
}

// AddHazard adds a region that resets the player and hurts enemies
func (w *World) AddHazard(rect entity.Rect) {
	w.hazards = append(w.hazards, rect)
}

// SpawnPlayer creates the player at pos. A second call replaces the first player.
func (w *World) SpawnPlayer(pos entity.Vec2) *Player {
	if w.player != nil {
		w.Despawn(w.player.Actor.ID)
	}
	cfg := w.tuning.Player

	actor := entity.NewActor(w.NewEntity(), pos, entity.Vec2{X: cfg.Size.Width, Y: cfg.Size.Height})
	actor.Mass = cfg.Mass

	movement := system.NewMovementController(actor, w.clock, w.physics(), system.InputFunc(w.sample), system.MovementConfig{
		Movement:    cfg.Movement,
		Jump:        cfg.Jump,
		Dash:        cfg.Dash,
		Attack:      cfg.Attack,
		GroundCheck: cfg.GroundCheck,
	})
	health := system.NewCombatHealthModel(actor, w.clock, cfg.Health)
	health.SetController(movement)
	movement.SetInvulnerability(health)

	p := &Player{
		Actor:     actor,
		Movement:  movement,
		Animation: system.NewAnimationStateSelector(actor, movement, cfg.Animation),
		Health:    health,
		Ride:      system.NewPlatformRideTracker(w),
	}
	id := actor.ID
	health.OnDeath = func() { log.Printf("World: player %d died", id) }
	health.OnRespawn = func() {
		p.Ride.Reset()
		log.Printf("World: player %d respawned", id)
	}

	if w.backend != nil {
		w.backend.AddBody(actor, entity.LayerPlayer, system.BodyDynamic)
	}
	for _, e := range w.enemies {
		e.AI.SetTarget(actor)
	}
	w.player = p
	log.Printf("World: spawned player %d at (%.2f, %.2f)", id, pos.X, pos.Y)
	return p
}

// SpawnEnemy creates an enemy of the configured kind at pos facing dir
func (w *World) SpawnEnemy(kind string, pos entity.Vec2, facing int) (*Enemy, error) {
	cfg, ok := w.tuning.Enemies[kind]
	if !ok {
		return nil, fmt.Errorf("unknown enemy type %q", kind)
	}

	actor := entity.NewActor(w.NewEntity(), pos, entity.Vec2{X: cfg.Size.Width, Y: cfg.Size.Height})
	actor.Mass = cfg.Mass
	actor.SetFacing(facing)

	var target *entity.Actor
	if w.player != nil {
		target = w.player.Actor
	}
	ai := system.NewEnemyAIController(actor, w.clock, w.physics(), w.rng, target, cfg.AI)
	health := system.NewCombatHealthModel(actor, w.clock, cfg.Health)
	health.SetController(ai)

	e := &Enemy{
		Kind:    kind,
		Actor:   actor,
		AI:      ai,
		Health:  health,
		Ride:    system.NewPlatformRideTracker(w),
		Contact: system.ContactDamage{Damage: cfg.ContactDamage},
	}
	id := actor.ID
	health.OnDeath = func() { log.Printf("World: %s %d died", kind, id) }
	health.OnRespawn = func() { e.Ride.Reset() }

	if w.backend != nil {
		w.backend.AddBody(actor, entity.LayerEnemy, system.BodyDynamic)
	}
	w.enemies = append(w.enemies, e)
	log.Printf("World: spawned %s %d at (%.2f, %.2f)", kind, id, pos.X, pos.Y)
	return e, nil
}

// AddPlatform creates a kinematic platform moving between from and to
func (w *World) AddPlatform(from, to entity.Vec2, size entity.Vec2, speed float64) *system.MovingPlatform {
	actor := entity.NewActor(w.NewEntity(), from, size)
	p := system.NewMovingPlatform(actor, from, to, speed)
	if w.backend != nil {
		w.backend.AddBody(actor, entity.LayerPlatform, system.BodyKinematic)
	}
	w.platforms = append(w.platforms, p)
	return p
}

// Despawn removes an entity. Riders of a despawned platform drop the ride on
// their next physics tick.
func (w *World) Despawn(id entity.EntityID) bool {
	found := false
	if w.player != nil && w.player.Actor.ID == id {
		w.player = nil
		for _, e := range w.enemies {
			e.AI.SetTarget(nil)
		}
		found = true
	}
	for i, e := range w.enemies {
		if e.Actor.ID == id {
			w.enemies = append(w.enemies[:i], w.enemies[i+1:]...)
			found = true
			break
		}
	}
	for i, p := range w.platforms {
		if p.ID() == id {
			w.platforms = append(w.platforms[:i], w.platforms[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false
	}
	if w.backend != nil {
		w.backend.RemoveBody(id)
	}
	log.Printf("World: despawned %d", id)
	return true
}

// PlatformVelocity resolves a platform handle. Unknown handles report false.
func (w *World) PlatformVelocity(id entity.EntityID) (entity.Vec2, bool) {
	if p := w.platform(id); p != nil {
		return p.Velocity(), true
	}
	return entity.Vec2{}, false
}

func (w *World) platform(id entity.EntityID) *system.MovingPlatform {
	for _, p := range w.platforms {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

func (w *World) enemy(id entity.EntityID) *Enemy {
	for _, e := range w.enemies {
		if e.Actor.ID == id {
			return e
		}
	}
	return nil
}

// physics returns the backend as a query surface, nil when there is none
func (w *World) physics() system.Physics {
	if w.backend == nil {
		return nil
	}
	return w.backend
}
