package system

import (
	"github.com/younwookim/sidecore/internal/application/state"
	"github.com/younwookim/sidecore/internal/domain/entity"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
)

// MotionSource is the controller state the sprite selection depends on
type MotionSource interface {
	Moving() bool
	Attacking() bool
	Dashing() bool
	Grounded() bool
	Axis() float64
}

// SpriteFrame is the selector output for one logic tick
type SpriteFrame struct {
	Kind    state.SpriteKind
	Frame   int  // walk frame identifier, 0 unless walking
	Step    int  // position in the walk sequence
	Mirror  bool // facing left
	Visible bool
}

// AnimationStateSelector picks the sprite from controller state and a walk cycle
type AnimationStateSelector struct {
	actor  *entity.Actor
	source MotionSource
	config config.AnimationConfig

	walk      *entity.WalkCycle
	wasMoving bool
	mirror    bool
	current   SpriteFrame
}

// NewAnimationStateSelector creates a selector showing the idle sprite
func NewAnimationStateSelector(actor *entity.Actor, source MotionSource, cfg config.AnimationConfig) *AnimationStateSelector {
	cfg.Normalize()
	s := &AnimationStateSelector{
		actor:  actor,
		source: source,
		config: cfg,
		walk:   entity.NewWalkCycle(cfg.WalkSequence, cfg.WalkFPS),
		mirror: actor.Facing < 0,
	}
	s.current = SpriteFrame{Kind: state.SpriteIdle, Mirror: s.mirror, Visible: actor.Visible}
	return s
}

// Current returns the last selected frame
func (s *AnimationStateSelector) Current() SpriteFrame {
	return s.current
}

// OnLogicTick selects this tick's sprite. Must run after the movement controller.
func (s *AnimationStateSelector) OnLogicTick(dt float64) {
	if s.source.Attacking() {
		s.current = SpriteFrame{
			Kind:    state.SpriteAttack,
			Step:    s.walk.Index(),
			Mirror:  s.mirror,
			Visible: s.actor.Visible,
		}
		return
	}

	if axis := s.source.Axis(); s.source.Moving() && axis != 0 {
		s.mirror = axis < 0
	}

	moving := s.source.Moving()
	if moving && !s.wasMoving {
		s.walk.Restart()
	}
	s.wasMoving = moving

	f := SpriteFrame{Mirror: s.mirror, Visible: s.actor.Visible}
	if moving {
		s.walk.Advance(dt)
		f.Kind = state.SpriteWalk
		f.Frame = s.walk.Frame()
	} else {
		s.walk.Restart()
		f.Kind = state.SpriteIdle
	}
	f.Step = s.walk.Index()

	switch {
	case s.config.DashSprite && s.source.Dashing():
		f.Kind = state.SpriteDash
		f.Frame = 0
	case s.config.AirborneSprite && !s.source.Grounded():
		f.Kind = state.SpriteAirborne
		f.Frame = 0
	}
	s.current = f
}
