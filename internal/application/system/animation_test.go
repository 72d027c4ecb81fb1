package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sidecore/internal/application/state"
	"github.com/younwookim/sidecore/internal/domain/entity"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
)

// fakeMotion is a MotionSource driven directly by the test
type fakeMotion struct {
	moving, attacking, dashing, grounded bool
	axis                                 float64
}

func (f *fakeMotion) Moving() bool    { return f.moving }
func (f *fakeMotion) Attacking() bool { return f.attacking }
func (f *fakeMotion) Dashing() bool   { return f.dashing }
func (f *fakeMotion) Grounded() bool  { return f.grounded }
func (f *fakeMotion) Axis() float64   { return f.axis }

func (f *fakeMotion) hold(axis float64) {
	f.axis = axis
	f.moving = axis != 0
}

func createTestAnimationConfig() config.AnimationConfig {
	return config.AnimationConfig{
		WalkFPS:      8,
		WalkSequence: []int{1, 2, 3, 2, 1, 4, 3, 2, 1},
	}
}

func newTestSelector(cfg config.AnimationConfig) (*AnimationStateSelector, *fakeMotion, *entity.Actor) {
	actor := entity.NewActor(1, entity.Vec2{}, entity.Vec2{X: 1, Y: 1})
	motion := &fakeMotion{grounded: true}
	return NewAnimationStateSelector(actor, motion, cfg), motion, actor
}

func TestAnimationStateSelector_Idle(t *testing.T) {
	s, _, _ := newTestSelector(createTestAnimationConfig())

	s.OnLogicTick(testDt)
	f := s.Current()
	assert.Equal(t, state.SpriteIdle, f.Kind)
	assert.Equal(t, 0, f.Step)
	assert.True(t, f.Visible)
}

func TestAnimationStateSelector_WalkNineEighths(t *testing.T) {
	s, motion, _ := newTestSelector(createTestAnimationConfig())
	s.OnLogicTick(testDt)

	motion.hold(1)
	changes := 0
	prevStep := s.Current().Step
	for i := 0; i < 72; i++ { // 72 * 1/64 = 9/8 s
		s.OnLogicTick(testDt)
		f := s.Current()
		require.Equal(t, state.SpriteWalk, f.Kind)
		if f.Step != prevStep {
			changes++
			prevStep = f.Step
		}
	}

	assert.Equal(t, 9, changes)
	assert.Equal(t, 1, s.Current().Frame)
}

func TestAnimationStateSelector_RestartsGaitOnStart(t *testing.T) {
	s, motion, _ := newTestSelector(createTestAnimationConfig())

	motion.hold(1)
	for i := 0; i < 20; i++ {
		s.OnLogicTick(testDt)
	}
	require.NotEqual(t, 0, s.Current().Step)

	motion.hold(0)
	s.OnLogicTick(testDt)
	assert.Equal(t, state.SpriteIdle, s.Current().Kind)
	assert.Equal(t, 0, s.Current().Step)

	motion.hold(-1)
	s.OnLogicTick(testDt)
	f := s.Current()
	assert.Equal(t, state.SpriteWalk, f.Kind)
	assert.Equal(t, 0, f.Step)
	assert.Equal(t, 1, f.Frame)
	assert.True(t, f.Mirror)
}

func TestAnimationStateSelector_AttackPriority(t *testing.T) {
	cfg := createTestAnimationConfig()
	cfg.AirborneSprite = true
	cfg.DashSprite = true
	s, motion, _ := newTestSelector(cfg)

	motion.hold(1)
	s.OnLogicTick(testDt)
	motion.attacking = true
	motion.dashing = true
	motion.grounded = false

	for i := 0; i < 30; i++ {
		motion.hold(-1)
		s.OnLogicTick(testDt)
		f := s.Current()
		assert.Equal(t, state.SpriteAttack, f.Kind)
		assert.False(t, f.Mirror, "mirror frozen during the attack")
	}
}

func TestAnimationStateSelector_OptionalSprites(t *testing.T) {
	tests := []struct {
		name     string
		airborne bool
		dash     bool
		dashing  bool
		grounded bool
		want     state.SpriteKind
	}{
		{"airborne enabled", true, false, false, false, state.SpriteAirborne},
		{"airborne disabled", false, false, false, false, state.SpriteWalk},
		{"dash enabled", false, true, true, true, state.SpriteDash},
		{"dash beats airborne", true, true, true, false, state.SpriteDash},
		{"dash disabled", false, false, true, true, state.SpriteWalk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := createTestAnimationConfig()
			cfg.AirborneSprite = tt.airborne
			cfg.DashSprite = tt.dash
			s, motion, _ := newTestSelector(cfg)
			motion.hold(1)
			motion.dashing = tt.dashing
			motion.grounded = tt.grounded

			s.OnLogicTick(testDt)
			assert.Equal(t, tt.want, s.Current().Kind)
		})
	}
}

func TestAnimationStateSelector_VisibilityFollowsActor(t *testing.T) {
	s, _, actor := newTestSelector(createTestAnimationConfig())
	actor.Visible = false
	s.OnLogicTick(testDt)
	assert.False(t, s.Current().Visible)
}

func TestAnimationStateSelector_ClampsFPS(t *testing.T) {
	cfg := createTestAnimationConfig()
	cfg.WalkFPS = 0
	s, motion, _ := newTestSelector(cfg)
	motion.hold(1)

	for i := 0; i < 63; i++ {
		s.OnLogicTick(testDt)
	}
	assert.Equal(t, 0, s.Current().Step, "one frame per second at the floor")
	s.OnLogicTick(testDt)
	assert.Equal(t, 1, s.Current().Step)
}
