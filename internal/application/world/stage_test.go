package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sidecore/internal/domain/entity"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
	"github.com/younwookim/sidecore/internal/infrastructure/physics"
)

func loadDemo(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadAll("demo")
	require.NoError(t, err)
	return cfg
}

func TestLoadStage(t *testing.T) {
	cfg := loadDemo(t)
	b := newFakeBackend()

	w, err := LoadStage(cfg.Tuning, cfg.Stage, b, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	require.NotNil(t, w.Player())
	assert.Equal(t, entity.Vec2{X: 2.5, Y: 2.6}, w.Player().Actor.Position)
	assert.Len(t, w.Enemies(), len(cfg.Stage.Enemies))
	assert.Len(t, w.Platforms(), len(cfg.Stage.Platforms))
	assert.NotEmpty(t, b.statics)
	assert.Len(t, w.Solids(), len(b.statics))
	assert.NotEmpty(t, w.Hazards())

	for _, e := range w.Enemies() {
		assert.Equal(t, "slime", e.Kind)
	}
	assert.Equal(t, -1, w.Enemies()[1].Actor.Facing)
}

func TestLoadStage_Errors(t *testing.T) {
	cfg := loadDemo(t)

	_, err := LoadStage(cfg.Tuning, nil, nil, nil)
	require.Error(t, err)

	stage := *cfg.Stage
	stage.Enemies = []config.EnemySpawnConfig{{Type: "ghost", X: 1, Y: 1, Facing: 1}}
	_, err = LoadStage(cfg.Tuning, &stage, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestLoadStage_SettlesOnGround(t *testing.T) {
	cfg := loadDemo(t)
	space := physics.NewSpace(cfg.Tuning.Physics.Gravity, cfg.Tuning.Physics.Iterations)

	w, err := LoadStage(cfg.Tuning, cfg.Stage, space, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	dt := cfg.Tuning.Physics.FixedStep
	for i := 0; i < 120; i++ {
		w.OnLogicTick(dt)
		w.OnPhysicsTick(dt)
	}

	p := w.Player()
	assert.InDelta(t, 2.5, p.Actor.Position.Y, 0.15, "standing on the floor")
	assert.True(t, p.Movement.Grounded())
	assert.True(t, p.Health.Alive())
	assert.Equal(t, p.Health.MaxHP(), p.Health.HP())

	for _, e := range w.Enemies() {
		assert.Greater(t, e.Actor.Position.Y, 2.0)
		assert.True(t, e.Health.Alive())
	}
}
