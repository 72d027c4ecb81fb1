package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadTuning(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")
	assert.Equal(t, "../../../cmd/game/configs", loader.BasePath())

	cfg, err := loader.LoadTuning()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Display.ScreenWidth)
	assert.Equal(t, -30.0, cfg.Physics.Gravity)
	assert.InDelta(t, 1.0/60.0, cfg.Physics.FixedStep, 1e-9)
	assert.Equal(t, ModelAccelerated, cfg.Player.Movement.Model)
	assert.Equal(t, 0.1, cfg.Player.Jump.CoyoteTime)
	assert.Equal(t, 2, cfg.Player.Dash.Slots)
	assert.Equal(t, 8.0, cfg.Player.Animation.WalkFPS)
	assert.Equal(t, []int{1, 2, 3, 2, 1, 4, 3, 2, 1}, cfg.Player.Animation.WalkSequence)
	assert.Equal(t, 3, cfg.Player.Health.MaxHP)
	assert.True(t, cfg.Player.Health.InstantRespawn)

	slime, ok := cfg.Enemies["slime"]
	require.True(t, ok)
	assert.Equal(t, 5.0, slime.AI.ChaseRange)
	assert.Equal(t, 1, slime.ContactDamage)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Equal(t, 1.0, cfg.TileSize)
	assert.Equal(t, 2.5, cfg.PlayerSpawn.X)
	assert.Len(t, cfg.Layers.Collision, 12)
	require.Len(t, cfg.Platforms, 1)
	assert.Equal(t, 2.5, cfg.Platforms[0].Speed)
	require.Len(t, cfg.Enemies, 2)
	assert.Equal(t, -1, cfg.Enemies[1].Facing)

	wall, ok := cfg.TileMapping["#"]
	require.True(t, ok)
	assert.True(t, wall.Solid)
	assert.Equal(t, TileWall, wall.Type)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll("demo")
	require.NoError(t, err)

	assert.NotNil(t, cfg.Tuning)
	assert.NotNil(t, cfg.Stage)
}

func TestLoader_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"tuning.json":       {Data: []byte(`{"physics": {`)},
		"stages/bad.yaml":   {Data: []byte("id: [unterminated")},
		"stages/ghost.yaml": {Data: []byte("enemies:\n  - { type: ghost, x: 1, y: 1 }\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadTuning()
	assert.ErrorContains(t, err, "failed to parse tuning.json")

	_, err = loader.LoadStage("missing")
	assert.ErrorContains(t, err, "failed to read stage missing")

	_, err = loader.LoadStage("bad")
	assert.ErrorContains(t, err, "failed to parse stage bad")

	fsys["tuning.json"] = &fstest.MapFile{Data: []byte(`{"enemies": {"slime": {}}}`)}
	_, err = loader.LoadAll("ghost")
	assert.ErrorContains(t, err, `unknown enemy type "ghost"`)
}

func TestLoader_StageIDDefaultsToName(t *testing.T) {
	fsys := fstest.MapFS{
		"stages/plain.yaml": {Data: []byte("name: Plain\n")},
	}
	cfg, err := NewFSLoader(fsys, "mem").LoadStage("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", cfg.ID)
	assert.Equal(t, 1.0, cfg.TileSize)
}
