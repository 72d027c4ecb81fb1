package playing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sidecore/internal/application/replay"
	"github.com/younwookim/sidecore/internal/application/scene"
	"github.com/younwookim/sidecore/internal/application/state"
	"github.com/younwookim/sidecore/internal/application/system"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
)

const testDt = 1.0 / 60.0

func createTestLoader() *config.Loader {
	return config.NewLoader("../../../../cmd/game/configs")
}

func holdRight() system.InputSource {
	return system.InputFunc(func() system.InputState {
		return system.InputState{Axis: 1}
	})
}

func createTestPlaying(t *testing.T, opts Options) *Playing {
	t.Helper()
	if opts.Loader == nil {
		opts.Loader = createTestLoader()
	}
	if opts.Stage == "" {
		opts.Stage = "demo"
	}
	if opts.Input == nil {
		opts.Input = holdRight()
	}
	p, err := New(opts)
	require.NoError(t, err)
	return p
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p := createTestPlaying(t, Options{Seed: 1})

	require.NotNil(t, p.World())
	require.NotNil(t, p.World().Player())
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Nil(t, p.Recorder())
	assert.Equal(t, 640, p.screenW)
	assert.Equal(t, 16.0, p.ppu)
	assert.Greater(t, p.bounds.Width, 0.0)
}

func TestNewPlaying_Errors(t *testing.T) {
	_, err := New(Options{Stage: "demo"})
	require.Error(t, err)

	_, err = New(Options{Loader: createTestLoader(), Stage: "missing"})
	require.Error(t, err)
}

func TestPlaying_StepMovesPlayer(t *testing.T) {
	p := createTestPlaying(t, Options{Seed: 1})
	start := p.World().Player().Actor.Position.X

	for i := 0; i < 60; i++ {
		p.Step(testDt)
	}
	assert.Greater(t, p.World().Player().Actor.Position.X, start)
	assert.InDelta(t, 1.0, p.World().Clock().Now(), 1e-6)
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p := createTestPlaying(t, Options{Seed: 1})

	next, err := p.Update(testDt)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Greater(t, p.World().Clock().Now(), 0.0)
}

func TestPlaying_Paused(t *testing.T) {
	p := createTestPlaying(t, Options{Seed: 1})

	p.SetPaused(true)
	assert.Equal(t, state.StatePaused, p.State())
	p.Step(testDt)
	_, err := p.Update(testDt)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.World().Clock().Now())

	p.SetPaused(false)
	assert.Equal(t, state.StatePlaying, p.State())
	p.Step(testDt)
	assert.Greater(t, p.World().Clock().Now(), 0.0)
}

func TestPlaying_CameraStaysInStage(t *testing.T) {
	p := createTestPlaying(t, Options{Seed: 1})

	for i := 0; i < 240; i++ {
		p.Step(testDt)
		cam := p.Camera()
		viewW := float64(p.screenW) / p.ppu
		if p.bounds.Width > viewW {
			assert.GreaterOrEqual(t, cam.X, p.bounds.X)
			assert.LessOrEqual(t, cam.X+viewW, p.bounds.X+p.bounds.Width+1e-9)
		}
	}
}

func TestClampView(t *testing.T) {
	tests := []struct {
		name                  string
		pos, lo, extent, view float64
		expected              float64
	}{
		{"inside", 5, 0, 20, 10, 5},
		{"before start", -3, 0, 20, 10, 0},
		{"past end", 15, 0, 20, 10, 10},
		{"stage smaller than view", 3, 0, 6, 10, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, clampView(tt.pos, tt.lo, tt.extent, tt.view))
		})
	}
}

func TestPlaying_WithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p := createTestPlaying(t, Options{Seed: 9, RecordPath: path})
	require.NotNil(t, p.Recorder())

	for i := 0; i < 10; i++ {
		p.Step(testDt)
	}
	assert.Equal(t, 10, p.Recorder().FrameCount())

	p.OnExit()
	assert.False(t, p.Recorder().IsRecording())

	data, err := replay.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(9), data.Seed)
	assert.Equal(t, "demo", data.Stage)
	assert.Len(t, data.Frames, 10)
	assert.Equal(t, 1.0, data.Frames[0].X)
}

func TestPlaying_OnExitWithoutFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p := createTestPlaying(t, Options{Seed: 9, RecordPath: path})

	p.OnEnter()
	p.OnExit()
	_, err := replay.Load(path)
	assert.Error(t, err)
}

func TestPlaying_ReplayDone(t *testing.T) {
	data := replay.CreateTestReplayData(5, 1)
	data.Stage = "demo"
	p := createTestPlaying(t, Options{Replay: &data})

	assert.Equal(t, data.Seed, p.seed)
	for i := 0; i < 4; i++ {
		p.Step(testDt)
		assert.Equal(t, state.StatePlaying, p.State())
	}
	p.Step(testDt)
	assert.Equal(t, state.StateReplayDone, p.State())

	clock := p.World().Clock().Now()
	p.Step(testDt)
	assert.Equal(t, clock, p.World().Clock().Now())
}

func TestPlaying_Restart(t *testing.T) {
	p := createTestPlaying(t, Options{Seed: 1})
	for i := 0; i < 30; i++ {
		p.Step(testDt)
	}
	first := p.World()

	require.NoError(t, p.restart())
	assert.NotSame(t, first, p.World())
	assert.Equal(t, 0.0, p.World().Clock().Now())
	assert.Equal(t, state.StatePlaying, p.State())
}
