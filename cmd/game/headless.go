package main

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/sidecore/internal/application/game"
	"github.com/younwookim/sidecore/internal/application/replay"
	"github.com/younwookim/sidecore/internal/application/world"
	"github.com/younwookim/sidecore/internal/domain/entity"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
	"github.com/younwookim/sidecore/internal/infrastructure/physics"
)

// Summary is the end state of a headless replay
type Summary struct {
	Frames       int
	PhysicsSteps int
	Time         float64
	Player       entity.Vec2
	PlayerHP     int
	EnemiesAlive int
}

func (s Summary) String() string {
	return fmt.Sprintf("frames=%d steps=%d t=%.3f player=(%.3f, %.3f) hp=%d enemies=%d",
		s.Frames, s.PhysicsSteps, s.Time, s.Player.X, s.Player.Y, s.PlayerHP, s.EnemiesAlive)
}

// RunHeadless plays data back on stage at the fixed step, one frame per
// recorded input, and reports where everything ended up
func RunHeadless(loader *config.Loader, stage string, data replay.ReplayData) (Summary, error) {
	cfg, err := loader.LoadAll(stage)
	if err != nil {
		return Summary{}, err
	}
	t := cfg.Tuning

	space := physics.NewSpace(t.Physics.Gravity, t.Physics.Iterations)
	w, err := world.LoadStage(t, cfg.Stage, space, rand.New(rand.NewSource(data.Seed)))
	if err != nil {
		return Summary{}, fmt.Errorf("failed to build stage %s: %w", stage, err)
	}

	r := replay.NewReplayer(data)
	w.SetInput(r)
	driver := game.NewDriver(w, t.Physics.FixedStep, t.Physics.MaxSteps)

	frames := 0
	for !r.Done() {
		driver.Advance(driver.FixedDt())
		frames++
	}

	s := Summary{
		Frames:       frames,
		PhysicsSteps: driver.TotalSteps(),
		Time:         w.Clock().Now(),
	}
	if p := w.Player(); p != nil {
		s.Player = p.Actor.Position
		s.PlayerHP = p.Health.HP()
	}
	for _, e := range w.Enemies() {
		if e.Health.Alive() {
			s.EnemiesAlive++
		}
	}
	return s, nil
}
