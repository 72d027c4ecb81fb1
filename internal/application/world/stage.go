package world

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/younwookim/sidecore/internal/domain/entity"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
)

// killPlaneDepth is how many tiles below the stage floor the kill plane sits
const killPlaneDepth = 4

// LoadStage builds a world from tuning and a stage layout: tile geometry,
// extra solids and hazards, moving platforms, enemies, then the player.
func LoadStage(tuning *config.TuningConfig, stage *config.StageConfig, backend Backend, rng *rand.Rand) (*World, error) {
	if stage == nil {
		return nil, fmt.Errorf("failed to load stage: nil stage")
	}
	w := New(tuning, backend, rng)

	tileSolids, tileHazards := stage.TileRects()
	for _, r := range append(tileSolids, stage.Solids...) {
		w.AddSolid(toRect(r))
	}
	for _, r := range append(tileHazards, stage.Hazards...) {
		w.AddHazard(toRect(r))
	}

	for _, p := range stage.Platforms {
		w.AddPlatform(toVec(p.From), toVec(p.To), entity.Vec2{X: p.Width, Y: p.Height}, p.Speed)
	}

	for i, e := range stage.Enemies {
		if _, err := w.SpawnEnemy(e.Type, entity.Vec2{X: e.X, Y: e.Y}, e.Facing); err != nil {
			return nil, fmt.Errorf("failed to spawn enemy %d in stage %s: %w", i, stage.ID, err)
		}
	}

	w.SpawnPlayer(toVec(stage.PlayerSpawn))

	tile := stage.TileSize
	if tile <= 0 {
		tile = 1
	}
	w.SetKillPlane(-killPlaneDepth * tile)

	log.Printf("World: loaded stage %s (%d solids, %d hazards, %d platforms, %d enemies)",
		stage.ID, len(tileSolids)+len(stage.Solids), len(w.hazards), len(w.platforms), len(w.enemies))
	return w, nil
}

func toRect(r config.RectConfig) entity.Rect {
	return entity.Rect{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

func toVec(p config.PositionConfig) entity.Vec2 {
	return entity.Vec2{X: p.X, Y: p.Y}
}
