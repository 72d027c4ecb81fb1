package config

// StageConfig is the root config for stage YAML files.
// Positions are world units with Y up.
type StageConfig struct {
	ID          string                       `yaml:"id"`
	Name        string                       `yaml:"name"`
	TileSize    float64                      `yaml:"tileSize"`
	PlayerSpawn PositionConfig               `yaml:"playerSpawn"`
	Layers      LayersConfig                 `yaml:"layers"`
	TileMapping map[string]TileMappingConfig `yaml:"tileMapping"`
	Solids      []RectConfig                 `yaml:"solids"`
	Hazards     []RectConfig                 `yaml:"hazards"`
	Platforms   []PlatformConfig             `yaml:"platforms"`
	Enemies     []EnemySpawnConfig           `yaml:"enemies"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LayersConfig holds ASCII tile rows, top row first
type LayersConfig struct {
	Collision []string `yaml:"collision"`
}

type TileMappingConfig struct {
	Type  string `yaml:"type"` // "wall" or "hazard"
	Solid bool   `yaml:"solid"`
}

// Tile types
const (
	TileWall   = "wall"
	TileHazard = "hazard"
)

type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type PlatformConfig struct {
	From   PositionConfig `yaml:"from"`
	To     PositionConfig `yaml:"to"`
	Width  float64        `yaml:"width"`
	Height float64        `yaml:"height"`
	Speed  float64        `yaml:"speed"`
}

type EnemySpawnConfig struct {
	Type   string  `yaml:"type"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Facing int     `yaml:"facing"`
}

// TileRects converts the collision layer into world rectangles.
// Rows run top to bottom, so row 0 sits highest. Adjacent tiles of the same
// kind in a row are merged into one rectangle.
func (s *StageConfig) TileRects() (solids, hazards []RectConfig) {
	if s.TileSize <= 0 || len(s.Layers.Collision) == 0 {
		return nil, nil
	}
	rows := len(s.Layers.Collision)
	for r, line := range s.Layers.Collision {
		y := float64(rows-1-r) * s.TileSize
		runStart := -1
		runKind := ""
		flush := func(end int) {
			if runStart < 0 {
				return
			}
			rect := RectConfig{
				X: float64(runStart) * s.TileSize,
				Y: y,
				W: float64(end-runStart) * s.TileSize,
				H: s.TileSize,
			}
			if runKind == TileHazard {
				hazards = append(hazards, rect)
			} else {
				solids = append(solids, rect)
			}
			runStart = -1
			runKind = ""
		}
		for c, ch := range []byte(line) {
			kind := s.tileKind(ch)
			if kind != runKind {
				flush(c)
				if kind != "" {
					runStart = c
					runKind = kind
				}
			}
		}
		flush(len(line))
	}
	return solids, hazards
}

func (s *StageConfig) tileKind(ch byte) string {
	m, ok := s.TileMapping[string(ch)]
	if !ok {
		return ""
	}
	if m.Type == TileHazard {
		return TileHazard
	}
	if m.Solid {
		return TileWall
	}
	return ""
}
