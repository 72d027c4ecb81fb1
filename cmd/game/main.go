package main

import (
	"flag"
	"io/fs"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sidecore/internal/application/game"
	"github.com/younwookim/sidecore/internal/application/replay"
	"github.com/younwookim/sidecore/internal/application/scene/playing"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
)

const windowScale = 2

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	stageFlag := flag.String("stage", "demo", "Stage to load")
	seedFlag := flag.Int64("seed", 0, "RNG seed (default: current time)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	headless := flag.Bool("headless", false, "Run -replay without a window and print the final state")
	watch := flag.Bool("watch", false, "Reload -config files when they change")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}

	var data *replay.ReplayData
	if *replayFlag != "" {
		data, err = replay.Load(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if data.Stage != "" {
			*stageFlag = data.Stage
		}
	}

	if *headless {
		if data == nil {
			log.Fatalf("-headless needs -replay")
		}
		summary, err := RunHeadless(loader, *stageFlag, *data)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		log.Print(summary)
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := playing.Options{
		Loader:     loader,
		Stage:      *stageFlag,
		Seed:       seed,
		RecordPath: *recordFlag,
		Replay:     data,
	}
	if *watch {
		if *configDir == "" {
			log.Fatalf("-watch needs -config")
		}
		dir := loader.BasePath()
		w, err := config.NewWatcher(dir, filepath.Join(dir, "stages"))
		if err != nil {
			log.Fatalf("Failed to watch configs: %v", err)
		}
		opts.Watcher = w
	}

	scene, err := playing.New(opts)
	if err != nil {
		log.Fatalf("Failed to start stage: %v", err)
	}

	cfg, err := loader.LoadTuning()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	screenW, screenH := cfg.Display.ScreenWidth, cfg.Display.ScreenHeight
	g := game.New(scene, screenW, screenH)

	// Set up ebiten
	ebiten.SetWindowSize(screenW*windowScale, screenH*windowScale)
	ebiten.SetWindowTitle("Side Scroller")

	// Run game
	err = ebiten.RunGame(g)
	scene.OnExit()
	if err != nil {
		log.Fatal(err)
	}
}

// newLoader reads from dir, or from the embedded configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
