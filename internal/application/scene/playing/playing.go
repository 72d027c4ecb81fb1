// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/sidecore/internal/application/game"
	"github.com/younwookim/sidecore/internal/application/replay"
	"github.com/younwookim/sidecore/internal/application/scene"
	"github.com/younwookim/sidecore/internal/application/state"
	"github.com/younwookim/sidecore/internal/application/system"
	"github.com/younwookim/sidecore/internal/application/world"
	"github.com/younwookim/sidecore/internal/domain/entity"
	"github.com/younwookim/sidecore/internal/infrastructure/config"
	"github.com/younwookim/sidecore/internal/infrastructure/physics"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorHazard   = color.RGBA{200, 50, 50, 255}
	colorPlatform = color.RGBA{120, 120, 160, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorDash     = color.RGBA{150, 230, 255, 255}
	colorAttack   = color.RGBA{255, 230, 120, 160}
	colorEnemy    = color.RGBA{200, 100, 100, 255}
	colorChase    = color.RGBA{255, 60, 60, 255}
	colorIdle     = color.RGBA{150, 110, 110, 255}
	colorFacing   = color.RGBA{255, 255, 255, 200}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 128}
)

// Options configures a Playing scene
type Options struct {
	Loader     *config.Loader
	Stage      string
	Seed       int64
	RecordPath string             // empty disables recording
	Replay     *replay.ReplayData // plays back instead of reading Input
	Watcher    *config.Watcher    // optional hot reload
	Input      system.InputSource // nil reads the keyboard
}

// Playing is the main gameplay scene
type Playing struct {
	loader    *config.Loader
	stageName string
	cfg       *config.GameConfig
	seed      int64
	watcher   *config.Watcher

	world  *world.World
	driver *game.Driver
	state  state.GameState

	source     system.InputSource
	recorder   *replay.Recorder
	recordPath string
	replayer   *replay.Replayer

	screenW, screenH int
	ppu              float64
	bounds           entity.Rect
	camX, camY       float64
}

// New loads the stage and builds a fresh world for it
func New(opts Options) (*Playing, error) {
	if opts.Loader == nil {
		return nil, fmt.Errorf("playing scene needs a config loader")
	}
	cfg, err := opts.Loader.LoadAll(opts.Stage)
	if err != nil {
		return nil, err
	}

	p := &Playing{
		loader:     opts.Loader,
		stageName:  opts.Stage,
		cfg:        cfg,
		seed:       opts.Seed,
		watcher:    opts.Watcher,
		source:     opts.Input,
		recordPath: opts.RecordPath,
	}
	if p.source == nil {
		p.source = KeyboardInput{}
	}
	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		p.seed = p.replayer.Seed()
		log.Printf("Replaying %d frames (seed: %d)", p.replayer.TotalFrames(), p.seed)
	}

	if err := p.build(); err != nil {
		return nil, err
	}
	if p.recorder != nil {
		log.Printf("Recording enabled: %s (seed: %d)", p.recordPath, p.seed)
	}
	return p, nil
}

// build creates the physics space, the world and the tick driver from p.cfg
func (p *Playing) build() error {
	t := p.cfg.Tuning
	space := physics.NewSpace(t.Physics.Gravity, t.Physics.Iterations)
	w, err := world.LoadStage(t, p.cfg.Stage, space, rand.New(rand.NewSource(p.seed)))
	if err != nil {
		return fmt.Errorf("failed to build stage %s: %w", p.stageName, err)
	}

	var input system.InputSource = p.source
	switch {
	case p.replayer != nil:
		p.replayer.Reset()
		input = p.replayer
	case p.recordPath != "":
		p.recorder = replay.NewRecorder(p.source, p.seed, p.stageName)
		input = p.recorder
	}
	w.SetInput(input)

	p.world = w
	p.driver = game.NewDriver(w, t.Physics.FixedStep, t.Physics.MaxSteps)
	p.state = state.StatePlaying
	p.screenW = t.Display.ScreenWidth
	p.screenH = t.Display.ScreenHeight
	p.ppu = t.Display.PixelsPerUnit

	p.bounds = entity.Rect{}
	for _, r := range w.Solids() {
		p.bounds = p.bounds.Union(r)
	}
	p.updateCamera()
	return nil
}

// World returns the running simulation
func (p *Playing) World() *world.World { return p.world }

// State returns the run state
func (p *Playing) State() state.GameState { return p.state }

// Recorder returns the active recorder, nil when not recording
func (p *Playing) Recorder() *replay.Recorder { return p.recorder }

// Camera returns the bottom-left corner of the view in world units
func (p *Playing) Camera() entity.Vec2 { return entity.Vec2{X: p.camX, Y: p.camY} }

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.checkReload()

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	switch p.state {
	case state.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePaused
			return nil, nil
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			return nil, p.restart()
		}
		p.Step(dt)
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case state.StateReplayDone:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			return nil, p.restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

// Step advances the simulation by one frame of dt seconds
func (p *Playing) Step(dt float64) {
	if p.state != state.StatePlaying {
		return
	}
	p.driver.Advance(dt)
	p.updateCamera()

	if p.replayer != nil && p.replayer.Done() {
		p.state = state.StateReplayDone
		log.Printf("Replay finished after %d frames", p.replayer.TotalFrames())
	}
}

// SetPaused pauses or resumes a running simulation
func (p *Playing) SetPaused(paused bool) {
	switch {
	case paused && p.state == state.StatePlaying:
		p.state = state.StatePaused
	case !paused && p.state == state.StatePaused:
		p.state = state.StatePlaying
	}
}

// restart rebuilds the world from the current config.
// A recording in progress is saved first.
func (p *Playing) restart() error {
	if p.recorder != nil && p.recorder.FrameCount() > 0 {
		p.saveRecording()
	}
	if err := p.build(); err != nil {
		return err
	}
	log.Printf("Restarted stage %s", p.stageName)
	return nil
}

// checkReload applies config edits picked up by the watcher.
// A config that fails to load keeps the current run going.
func (p *Playing) checkReload() {
	if p.watcher == nil {
		return
	}
	changed := p.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	log.Printf("Config changed: %v", changed)

	cfg, err := p.loader.LoadAll(p.stageName)
	if err != nil {
		log.Printf("Config reload failed, keeping current: %v", err)
		return
	}
	prev := p.cfg
	p.cfg = cfg
	if err := p.restart(); err != nil {
		log.Printf("Config reload failed, keeping current: %v", err)
		p.cfg = prev
	}
}

func (p *Playing) saveRecording() {
	if err := p.recorder.Save(p.recordPath); err != nil {
		log.Printf("Failed to save recording: %v", err)
		return
	}
	log.Printf("Recording saved: %s (%d frames)", p.recordPath, p.recorder.FrameCount())
}

// updateCamera centers the view on the player, clamped to the stage
func (p *Playing) updateCamera() {
	player := p.world.Player()
	if player == nil || p.ppu <= 0 {
		return
	}
	viewW := float64(p.screenW) / p.ppu
	viewH := float64(p.screenH) / p.ppu

	p.camX = clampView(player.Actor.Position.X-viewW/2, p.bounds.X, p.bounds.Width, viewW)
	p.camY = clampView(player.Actor.Position.Y-viewH/2, p.bounds.Y, p.bounds.Height, viewH)
}

// clampView keeps [pos, pos+view] inside [lo, lo+extent].
// A stage smaller than the view is centered.
func clampView(pos, lo, extent, view float64) float64 {
	if extent <= view {
		return lo + (extent-view)/2
	}
	return math.Max(lo, math.Min(pos, lo+extent-view))
}

// toScreen converts a world box into screen pixels, flipping Y
func (p *Playing) toScreen(r entity.Rect) (x, y, w, h float64) {
	x = (r.X - p.camX) * p.ppu
	y = float64(p.screenH) - (r.Y+r.Height-p.camY)*p.ppu
	return x, y, r.Width * p.ppu, r.Height * p.ppu
}

func (p *Playing) drawRect(screen *ebiten.Image, r entity.Rect, c color.Color) {
	x, y, w, h := p.toScreen(r)
	ebitenutil.DrawRect(screen, x, y, w, h, c)
}

// Draw renders the game (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	for _, r := range p.world.Solids() {
		p.drawRect(screen, r, colorWall)
	}
	for _, r := range p.world.Hazards() {
		p.drawRect(screen, r, colorHazard)
	}
	for _, mp := range p.world.Platforms() {
		p.drawRect(screen, mp.Actor().Bounds(), colorPlatform)
	}
	p.drawEnemies(screen)
	p.drawPlayer(screen)
	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\nESC to resume")
	case state.StateReplayDone:
		p.drawOverlay(screen, "REPLAY DONE\nR to watch again")
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	player := p.world.Player()
	if player == nil {
		return
	}
	frame := player.Animation.Current()
	if !frame.Visible {
		return
	}

	c := colorPlayer
	if frame.Kind == state.SpriteDash {
		c = colorDash
	}
	p.drawRect(screen, player.Actor.Bounds(), c)
	p.drawFacing(screen, player.Actor)

	if box, ok := player.Movement.AttackHitbox(); ok {
		p.drawRect(screen, box, colorAttack)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image) {
	for _, e := range p.world.Enemies() {
		if !e.Actor.Visible {
			continue
		}
		c := colorEnemy
		switch e.AI.State() {
		case state.AIChase:
			c = colorChase
		case state.AIIdle:
			c = colorIdle
		}
		p.drawRect(screen, e.Actor.Bounds(), c)
		p.drawFacing(screen, e.Actor)
	}
}

// drawFacing marks the side an actor is looking toward
func (p *Playing) drawFacing(screen *ebiten.Image, a *entity.Actor) {
	b := a.Bounds()
	mark := entity.Rect{X: b.X + b.Width - 0.2, Y: b.Y + b.Height*0.6, Width: 0.2, Height: 0.2}
	if !a.FacingRight() {
		mark.X = b.X
	}
	p.drawRect(screen, mark, colorFacing)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	player := p.world.Player()
	if player == nil {
		return
	}

	// Health bar
	barX, barY, barW, barH := 10.0, float64(p.screenH)-20, 100.0, 8.0
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	ratio := 0.0
	if maxHP := player.Health.MaxHP(); maxHP > 0 {
		ratio = float64(player.Health.HP()) / float64(maxHP)
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*ratio, barH, colorHealthFG)

	pool := player.Movement.DashPool()
	frame := player.Animation.Current()
	debugText := fmt.Sprintf("HP: %d/%d  Dash: %d/%d\nSprite: %s %d  Phase: %s\nT: %.2f",
		player.Health.HP(), player.Health.MaxHP(),
		pool.Available(), pool.Size(),
		frame.Kind, frame.Frame, player.Health.Phase(),
		p.world.Clock().Now())
	if p.recorder != nil {
		debugText += fmt.Sprintf("\nREC %d (F5 save)", p.recorder.FrameCount())
	}
	if p.replayer != nil {
		debugText += fmt.Sprintf("\nREPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	ebitenutil.DebugPrint(screen, debugText)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when the scene becomes active
func (p *Playing) OnEnter() {
	log.Printf("Entering stage %s", p.stageName)
}

// OnExit saves any recording in progress and stops watching configs
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.FrameCount() > 0 {
		p.recorder.Stop()
		p.saveRecording()
	}
	if p.watcher != nil {
		if err := p.watcher.Close(); err != nil {
			log.Printf("Failed to close config watcher: %v", err)
		}
	}
}
