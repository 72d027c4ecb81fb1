package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/sidecore/internal/application/system"
)

// Key bindings
var (
	keysLeft   = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	keysRight  = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	keysJump   = []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ, ebiten.KeyArrowUp}
	keysAttack = []ebiten.Key{ebiten.KeyX, ebiten.KeyJ}
	keysDash   = []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight, ebiten.KeyC}
)

// KeyboardInput samples the keyboard once per logic tick.
// Implements system.InputSource.
type KeyboardInput struct{}

// Sample reads held direction keys and freshly pressed action keys
func (KeyboardInput) Sample() system.InputState {
	var axis float64
	if anyPressed(keysLeft) {
		axis--
	}
	if anyPressed(keysRight) {
		axis++
	}
	return system.InputState{
		Axis:          axis,
		JumpPressed:   anyJustPressed(keysJump),
		AttackPressed: anyJustPressed(keysAttack),
		DashPressed:   anyJustPressed(keysDash),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
