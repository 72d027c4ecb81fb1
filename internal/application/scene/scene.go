// Package scene defines the Scene interface the ebiten loop delegates to.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. game.Game forwards Update and Draw to
// the current scene and switches when Update returns a successor.
type Scene interface {
	// Update advances the scene by one frame of dt seconds.
	// A non-nil next replaces this scene; an error stops the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced or the game ends.
	// Recordings and watchers are released here.
	OnExit()
}
