package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-platformer/systems"
)

// KeyboardControls maps held keys to movement directions
type KeyboardControls struct {
	bindings map[ebiten.Key]systems.Direction
}

// NewKeyboardControls creates controls bound to the arrow keys and WASD
func NewKeyboardControls() *KeyboardControls {
	return &KeyboardControls{bindings: DefaultBindings()}
}

// DefaultBindings returns the default key to direction map
func DefaultBindings() map[ebiten.Key]systems.Direction {
	return map[ebiten.Key]systems.Direction{
		ebiten.KeyArrowUp:    systems.DirUp,
		ebiten.KeyArrowDown:  systems.DirDown,
		ebiten.KeyArrowLeft:  systems.DirLeft,
		ebiten.KeyArrowRight: systems.DirRight,
		ebiten.KeyW:          systems.DirUp,
		ebiten.KeyS:          systems.DirDown,
		ebiten.KeyA:          systems.DirLeft,
		ebiten.KeyD:          systems.DirRight,
	}
}

// Held reports whether any key bound to dir is pressed
func (c *KeyboardControls) Held(dir systems.Direction) bool {
	for key, bound := range c.bindings {
		if bound == dir && ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
