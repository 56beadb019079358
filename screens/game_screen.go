package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-platformer/ecs"
	"ebiten-platformer/render"
	"ebiten-platformer/systems"
)

// GameScreen runs the world and draws it, with an optional debug overlay
type GameScreen struct {
	world        *ecs.World
	renderSystem *render.RenderSystem
	cameraSystem *systems.CameraSystem
	messageLog   *systems.MessageLog
	overlays     *ScreenStack
	dt           float64
}

// NewGameScreen creates the main gameplay screen. dt is the fixed step per Update.
func NewGameScreen(
	world *ecs.World,
	renderSystem *render.RenderSystem,
	cameraSystem *systems.CameraSystem,
	messageLog *systems.MessageLog,
	dt float64,
) *GameScreen {
	return &GameScreen{
		world:        world,
		renderSystem: renderSystem,
		cameraSystem: cameraSystem,
		messageLog:   messageLog,
		overlays:     NewScreenStack(),
		dt:           dt,
	}
}

// ToggleDebug shows or hides the debug overlay
func (s *GameScreen) ToggleDebug() {
	if s.overlays.Peek() != nil {
		s.overlays.Pop()
		return
	}
	s.overlays.Push(NewDebugScreen(s.world, s.cameraSystem, s.messageLog))
}

// Update handles input and advances the world by one step
func (s *GameScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.ToggleDebug()
	}

	// Esc closes the overlay first, then quits
	if s.overlays.Len() == 0 && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if err := s.overlays.Update(); err != nil {
		return err
	}

	s.world.Update(s.dt)
	return nil
}

// Draw draws the game world and any overlay on top
func (s *GameScreen) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(s.world, screen)
	s.overlays.Draw(screen)
}
