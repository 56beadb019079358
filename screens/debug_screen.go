package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-platformer/components"
	"ebiten-platformer/ecs"
	"ebiten-platformer/systems"
)

const (
	debugLineHeight = 16
	debugMargin     = 4
	debugMessages   = 5
)

// DebugScreen shows frame rate, positions and recent messages over the game
type DebugScreen struct {
	world        *ecs.World
	cameraSystem *systems.CameraSystem
	messageLog   *systems.MessageLog
	background   color.Color
	lineImage    *ebiten.Image
}

// NewDebugScreen creates a new debug overlay
func NewDebugScreen(world *ecs.World, cameraSystem *systems.CameraSystem, messageLog *systems.MessageLog) *DebugScreen {
	return &DebugScreen{
		world:        world,
		cameraSystem: cameraSystem,
		messageLog:   messageLog,
		background:   color.RGBA{0, 0, 0, 180},
	}
}

// Update closes the overlay on Esc
func (s *DebugScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}
	return nil
}

// Lines returns the status lines shown at the top of the overlay
func (s *DebugScreen) Lines() []string {
	lines := []string{fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())}

	if entity, ok := s.world.FirstWithTag(components.TagLevel); ok {
		if lvl, ok := ecs.Get[*components.LevelComponent](s.world, entity.ID, components.LevelMap); ok {
			lines = append(lines, fmt.Sprintf("%s %dx%d", lvl.Name, lvl.Level.Width(), lvl.Level.Height()))
		}
	}
	if entity, ok := s.world.FirstWithTag(components.TagPlayer); ok {
		if pos, ok := ecs.Get[*components.PositionComponent](s.world, entity.ID, components.Position); ok {
			lines = append(lines, fmt.Sprintf("Player %.2f,%.2f", pos.X, pos.Y))
		}
	}
	if view, ok := s.cameraSystem.Viewport(s.world); ok {
		lines = append(lines, fmt.Sprintf("View %d,%d %dx%d", view.OffsetX, view.OffsetY, view.Cols, view.Rows))
	}
	return lines
}

// Draw renders the overlay
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	lines := s.Lines()
	var messages []systems.ColoredMessage
	if s.messageLog != nil {
		messages = s.messageLog.RecentMessages(debugMessages)
	}

	width := screen.Bounds().Dx()
	height := (len(lines)+len(messages))*debugLineHeight + 2*debugMargin
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), s.background, false)

	y := debugMargin
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, debugMargin, y)
		y += debugLineHeight
	}

	if s.lineImage == nil || s.lineImage.Bounds().Dx() != width {
		s.lineImage = ebiten.NewImage(width, debugLineHeight)
	}
	for _, msg := range messages {
		s.lineImage.Clear()
		ebitenutil.DebugPrintAt(s.lineImage, msg.Text, debugMargin, 0)

		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleWithColor(msg.GetColor())
		op.GeoM.Translate(0, float64(y))
		screen.DrawImage(s.lineImage, op)
		y += debugLineHeight
	}
}
