package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-platformer/config"
	"ebiten-platformer/ecs"
	"ebiten-platformer/level"
	"ebiten-platformer/render"
	"ebiten-platformer/screens"
	"ebiten-platformer/spawners"
	"ebiten-platformer/systems"
	"ebiten-platformer/viewport"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg        config.Config
	world      *ecs.World
	screen     *screens.GameScreen
	messageLog *systems.MessageLog
	trace      *systems.TraceSystem
	logger     *log.Logger
}

// NewGame builds the world for a level. trace may be nil.
func NewGame(cfg config.Config, def *level.Definition, trace io.Writer, logger *log.Logger) (*Game, error) {
	palette, err := cfg.Palette.Parse()
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	messageLog := systems.NewMessageLog()
	messageLog.Subscribe(world)

	cols, rows := viewport.VisibleTiles(cfg.Window.Width, cfg.Window.Height, cfg.Tiles.Size, cfg.Tiles.Size)
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("screen %dx%d is smaller than one %dpx tile", cfg.Window.Width, cfg.Window.Height, cfg.Tiles.Size)
	}

	// Initialize all systems
	movementSystem := systems.NewMovementSystem(render.NewKeyboardControls())
	cameraSystem := systems.NewCameraSystem()
	renderSystem := render.NewRenderSystem(cfg.Tiles.Size, palette, cameraSystem)

	// Movement runs before the camera so the view follows this frame's position
	world.AddSystem(movementSystem)
	world.AddSystem(cameraSystem)

	var traceSystem *systems.TraceSystem
	if trace != nil {
		traceSystem = systems.NewTraceSystem(trace, cfg.Debug.TraceBatch, logger)
		world.AddSystem(traceSystem)
	}

	spawner := spawners.NewEntitySpawner(world, messageLog.Add)
	spawner.CreateLevel(def)
	player := spawner.CreatePlayer(def.Spawn.X, def.Spawn.Y, cfg.Player.Speed, palette.Player)
	spawner.CreateCamera(player.ID, cols, rows)

	world.EmitEvent(systems.LevelLoadedEvent{
		Name:   def.Name,
		Width:  def.Level.Width(),
		Height: def.Level.Height(),
	})
	messageLog.Add("Use arrow keys to move.")

	// Settle the camera before the first frame is drawn
	cameraSystem.Update(world, 0)

	gameScreen := screens.NewGameScreen(world, renderSystem, cameraSystem, messageLog, 1.0/float64(cfg.Window.TPS))
	if cfg.Debug.Overlay {
		gameScreen.ToggleDebug()
	}

	logger.Info("level loaded",
		"name", def.Name,
		"width", def.Level.Width(),
		"height", def.Level.Height(),
		"view", fmt.Sprintf("%dx%d", cols, rows))

	return &Game{
		cfg:        cfg,
		world:      world,
		screen:     gameScreen,
		messageLog: messageLog,
		trace:      traceSystem,
		logger:     logger,
	}, nil
}

// Update updates the game state.
func (g *Game) Update() error {
	return g.screen.Update()
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Draw(screen)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close flushes any buffered trace rows
func (g *Game) Close() error {
	if g.trace == nil || g.trace.Disabled() {
		return nil
	}
	return g.trace.Flush()
}
