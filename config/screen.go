package config

// Screen layout defaults
const (
	// Tile size in pixels
	TileSize = 16

	// Logical screen size in pixels
	ScreenWidth  = 256
	ScreenHeight = 240

	// Each logical pixel is drawn as a PixelScale x PixelScale block
	PixelScale = 4

	// Window dimensions in pixels (derived from the logical size)
	WindowWidth  = ScreenWidth * PixelScale
	WindowHeight = ScreenHeight * PixelScale

	WindowTitle = "Platformer Game"

	// PlayerSpeed is the default movement speed in tiles per second
	PlayerSpeed = 5.0
)
