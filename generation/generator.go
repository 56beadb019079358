// Package generation builds random side-view levels: rolling terrain with
// caves underneath and floating platforms above.
package generation

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"ebiten-platformer/level"
)

// Size limits for generated levels
const (
	MinWidth  = 8
	MinHeight = 6
	MaxWidth  = 4096
	MaxHeight = 1024
)

// spawnRun is the number of flat columns kept clear at the left edge
const spawnRun = 4

var (
	// ErrTooSmall is returned for sizes below MinWidth x MinHeight
	ErrTooSmall = errors.New("generation: level too small")
	// ErrTooLarge is returned for sizes above MaxWidth x MaxHeight
	ErrTooLarge = errors.New("generation: level too large")
)

// Options control a generated level
type Options struct {
	Name   string
	Width  int
	Height int
}

// LevelGenerator handles procedural generation of level layouts
type LevelGenerator struct {
	rng *rand.Rand
}

// NewLevelGenerator creates a new level generator
func NewLevelGenerator() *LevelGenerator {
	return &LevelGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed allows setting a specific seed for reproducible levels
func (g *LevelGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Generate builds a level. The spawn point is the air tile above the
// surface in column 0.
func (g *LevelGenerator) Generate(opts Options) (*level.Definition, error) {
	if opts.Width < MinWidth || opts.Height < MinHeight {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrTooSmall, opts.Width, opts.Height, MinWidth, MinHeight)
	}
	if opts.Width > MaxWidth || opts.Height > MaxHeight {
		return nil, fmt.Errorf("%w: %dx%d, at most %dx%d",
			ErrTooLarge, opts.Width, opts.Height, MaxWidth, MaxHeight)
	}

	// NewSized starts solid, so only the sky needs carving
	lvl := level.NewSized(opts.Width, opts.Height)
	surface := g.surfaceProfile(opts.Width, opts.Height)
	for x, top := range surface {
		for y := 0; y < top; y++ {
			lvl.SetTile(x, y, level.TileAir)
		}
	}

	g.carveCaves(lvl, surface)
	g.addPlatforms(lvl, surface)

	name := opts.Name
	if name == "" {
		name = "generated"
	}
	return &level.Definition{
		Name:  name,
		Spawn: level.Point{X: 0, Y: surface[0] - 1},
		Level: lvl,
	}, nil
}

// surfaceProfile returns the first ground row of every column as a random
// walk of single-tile steps.
func (g *LevelGenerator) surfaceProfile(width, height int) []int {
	minY := max(2, height/3)
	maxY := height - 2

	y := min(maxY, max(minY, height*2/3))
	surface := make([]int, width)
	for x := range surface {
		if x >= spawnRun && g.rng.Intn(100) < 40 {
			y += g.rng.Intn(3) - 1
			y = min(maxY, max(minY, y))
		}
		surface[x] = y
	}
	return surface
}
