// Package level holds the tile grid the platformer is played on.
package level

import (
	"errors"
	"fmt"
	"math"
)

// Tile identifies what occupies a single grid cell
type Tile uint16

// Tile types
const (
	TileGround Tile = iota
	TileAir

	// TileInvalid is returned for reads outside the grid
	TileInvalid Tile = math.MaxUint16
)

// Default grid dimensions
const (
	DefaultWidth  = 32
	DefaultHeight = 16
)

var (
	// ErrEmpty is returned when a map has no rows or an empty first row
	ErrEmpty = errors.New("level: map has no tiles")
	// ErrRagged is returned when map rows differ in length
	ErrRagged = errors.New("level: rows have different lengths")
	// ErrSpawnOutside is returned when a spawn point is not on the grid
	ErrSpawnOutside = errors.New("level: spawn is outside the map")
)

// Level is a fixed-size row-major tile grid
type Level struct {
	width  int
	height int
	tiles  []Tile
}

// New creates a level with the default dimensions
func New() *Level {
	return NewSized(DefaultWidth, DefaultHeight)
}

// NewSized creates a level of the given size filled with ground
func NewSized(width, height int) *Level {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Level{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
}

// Width returns the number of columns
func (l *Level) Width() int {
	return l.width
}

// Height returns the number of rows
func (l *Level) Height() int {
	return l.height
}

// InBounds reports whether (x, y) lies on the grid
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && x < l.width && y >= 0 && y < l.height
}

// SetTile sets the tile at the given position; out of bounds writes are ignored
func (l *Level) SetTile(x, y int, tile Tile) {
	if l.InBounds(x, y) {
		l.tiles[y*l.width+x] = tile
	}
}

// Tile returns the tile at the given position or TileInvalid
func (l *Level) Tile(x, y int) Tile {
	if l.InBounds(x, y) {
		return l.tiles[y*l.width+x]
	}
	return TileInvalid
}

// TileChar returns the map character for the tile at the given position
func (l *Level) TileChar(x, y int) byte {
	switch l.Tile(x, y) {
	case TileGround:
		return '#'
	case TileAir:
		return '.'
	default:
		return ' '
	}
}

// FromRows builds a level from ASCII rows. The first row fixes the width.
// '#' is ground, '.' is air and anything else is treated as ground.
func FromRows(rows []string) (*Level, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}

	l := NewSized(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != l.width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrRagged, y, len(row), l.width)
		}
		for x := 0; x < len(row); x++ {
			l.SetTile(x, y, tileFromChar(row[x]))
		}
	}
	return l, nil
}

// Rows renders the level back into ASCII rows
func (l *Level) Rows() []string {
	rows := make([]string, l.height)
	buf := make([]byte, l.width)
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			buf[x] = l.TileChar(x, y)
		}
		rows[y] = string(buf)
	}
	return rows
}

// Count returns how many cells hold the given tile
func (l *Level) Count(tile Tile) int {
	n := 0
	for _, t := range l.tiles {
		if t == tile {
			n++
		}
	}
	return n
}

func tileFromChar(ch byte) Tile {
	switch ch {
	case '.':
		return TileAir
	default:
		return TileGround
	}
}
