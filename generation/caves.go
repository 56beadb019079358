package generation

import (
	"ebiten-platformer/level"
)

// inCaveBand reports whether (x, y) may be carved. Two rows of crust stay
// under the surface and the bottom row is always solid.
func inCaveBand(lvl *level.Level, surface []int, x, y int) bool {
	return y > surface[x]+1 && y < lvl.Height()-1
}

// carveCaves opens caves below the surface using cellular automata
func (g *LevelGenerator) carveCaves(lvl *level.Level, surface []int) {
	// Seed the band with random ground (45% chance)
	for y := 0; y < lvl.Height(); y++ {
		for x := 0; x < lvl.Width(); x++ {
			if !inCaveBand(lvl, surface, x, y) {
				continue
			}
			if g.rng.Float64() < 0.45 {
				lvl.SetTile(x, y, level.TileGround)
			} else {
				lvl.SetTile(x, y, level.TileAir)
			}
		}
	}

	for i := 0; i < 4; i++ {
		next := make([]level.Tile, lvl.Width()*lvl.Height())
		for y := 0; y < lvl.Height(); y++ {
			for x := 0; x < lvl.Width(); x++ {
				next[y*lvl.Width()+x] = lvl.Tile(x, y)
				if !inCaveBand(lvl, surface, x, y) {
					continue
				}

				// More than 4 solid neighbours fills in, fewer than 4 opens up
				ground := countAdjacentGround(lvl, x, y)
				if ground > 4 {
					next[y*lvl.Width()+x] = level.TileGround
				} else if ground < 4 {
					next[y*lvl.Width()+x] = level.TileAir
				}
			}
		}

		for y := 0; y < lvl.Height(); y++ {
			for x := 0; x < lvl.Width(); x++ {
				lvl.SetTile(x, y, next[y*lvl.Width()+x])
			}
		}
	}

	cleanupIsolatedTiles(lvl, surface)
}

// countAdjacentGround counts solid tiles in the 3x3 block around (x, y),
// the tile itself included. Edges count as ground.
func countAdjacentGround(lvl *level.Level, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if !lvl.InBounds(nx, ny) || lvl.Tile(nx, ny) == level.TileGround {
				count++
			}
		}
	}
	return count
}

// cleanupIsolatedTiles removes lone ground specks and fills sealed pockets
func cleanupIsolatedTiles(lvl *level.Level, surface []int) {
	for y := 0; y < lvl.Height(); y++ {
		for x := 0; x < lvl.Width(); x++ {
			if !inCaveBand(lvl, surface, x, y) {
				continue
			}
			ground := countAdjacentGround(lvl, x, y)
			switch {
			case lvl.Tile(x, y) == level.TileGround && ground <= 2:
				lvl.SetTile(x, y, level.TileAir)
			case lvl.Tile(x, y) == level.TileAir && ground >= 7:
				lvl.SetTile(x, y, level.TileGround)
			}
		}
	}
}
