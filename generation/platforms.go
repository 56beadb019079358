package generation

import (
	"ebiten-platformer/level"
)

// addPlatforms floats short ledges above the terrain, roughly one every
// dozen columns. The spawn run is left clear.
func (g *LevelGenerator) addPlatforms(lvl *level.Level, surface []int) {
	for x := spawnRun + 2; x < lvl.Width(); x += 10 + g.rng.Intn(5) {
		length := 3 + g.rng.Intn(3)
		y := surface[x] - 3 - g.rng.Intn(2)
		if y < 1 {
			continue
		}

		for px := x; px < x+length && px < lvl.Width(); px++ {
			// Keep at least one air tile between the ledge and the ground
			if y >= surface[px]-1 {
				break
			}
			lvl.SetTile(px, y, level.TileGround)
		}
	}
}
