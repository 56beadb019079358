// Package viewport computes which part of a tile grid is on screen.
package viewport

import "cmp"

// Clamp restricts value to [lo, hi]. Values below lo win over hi.
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// VisibleTiles returns how many whole tiles fit on a screen
func VisibleTiles(screenW, screenH, tileW, tileH int) (cols, rows int) {
	if tileW <= 0 || tileH <= 0 {
		return 0, 0
	}
	return screenW / tileW, screenH / tileH
}

// Offset returns the top-left visible tile for a camera centered on
// (camX, camY). The result is clamped so the view never leaves the level;
// levels smaller than the view pin the offset to 0.
func Offset(camX, camY float64, cols, rows, levelW, levelH int) (int, int) {
	return axisOffset(camX, cols, levelW), axisOffset(camY, rows, levelH)
}

func axisOffset(cam float64, visible, size int) int {
	ideal := int(cam - float64(visible)/2)
	hi := size - visible
	if hi < 0 {
		hi = 0
	}
	return Clamp(ideal, 0, hi)
}

// Viewport is the visible window onto a level, in tiles
type Viewport struct {
	OffsetX, OffsetY int
	Cols, Rows       int
}

// New builds a viewport centered on the camera and clamped to the level
func New(camX, camY float64, cols, rows, levelW, levelH int) Viewport {
	ox, oy := Offset(camX, camY, cols, rows, levelW, levelH)
	return Viewport{OffsetX: ox, OffsetY: oy, Cols: cols, Rows: rows}
}

// WorldToScreen converts a tile coordinate into a viewport cell
func (v Viewport) WorldToScreen(wx, wy int) (int, int) {
	return wx - v.OffsetX, wy - v.OffsetY
}

// ScreenToWorld converts a viewport cell into a tile coordinate
func (v Viewport) ScreenToWorld(sx, sy int) (int, int) {
	return sx + v.OffsetX, sy + v.OffsetY
}

// Contains reports whether a tile coordinate is on screen
func (v Viewport) Contains(wx, wy int) bool {
	return wx >= v.OffsetX && wx < v.OffsetX+v.Cols &&
		wy >= v.OffsetY && wy < v.OffsetY+v.Rows
}
