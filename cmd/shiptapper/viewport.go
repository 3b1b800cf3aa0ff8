package main

import (
	"math"

	"github.com/lixenwraith/shiptapper/core"
)

// Terminal rows reserved above and below the arena
const (
	hudTop    = 2
	hudBottom = 2
)

// viewport maps arena points (y up) onto terminal cells (y down)
// A cell is treated as twice as tall as it is wide
type viewport struct {
	originX, originY int
	cols, rows       int
	perCol           float64
}

func newViewport(arena core.Size, width, height int) viewport {
	availCols := max(width, 1)
	availRows := max(height-hudTop-hudBottom, 1)

	perCol := math.Max(arena.W/float64(availCols), arena.H/float64(availRows)/2)
	if perCol <= 0 {
		perCol = 1
	}
	cols := max(int(arena.W/perCol), 1)
	rows := max(int(arena.H/(2*perCol)), 1)

	return viewport{
		originX: (availCols - cols) / 2,
		originY: hudTop,
		cols:    cols,
		rows:    rows,
		perCol:  perCol,
	}
}

// toCell returns the cell containing an arena point
func (v viewport) toCell(p core.Vec2) (int, int) {
	cx := int(math.Floor(p.X / v.perCol))
	cy := int(math.Floor(p.Y / (2 * v.perCol)))
	cx = max(0, min(v.cols-1, cx))
	cy = max(0, min(v.rows-1, cy))
	return v.originX + cx, v.originY + v.rows - 1 - cy
}

// toWorld returns the arena point at the center of a cell
func (v viewport) toWorld(x, y int) core.Vec2 {
	cx := float64(x-v.originX) + 0.5
	cy := float64(v.originY+v.rows-1-y) + 0.5
	return core.Vec2{X: cx * v.perCol, Y: cy * 2 * v.perCol}
}

// cells returns the inclusive cell span covered by a rect; tiny rects still cover one cell
func (v viewport) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0, y1 = v.toCell(core.Vec2{X: r.MinX(), Y: r.MinY()})
	x1, y0 = v.toCell(core.Vec2{X: math.Nextafter(r.MaxX(), r.MinX()), Y: math.Nextafter(r.MaxY(), r.MinY())})
	return
}

// contains reports whether a cell lies inside the arena area
func (v viewport) contains(x, y int) bool {
	return x >= v.originX && x < v.originX+v.cols && y >= v.originY && y < v.originY+v.rows
}
