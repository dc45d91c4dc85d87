package canvas

import (
	"math"

	"github.com/vovakirdan/gravity-dodge/internal/core"
)

// CellCanvas draws world-space shapes onto a terminal cell buffer by painting
// cell backgrounds. A cell is covered by a shape when the shape contains the
// cell's centre; shapes too small to cover any centre still paint the cell
// under their own centre so particles stay visible.
type CellCanvas struct {
	screen *core.Screen
	w, h   float64
}

// NewCellCanvas maps a world of w x h units onto the whole screen.
func NewCellCanvas(screen *core.Screen, w, h float64) *CellCanvas {
	return &CellCanvas{screen: screen, w: w, h: h}
}

// Size implements Surface.
func (c *CellCanvas) Size() (float64, float64) {
	return c.w, c.h
}

// Screen returns the underlying cell buffer.
func (c *CellCanvas) Screen() *core.Screen {
	return c.screen
}

func (c *CellCanvas) scale() (sx, sy float64) {
	return float64(c.screen.Width()) / c.w, float64(c.screen.Height()) / c.h
}

// span returns the half-open cell range whose centres fall inside [lo, hi).
func span(lo, hi, scale float64, n int) (int, int) {
	start := int(math.Ceil(lo*scale - 0.5))
	end := int(math.Ceil(hi*scale - 0.5))
	return core.Clamp(start, 0, n), core.Clamp(end, 0, n)
}

// FillRect implements Surface.
func (c *CellCanvas) FillRect(r core.Rect, col core.Color, alpha float64) {
	sx, sy := c.scale()
	x0, x1 := span(r.X, r.Right(), sx, c.screen.Width())
	y0, y1 := span(r.Y, r.Bottom(), sy, c.screen.Height())

	if x0 >= x1 || y0 >= y1 {
		cx, cy := r.Center()
		c.screen.Paint(int(math.Floor(cx*sx)), int(math.Floor(cy*sy)), col, alpha)
		return
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.screen.Paint(x, y, col, alpha)
		}
	}
}

// FillCircle implements Surface.
func (c *CellCanvas) FillCircle(cx, cy, radius float64, col core.Color, alpha float64) {
	sx, sy := c.scale()
	x0, x1 := span(cx-radius, cx+radius, sx, c.screen.Width())
	y0, y1 := span(cy-radius, cy+radius, sy, c.screen.Height())

	painted := false
	for y := y0; y < y1; y++ {
		wy := (float64(y)+0.5)/sy - cy
		for x := x0; x < x1; x++ {
			wx := (float64(x)+0.5)/sx - cx
			if wx*wx+wy*wy <= radius*radius {
				c.screen.Paint(x, y, col, alpha)
				painted = true
			}
		}
	}
	if !painted {
		c.screen.Paint(int(math.Floor(cx*sx)), int(math.Floor(cy*sy)), col, alpha)
	}
}

// FillVerticalGradient implements Surface.
func (c *CellCanvas) FillVerticalGradient(r core.Rect, top, bottom core.Color) {
	sx, sy := c.scale()
	x0, x1 := span(r.X, r.Right(), sx, c.screen.Width())
	y0, y1 := span(r.Y, r.Bottom(), sy, c.screen.Height())

	for y := y0; y < y1; y++ {
		t := 0.0
		if r.H > 0 {
			t = core.ClampF(((float64(y)+0.5)/sy-r.Y)/r.H, 0, 1)
		}
		col := top.Lerp(bottom, t)
		for x := x0; x < x1; x++ {
			c.screen.Paint(x, y, col, 1)
		}
	}
}
