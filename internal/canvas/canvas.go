// Package canvas defines the render surface the game draws on and the
// implementations used by the frontends: a command recorder, a terminal cell
// canvas and an off-screen raster.
package canvas

import "github.com/vovakirdan/gravity-dodge/internal/core"

// Surface is a fixed-size 2D drawing target in world units.
// The game decides what to draw; a Surface decides how pixels come out.
type Surface interface {
	// Size returns the drawable area in world units.
	Size() (w, h float64)

	// FillRect fills an axis-aligned rectangle with a colour at the given opacity.
	FillRect(r core.Rect, c core.Color, alpha float64)

	// FillCircle fills a circle with a colour at the given opacity.
	FillCircle(cx, cy, radius float64, c core.Color, alpha float64)

	// FillVerticalGradient fills a rectangle with a top-to-bottom linear gradient.
	FillVerticalGradient(r core.Rect, top, bottom core.Color)
}
