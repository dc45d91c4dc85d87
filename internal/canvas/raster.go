package canvas

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/vovakirdan/gravity-dodge/internal/core"
)

// Raster is an off-screen image Surface backed by a gg drawing context.
// World units are multiplied by a fixed scale to get pixels.
type Raster struct {
	dc    *gg.Context
	w, h  float64
	scale float64
}

// NewRaster creates a raster for a w x h world drawn at the given scale.
// A non-positive scale is treated as 1.
func NewRaster(w, h, scale float64) *Raster {
	if scale <= 0 {
		scale = 1
	}
	pw := int(w*scale + 0.5)
	ph := int(h*scale + 0.5)
	return &Raster{
		dc:    gg.NewContext(pw, ph),
		w:     w,
		h:     h,
		scale: scale,
	}
}

// Size implements Surface.
func (r *Raster) Size() (float64, float64) {
	return r.w, r.h
}

// FillRect implements Surface.
func (r *Raster) FillRect(rect core.Rect, c core.Color, alpha float64) {
	s := r.scale
	r.dc.SetColor(c.NRGBA(alpha))
	r.dc.DrawRectangle(rect.X*s, rect.Y*s, rect.W*s, rect.H*s)
	r.dc.Fill()
}

// FillCircle implements Surface.
func (r *Raster) FillCircle(cx, cy, radius float64, c core.Color, alpha float64) {
	s := r.scale
	r.dc.SetColor(c.NRGBA(alpha))
	r.dc.DrawCircle(cx*s, cy*s, radius*s)
	r.dc.Fill()
}

// FillVerticalGradient implements Surface.
func (r *Raster) FillVerticalGradient(rect core.Rect, top, bottom core.Color) {
	s := r.scale
	grad := gg.NewLinearGradient(0, rect.Y*s, 0, rect.Bottom()*s)
	grad.AddColorStop(0, top.NRGBA(1))
	grad.AddColorStop(1, bottom.NRGBA(1))
	r.dc.SetFillStyle(grad)
	r.dc.DrawRectangle(rect.X*s, rect.Y*s, rect.W*s, rect.H*s)
	r.dc.Fill()
}

// Image returns the rendered image.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// Scaled returns the image resized to the given width, keeping the aspect ratio.
func (r *Raster) Scaled(width int) image.Image {
	if width <= 0 || width == r.dc.Width() {
		return r.dc.Image()
	}
	return imaging.Resize(r.dc.Image(), width, 0, imaging.Lanczos)
}

// EncodePNG writes the image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := r.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("canvas: cannot encode png: %w", err)
	}
	return nil
}

// SavePNG writes the image to path, resized to width when width > 0.
func (r *Raster) SavePNG(path string, width int) error {
	if err := imaging.Save(r.Scaled(width), path); err != nil {
		return fmt.Errorf("canvas: cannot save %s: %w", path, err)
	}
	return nil
}
