package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/gravity-dodge/internal/core"
)

// vectorSurface draws world shapes straight onto an ebiten image. The game
// layout equals the world size, so one world unit is one logical pixel.
type vectorSurface struct {
	dst *ebiten.Image
}

func (s vectorSurface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s vectorSurface) FillRect(r core.Rect, c core.Color, alpha float64) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.NRGBA(alpha), false)
}

func (s vectorSurface) FillCircle(cx, cy, radius float64, c core.Color, alpha float64) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(radius), c.NRGBA(alpha), true)
}

// FillVerticalGradient draws one-pixel strips; ebiten has no gradient fill.
func (s vectorSurface) FillVerticalGradient(r core.Rect, top, bottom core.Color) {
	rows := int(r.H)
	for y := 0; y < rows; y++ {
		t := 0.0
		if rows > 1 {
			t = float64(y) / float64(rows-1)
		}
		vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y)+float32(y), float32(r.W), 1, top.Lerp(bottom, t).NRGBA(1), false)
	}
}
