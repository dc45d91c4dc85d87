package dodge

import (
	"math"

	"github.com/vovakirdan/gravity-dodge/internal/canvas"
	"github.com/vovakirdan/gravity-dodge/internal/core"
)

const (
	obstacleCap = 5   // Cap thickness drawn on obstacle ends
	cloudWrap   = 100 // Off-screen distance a cloud travels before wrapping
)

// Render draws the frame onto dst in a fixed order: background, player,
// obstacles, particles. Only the background is drawn before the first run.
func (w *World) Render(dst canvas.Surface) {
	w.drawBackground(dst)

	if w.phase == core.PhaseStart {
		return
	}

	w.drawPlayer(dst)
	for _, o := range w.obstacles.obstacles {
		drawObstacle(dst, o)
	}
	for _, p := range w.particles.particles {
		dst.FillRect(core.NewRect(p.X, p.Y, p.Size, p.Size), p.Color, p.Life)
	}
}

// CloudCenter returns the centre of cloud i at the current frame.
func (w *World) CloudCenter(i int) (float64, float64) {
	bg := w.cfg.Background
	period := w.cfg.Canvas.Width + cloudWrap
	x := math.Mod(float64(w.tick)*bg.ScrollPerTick+float64(i)*bg.CloudSpacing, period) - cloudWrap/2
	y := bg.CloudBaseY + float64(i)*bg.CloudStepY
	return x, y
}

func (w *World) drawBackground(dst canvas.Surface) {
	width, height := w.cfg.Canvas.Width, w.cfg.Canvas.Height
	dst.FillVerticalGradient(core.NewRect(0, 0, width, height), core.ColorSkyTop, core.ColorSkyBottom)

	bg := w.cfg.Background
	for i := 0; i < bg.CloudCount; i++ {
		cx, cy := w.CloudCenter(i)
		dst.FillCircle(cx, cy, bg.CloudRadius, core.ColorCloud, bg.CloudAlpha)
	}
}

func (w *World) drawPlayer(dst canvas.Surface) {
	p := w.player
	dst.FillRect(p.Rect(), core.ColorPlayer, 1)

	// Eyes
	dst.FillRect(core.NewRect(p.X+5, p.Y+5, 10, 10), core.ColorPlayerEye, 1)
	dst.FillRect(core.NewRect(p.X+25, p.Y+5, 10, 10), core.ColorPlayerEye, 1)

	// Pupils
	dst.FillRect(core.NewRect(p.X+7, p.Y+7, 6, 6), core.ColorPlayerFace, 1)
	dst.FillRect(core.NewRect(p.X+27, p.Y+7, 6, 6), core.ColorPlayerFace, 1)

	// Mouth
	dst.FillRect(core.NewRect(p.X+10, p.Y+25, 20, 3), core.ColorPlayerFace, 1)
}

func drawObstacle(dst canvas.Surface, o Obstacle) {
	dst.FillRect(o.Rect(), core.ColorObstacle, 1)
	dst.FillRect(core.NewRect(o.X, o.Y, o.Width, obstacleCap), core.ColorObstacleCap, 1)
	if o.Y > 0 {
		dst.FillRect(core.NewRect(o.X, o.Y+o.Height-obstacleCap, o.Width, obstacleCap), core.ColorObstacleCap, 1)
	}
}
