package dodge

import "github.com/vovakirdan/gravity-dodge/internal/core"

// Player is the falling sprite. X never changes; Y and Velocity are
// integrated once per tick.
type Player struct {
	X, Y          float64
	Width, Height float64
	Velocity      float64 // Vertical velocity, positive = down
}

// Rect returns the visible sprite rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Hitbox returns the square of the given side centred on the sprite.
// Only this square is tested against obstacles.
func (p Player) Hitbox(size float64) core.Rect {
	cx, cy := p.Rect().Center()
	return core.CenteredRect(cx, cy, size, size)
}

// Update applies gravity and keeps the sprite inside [0, canvasH-Height].
// It reports whether the sprite hit the ceiling or the floor this tick.
// Touching either edge only stops vertical motion.
func (p *Player) Update(gravity, canvasH float64) bool {
	p.Velocity += gravity
	p.Y += p.Velocity

	if p.Y < 0 {
		p.Y = 0
		p.Velocity = 0
		return true
	}
	if p.Y+p.Height > canvasH {
		p.Y = canvasH - p.Height
		p.Velocity = 0
		return true
	}
	return false
}
