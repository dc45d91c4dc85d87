package dodge

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/gravity-dodge/internal/config"
	"github.com/vovakirdan/gravity-dodge/internal/core"
)

// Particle is a short-lived decorative square. It has no gameplay effect.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   float64 // 1 at birth, removed at or below 0; doubles as render alpha
	Color  core.Color
}

// ParticleSystem owns the live particles.
type ParticleSystem struct {
	particles []Particle
	rng       *rand.Rand
	cfg       config.ParticleConfig
}

// NewParticleSystem creates an empty particle system drawing from rng.
func NewParticleSystem(rng *rand.Rand, cfg config.ParticleConfig) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]Particle, 0, 32),
		rng:       rng,
		cfg:       cfg,
	}
}

// UpdateConfig replaces the tuning used for future bursts and updates.
func (ps *ParticleSystem) UpdateConfig(cfg config.ParticleConfig) {
	ps.cfg = cfg
}

// Burst emits n particles at (x, y).
func (ps *ParticleSystem) Burst(n int, x, y float64) {
	for i := 0; i < n; i++ {
		ps.particles = append(ps.particles, Particle{
			X:     x,
			Y:     y,
			VX:    ps.rng.Float64()*2*ps.cfg.MaxSpeed - ps.cfg.MaxSpeed,
			VY:    ps.rng.Float64()*2*ps.cfg.MaxSpeed - ps.cfg.MaxSpeed,
			Size:  ps.rng.Float64()*ps.cfg.SizeRange + ps.cfg.MinSize,
			Life:  1,
			Color: core.HSL(ps.rng.Float64()*ps.cfg.HueRange+ps.cfg.HueMin, ps.cfg.Saturation, ps.cfg.Lightness),
		})
	}
}

// Update moves, fades and shrinks every particle, dropping dead ones.
func (ps *ParticleSystem) Update() {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= ps.cfg.Decay
		p.Size *= ps.cfg.Shrink
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	ps.particles = alive
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

// Particles returns a copy of the live particles.
func (ps *ParticleSystem) Particles() []Particle {
	return slices.Clone(ps.particles)
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}
