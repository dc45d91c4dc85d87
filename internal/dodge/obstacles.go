package dodge

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/gravity-dodge/internal/config"
	"github.com/vovakirdan/gravity-dodge/internal/core"
)

// Obstacle is a rectangular hazard hugging the ceiling or the floor.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Fixed at spawn time
	Passed        bool    // Whether the player has scored on this obstacle
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// TrailingEdge returns the x-coordinate tested for scoring and removal.
func (o Obstacle) TrailingEdge() float64 {
	return o.X + o.Width
}

// ObstacleManager handles spawning, movement, scoring and removal of obstacles.
// Obstacles are kept in spawn order, so the oldest is nearest the left edge.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.ObstacleConfig
	canvasW   float64
	canvasH   float64
}

// NewObstacleManager creates an obstacle manager drawing from rng.
func NewObstacleManager(rng *rand.Rand, cfg config.ObstacleConfig, canvasW, canvasH float64) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, cfg.MaxActive),
		rng:       rng,
		cfg:       cfg,
		canvasW:   canvasW,
		canvasH:   canvasH,
	}
}

// UpdateConfig replaces the tuning and canvas size used for future spawns.
func (om *ObstacleManager) UpdateConfig(cfg config.ObstacleConfig, canvasW, canvasH float64) {
	om.cfg = cfg
	om.canvasW = canvasW
	om.canvasH = canvasH
}

// Reset removes every obstacle.
func (om *ObstacleManager) Reset() {
	om.obstacles = om.obstacles[:0]
}

// SpeedForScore returns the speed an obstacle spawned at the given score gets.
func (om *ObstacleManager) SpeedForScore(score int) float64 {
	return float64(om.cfg.BaseSpeed + score/om.cfg.ScorePerSpeedStep)
}

// TrySpawn rolls the per-tick spawn chance and, when it hits and there is
// room, adds one obstacle at the right edge. Reports whether one was added.
func (om *ObstacleManager) TrySpawn(score int) bool {
	if om.rng.Float64() >= om.cfg.SpawnChance || len(om.obstacles) >= om.cfg.MaxActive {
		return false
	}

	height := om.cfg.MinHeight + om.rng.Float64()*om.cfg.HeightRange
	y := om.canvasH - height
	if om.rng.Float64() > 0.5 {
		y = 0
	}

	om.obstacles = append(om.obstacles, Obstacle{
		X:      om.canvasW,
		Y:      y,
		Width:  om.cfg.Width,
		Height: height,
		Speed:  om.SpeedForScore(score),
	})
	return true
}

// Advance moves every obstacle left by its own speed.
func (om *ObstacleManager) Advance() {
	for i := range om.obstacles {
		om.obstacles[i].X -= om.obstacles[i].Speed
	}
}

// MarkPassed flags obstacles whose trailing edge is strictly left of playerX
// and returns how many were newly passed this call.
func (om *ObstacleManager) MarkPassed(playerX float64) int {
	passed := 0
	for i := range om.obstacles {
		if !om.obstacles[i].Passed && om.obstacles[i].TrailingEdge() < playerX {
			om.obstacles[i].Passed = true
			passed++
		}
	}
	return passed
}

// Prune removes obstacles whose trailing edge has crossed x = 0.
func (om *ObstacleManager) Prune() {
	valid := om.obstacles[:0]
	for _, o := range om.obstacles {
		if o.TrailingEdge() >= 0 {
			valid = append(valid, o)
		}
	}
	om.obstacles = valid
}

// Collides tests whether any obstacle overlaps the given hitbox.
func (om *ObstacleManager) Collides(hitbox core.Rect) bool {
	for _, o := range om.obstacles {
		if hitbox.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// Obstacles returns a copy of the active obstacles in spawn order.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return slices.Clone(om.obstacles)
}

// Len returns the number of active obstacles.
func (om *ObstacleManager) Len() int {
	return len(om.obstacles)
}
