package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the default configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 400,
		},
		Player: PlayerConfig{
			X:          100,
			StartY:     200,
			Width:      40,
			Height:     40,
			Gravity:    0.5,
			JumpPower:  -10,
			HitboxSize: 2,
		},
		Obstacles: ObstacleConfig{
			SpawnChance:       0.02,
			MaxActive:         5,
			Width:             30,
			MinHeight:         50,
			HeightRange:       150,
			BaseSpeed:         4,
			ScorePerSpeedStep: 5,
		},
		Particles: ParticleConfig{
			JumpBurst:  5,
			ScoreBurst: 10,
			MaxSpeed:   2,
			MinSize:    1,
			SizeRange:  3,
			Decay:      0.02,
			Shrink:     0.98,
			HueMin:     200,
			HueRange:   60,
			Saturation: 0.7,
			Lightness:  0.5,
		},
		Background: BackgroundConfig{
			CloudCount:   3,
			CloudSpacing: 200,
			CloudBaseY:   50,
			CloudStepY:   30,
			CloudRadius:  30,
			CloudAlpha:   0.3,
			// One unit per 50ms of wall time at 60 ticks per second.
			ScrollPerTick: 1.0 / 3.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
