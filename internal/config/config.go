// Package config provides YAML-based tuning for the game: canvas size,
// physics, spawning and particle constants.
package config

// DodgeConfig contains all tuning for the game.
type DodgeConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Particles  ParticleConfig   `yaml:"particles"`
	Background BackgroundConfig `yaml:"background"`
}

// CanvasConfig defines the fixed world size in world units.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player sprite and its physics.
type PlayerConfig struct {
	X          float64 `yaml:"x"`
	StartY     float64 `yaml:"start_y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Gravity    float64 `yaml:"gravity"`     // Added to velocity every tick
	JumpPower  float64 `yaml:"jump_power"`  // Velocity set by a jump (negative = up)
	HitboxSize float64 `yaml:"hitbox_size"` // Side of the square hitbox centred on the sprite
}

// ObstacleConfig defines obstacle spawning and movement.
type ObstacleConfig struct {
	SpawnChance       float64 `yaml:"spawn_chance"` // Probability of a spawn per tick
	MaxActive         int     `yaml:"max_active"`
	Width             float64 `yaml:"width"`
	MinHeight         float64 `yaml:"min_height"`
	HeightRange       float64 `yaml:"height_range"` // Height is uniform in [min, min+range)
	BaseSpeed         int     `yaml:"base_speed"`
	ScorePerSpeedStep int     `yaml:"score_per_speed_step"` // Speed grows by 1 every N points
}

// ParticleConfig defines the cosmetic particle bursts.
type ParticleConfig struct {
	JumpBurst  int     `yaml:"jump_burst"`
	ScoreBurst int     `yaml:"score_burst"`
	MaxSpeed   float64 `yaml:"max_speed"` // Velocity per axis is uniform in [-max, max)
	MinSize    float64 `yaml:"min_size"`
	SizeRange  float64 `yaml:"size_range"`
	Decay      float64 `yaml:"decay"`  // Life lost per tick
	Shrink     float64 `yaml:"shrink"` // Size multiplier per tick
	HueMin     float64 `yaml:"hue_min"`
	HueRange   float64 `yaml:"hue_range"`
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`
}

// BackgroundConfig defines the scrolling clouds.
type BackgroundConfig struct {
	CloudCount    int     `yaml:"cloud_count"`
	CloudSpacing  float64 `yaml:"cloud_spacing"`
	CloudBaseY    float64 `yaml:"cloud_base_y"`
	CloudStepY    float64 `yaml:"cloud_step_y"`
	CloudRadius   float64 `yaml:"cloud_radius"`
	CloudAlpha    float64 `yaml:"cloud_alpha"`
	ScrollPerTick float64 `yaml:"scroll_per_tick"`
}
