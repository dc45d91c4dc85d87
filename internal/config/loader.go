package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, scores and logs.
const AppDir = ".gravdodge"

// LoadDodge loads the game configuration.
// Search order: customPath -> ~/.gravdodge/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default.
// Files are decoded over the defaults, so a file may override only a few keys.
func LoadDodge(customPath string) (DodgeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultDodgeConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultDodgeConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("configs", "dodge.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "dodge.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDodgeYAML)
	if err != nil {
		return DefaultDodgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every setting that would break the simulation.
func (c DodgeConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Canvas.Width > 0 && c.Canvas.Height > 0,
		"canvas: size must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	check(c.Player.Width > 0 && c.Player.Height > 0,
		"player: size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Player.Height <= c.Canvas.Height,
		"player: height %v does not fit canvas height %v", c.Player.Height, c.Canvas.Height)
	check(c.Player.X >= 0 && c.Player.X+c.Player.Width <= c.Canvas.Width,
		"player: x %v puts the sprite outside the canvas", c.Player.X)
	check(c.Player.HitboxSize > 0, "player: hitbox_size must be positive")
	check(c.Obstacles.SpawnChance >= 0 && c.Obstacles.SpawnChance <= 1,
		"obstacles: spawn_chance must be in [0, 1], got %v", c.Obstacles.SpawnChance)
	check(c.Obstacles.MaxActive >= 0, "obstacles: max_active must not be negative")
	check(c.Obstacles.Width > 0, "obstacles: width must be positive")
	check(c.Obstacles.MinHeight > 0 && c.Obstacles.HeightRange >= 0,
		"obstacles: min_height must be positive and height_range not negative")
	check(c.Obstacles.ScorePerSpeedStep > 0, "obstacles: score_per_speed_step must be positive")
	check(c.Particles.Decay > 0, "particles: decay must be positive")
	check(c.Particles.Shrink > 0 && c.Particles.Shrink <= 1,
		"particles: shrink must be in (0, 1], got %v", c.Particles.Shrink)
	check(c.Background.CloudAlpha >= 0 && c.Background.CloudAlpha <= 1,
		"background: cloud_alpha must be in [0, 1]")

	return errors.Join(errs...)
}

// UserPath returns a path under ~/.gravdodge, or empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
