package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultDodgeConfig() {
		t.Errorf("embedded YAML differs from DefaultDodgeConfig():\n%+v\n%+v", cfg, DefaultDodgeConfig())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := DefaultDodgeConfig()

	if cfg.Player.Gravity != 0.5 {
		t.Errorf("Gravity = %v, expected 0.5", cfg.Player.Gravity)
	}
	if cfg.Player.JumpPower != -10 {
		t.Errorf("JumpPower = %v, expected -10", cfg.Player.JumpPower)
	}
	if cfg.Obstacles.MaxActive != 5 {
		t.Errorf("MaxActive = %d, expected 5", cfg.Obstacles.MaxActive)
	}
	if cfg.Obstacles.SpawnChance != 0.02 {
		t.Errorf("SpawnChance = %v, expected 0.02", cfg.Obstacles.SpawnChance)
	}
	if cfg.Player.HitboxSize != 2 {
		t.Errorf("HitboxSize = %v, expected 2", cfg.Player.HitboxSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  gravity: 0.75\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Player.Gravity != 0.75 {
		t.Errorf("Gravity = %v, expected 0.75", cfg.Player.Gravity)
	}
	if cfg.Player.JumpPower != -10 {
		t.Errorf("unset keys should keep defaults, JumpPower = %v", cfg.Player.JumpPower)
	}
}

func TestValidateRejectsBrokenConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DodgeConfig)
		want   string
	}{
		{"zero canvas", func(c *DodgeConfig) { c.Canvas.Width = 0 }, "canvas"},
		{"player taller than canvas", func(c *DodgeConfig) { c.Player.Height = 500 }, "does not fit"},
		{"spawn chance above one", func(c *DodgeConfig) { c.Obstacles.SpawnChance = 1.5 }, "spawn_chance"},
		{"zero speed step", func(c *DodgeConfig) { c.Obstacles.ScorePerSpeedStep = 0 }, "score_per_speed_step"},
		{"growing particles", func(c *DodgeConfig) { c.Particles.Shrink = 1.2 }, "shrink"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDodgeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.want)
			}
		})
	}
}

func TestLoadDodgeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodge.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  max_active: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodge(path)
	if err != nil {
		t.Fatalf("LoadDodge failed: %v", err)
	}
	if cfg.Obstacles.MaxActive != 3 {
		t.Errorf("MaxActive = %d, expected 3", cfg.Obstacles.MaxActive)
	}
}

func TestLoadDodgeErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadDodge(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadDodge should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadDodge(bad)
	if err == nil {
		t.Error("LoadDodge should fail for malformed YAML")
	}
	if cfg != DefaultDodgeConfig() {
		t.Error("LoadDodge should return defaults alongside an error")
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/abs/path.db")
	if err != nil || got != "/abs/path.db" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/x/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "x", "scores.db") {
		t.Errorf("ExpandHome(~) = %q", got)
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodge.yaml")
	if err := os.WriteFile(path, []byte("player:\n  gravity: 0.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changes := make(chan DodgeConfig, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c DodgeConfig) { changes <- c }, nil)
	}()

	// Give the watcher time to register before writing.
	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(path, []byte("player:\n  gravity: 0.9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// A write can surface as several events, the first of which may see a
	// truncated file; wait for the final content.
	for reloaded := false; !reloaded; {
		select {
		case cfg := <-changes:
			reloaded = cfg.Player.Gravity == 0.9
		case <-ctx.Done():
			t.Fatal("timed out waiting for reload")
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch returned %v", err)
	}
}
