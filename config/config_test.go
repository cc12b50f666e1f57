package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Playground.CircleCapacity != 100 {
		t.Errorf("expected circle capacity 100, got %d", cfg.Playground.CircleCapacity)
	}
	if cfg.Playground.SpinRate != 0.05 || cfg.Playground.ReverseSpinRate != -0.08 {
		t.Errorf("unexpected spin rates %g / %g", cfg.Playground.SpinRate, cfg.Playground.ReverseSpinRate)
	}
	if cfg.Fireworks.FragmentCount != 100 {
		t.Errorf("expected 100 fragments, got %d", cfg.Fireworks.FragmentCount)
	}
	if cfg.Fireworks.Gravity != -0.0002 {
		t.Errorf("expected gravity -0.0002, got %g", cfg.Fireworks.Gravity)
	}
	if cfg.Screen.Background != 0x202020 {
		t.Errorf("expected background 0x202020, got %#x", cfg.Screen.Background)
	}
	if cfg.Viewer.CubeColor != 0xe6ba39 {
		t.Errorf("expected cube color 0xe6ba39, got %#x", cfg.Viewer.CubeColor)
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := Defaults()

	// 1 - 33*0.03 > 0, 1 - 34*0.03 < 0
	if cfg.Derived.FragmentLifetime != 34 {
		t.Errorf("expected fragment lifetime 34, got %d", cfg.Derived.FragmentLifetime)
	}
	// 0.4 / 0.0002 = 2000
	if cfg.Derived.MaxRiseFrames != 2001 {
		t.Errorf("expected max rise frames 2001, got %d", cfg.Derived.MaxRiseFrames)
	}
	if cfg.Derived.ScreenW32 != 1280 {
		t.Errorf("expected derived width 1280, got %f", cfg.Derived.ScreenW32)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := []byte("playground:\n  circle_capacity: 10\nfireworks:\n  spawn_chance: 1\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading overlay: %v", err)
	}

	if cfg.Playground.CircleCapacity != 10 {
		t.Errorf("expected overridden capacity 10, got %d", cfg.Playground.CircleCapacity)
	}
	if cfg.Fireworks.SpawnChance != 1 {
		t.Errorf("expected overridden spawn chance 1, got %g", cfg.Fireworks.SpawnChance)
	}
	// Fields absent from the overlay keep their defaults
	if cfg.Playground.Rows != 2 || cfg.Fireworks.FragmentCount != 100 {
		t.Errorf("overlay clobbered defaults: rows=%d fragments=%d", cfg.Playground.Rows, cfg.Fireworks.FragmentCount)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidateRejectsInvalidSpawnRequests(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative capacity", func(c *Config) { c.Playground.CircleCapacity = -1 }},
		{"negative radius", func(c *Config) { c.Playground.CircleMaxRadius = -5 }},
		{"negative rows", func(c *Config) { c.Playground.Rows = -1 }},
		{"negative fragments", func(c *Config) { c.Fireworks.FragmentCount = -100 }},
		{"spawn chance above one", func(c *Config) { c.Fireworks.SpawnChance = 1.5 }},
		{"zero gravity", func(c *Config) { c.Fireworks.Gravity = 0 }},
		{"upward gravity", func(c *Config) { c.Fireworks.Gravity = 0.001 }},
		{"no fade", func(c *Config) { c.Fireworks.FadeStep = 0 }},
		{"negative shell speed", func(c *Config) { c.Fireworks.ShellMaxSpeed = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidSpawnRequest) {
				t.Errorf("expected ErrInvalidSpawnRequest, got %v", err)
			}
		})
	}
}

func TestValidateAllowsEmptyGrid(t *testing.T) {
	cfg := Defaults()
	cfg.Playground.Rows = 0
	cfg.Playground.Cols = 0
	cfg.Fireworks.FragmentCount = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty grid should be valid, got %v", err)
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Defaults()
	cfg.Playground.CircleCapacity = 42

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing yaml: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading snapshot: %v", err)
	}
	if loaded.Playground.CircleCapacity != 42 {
		t.Errorf("expected capacity 42 after reload, got %d", loaded.Playground.CircleCapacity)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected Cfg() to panic before Init")
		}
	}()
	Cfg()
}
