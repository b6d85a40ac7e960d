package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseDodge(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultDodgeConfig() {
		t.Errorf("embedded defaults drifted from DefaultDodgeConfig():\n%+v\n%+v", cfg, DefaultDodgeConfig())
	}
}

func TestParseDodgePartialOverride(t *testing.T) {
	cfg, err := ParseDodge([]byte("canvas:\n  width: 320\nplayer:\n  speed: 7\n"))
	if err != nil {
		t.Fatalf("ParseDodge() failed: %v", err)
	}

	if cfg.Canvas.Width != 320 {
		t.Errorf("canvas.width = %v, expected 320", cfg.Canvas.Width)
	}
	if cfg.Player.Speed != 7 {
		t.Errorf("player.speed = %v, expected 7", cfg.Player.Speed)
	}
	// Untouched keys keep their defaults
	if cfg.Canvas.Height != 600 || cfg.Hazards.SpawnInterval != 40 {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DodgeConfig)
	}{
		{"zero canvas width", func(c *DodgeConfig) { c.Canvas.Width = 0 }},
		{"negative speed", func(c *DodgeConfig) { c.Player.Speed = -1 }},
		{"zero spawn interval", func(c *DodgeConfig) { c.Hazards.SpawnInterval = 0 }},
		{"inverted radius range", func(c *DodgeConfig) { c.Hazards.MaxRadius = 10 }},
		{"inverted speed range", func(c *DodgeConfig) { c.Hazards.MaxSpeed = 1 }},
		{"negative phase seed", func(c *DodgeConfig) { c.Hazards.PhaseSeed = -5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDodgeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
		})
	}

	if err := DefaultDodgeConfig().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadDodgeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodge.yaml")
	if err := os.WriteFile(path, []byte("hazards:\n  spawn_interval: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodge(path)
	if err != nil {
		t.Fatalf("LoadDodge() failed: %v", err)
	}
	if cfg.Hazards.SpawnInterval != 25 {
		t.Errorf("spawn_interval = %d, expected 25", cfg.Hazards.SpawnInterval)
	}
}

func TestLoadDodgeCustomPathErrors(t *testing.T) {
	if _, err := LoadDodge(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing explicit config should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("canvas:\n  width: -4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadDodge(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid explicit config should wrap ErrInvalid, got %v", err)
	}
}

func TestWatcherPublishesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodge.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("player:\n  speed: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Updates:
		if cfg.Player.Speed != 9 {
			t.Errorf("reloaded speed = %v, expected 9", cfg.Player.Speed)
		}
	case err := <-w.Errors:
		t.Fatalf("unexpected watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatchMissingFile(t *testing.T) {
	if _, err := Watch(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("watching a missing file should fail")
	}
}

func TestResolvePath(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	if got := ResolvePath(); got != "" {
		t.Fatalf("ResolvePath() = %q, expected none", got)
	}

	local := filepath.Join("configs", FileName)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(local, []byte("player:\n  speed: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := ResolvePath(); got != local {
		t.Errorf("ResolvePath() = %q, expected %q", got, local)
	}
	if cfg, _ := LoadDodge(""); cfg.Player.Speed != 6 {
		t.Errorf("LoadDodge() should pick up the local file, speed = %v", cfg.Player.Speed)
	}

	user := filepath.Join(home, ".arcade", "configs", FileName)
	if err := os.MkdirAll(filepath.Dir(user), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(user, []byte("player:\n  speed: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := ResolvePath(); got != user {
		t.Errorf("ResolvePath() = %q, expected the user file %q", got, user)
	}
	if cfg, _ := LoadDodge(""); cfg.Player.Speed != 4 {
		t.Errorf("user file should win, speed = %v", cfg.Player.Speed)
	}
}
