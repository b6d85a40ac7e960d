package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/virus-dodge/internal/config"
	"github.com/vovakirdan/virus-dodge/internal/core"
	"github.com/vovakirdan/virus-dodge/internal/games/dodge"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dodge.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write tuning: %v", err)
	}
	return path
}

func TestUseConfigRejectsBadPath(t *testing.T) {
	t.Cleanup(func() { dodge.SetConfigPath("") })

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{
			name:    "missing file",
			path:    filepath.Join(t.TempDir(), "typo.yaml"),
			wantErr: fs.ErrNotExist,
		},
		{
			name:    "out of range value",
			path:    writeTuning(t, "canvas:\n  width: -5\n"),
			wantErr: config.ErrInvalid,
		},
		{
			name: "malformed yaml",
			path: writeTuning(t, "player: [\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := useConfig(tt.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUseConfigAppliesToNewGames(t *testing.T) {
	t.Cleanup(func() { dodge.SetConfigPath("") })

	path := writeTuning(t, "player:\n  speed: 9\n")
	if err := useConfig(path); err != nil {
		t.Fatalf("useConfig: %v", err)
	}

	g := dodge.New()
	g.Reset(core.DefaultConfig())
	if got := g.Controller().Config().Player.Speed; got != 9 {
		t.Errorf("player speed = %v, want 9", got)
	}
}

func TestUseConfigEmptyPath(t *testing.T) {
	t.Cleanup(func() { dodge.SetConfigPath("") })

	if err := useConfig(""); err != nil {
		t.Errorf("empty path should fall back to the search order, got %v", err)
	}
}
