package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/virus-dodge/internal/registry"
	"github.com/vovakirdan/virus-dodge/internal/storage"
)

func newTestSSHServer(t *testing.T) *SSHServer {
	t.Helper()
	if !registry.Exists("stub") {
		registry.Register("stub", func() registry.Game { return &stubGame{} })
	}

	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.GameID = "stub"

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	return srv
}

func TestSSHServerUnknownGame(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.GameID = "no-such-game"

	if _, err := NewSSHServer(cfg); err == nil {
		t.Fatal("expected an error for an unregistered game")
	}
}

func TestSSHServerShutdownClosesStore(t *testing.T) {
	srv := newTestSSHServer(t)
	if srv.store == nil {
		t.Fatal("store should be open")
	}

	run := storage.Run{GameID: "stub", Score: 3, Source: storage.SourceSSH}
	if _, err := srv.store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun before shutdown: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if _, err := srv.store.SaveRun(run); err == nil {
		t.Error("store should be closed once the server has drained")
	}
}
