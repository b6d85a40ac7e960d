package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/virus-dodge/internal/config"
	"github.com/vovakirdan/virus-dodge/internal/games/dodge"
	"github.com/vovakirdan/virus-dodge/internal/platform/tui"
	"github.com/vovakirdan/virus-dodge/internal/registry"
	"github.com/vovakirdan/virus-dodge/internal/storage"
)

var (
	flagConfig string
	flagWatch  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game of Virus Dodge in the terminal.

Controls:
  Left/A, Right/D  - Move (hold or repeat)
  P/Esc            - Pause
  R/Enter          - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Tuning is read from --config, then ~/.arcade/configs/dodge.yaml,
then ./configs/dodge.yaml, then the built-in defaults.
With --watch, edits to the file apply on the next restart.

Examples:
  dodge play
  dodge play --seed 42
  dodge play --config ./dodge.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")
	windowCmd.Flags().AddFlagSet(playCmd.Flags())
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := useConfig(flagConfig); err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	game, err := registry.Create(dodge.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	watcher := startWatcher()
	if watcher != nil {
		defer watcher.Close()
	}

	// The alt screen owns the terminal, so in-game logs go to a file
	sessionLog, closeLog := fileLogger("dodge/tui")
	defer closeLog()

	return tui.Run(game, store, runtimeConfig(width, height), tui.ModelOptions{
		Source:  storage.SourceTerminal,
		Player:  os.Getenv("USER"),
		Watcher: watcher,
		Logger:  sessionLog,
	})
}

// useConfig points new games at a custom tuning file. An explicit path
// that cannot be read or parsed is an error rather than a silent fallback.
func useConfig(path string) error {
	if path != "" {
		if _, err := config.LoadDodge(path); err != nil {
			return err
		}
	}
	dodge.SetConfigPath(path)
	return nil
}

// fileLogger logs to ~/.arcade/dodge.log. Without a usable file the
// returned logger discards everything.
func fileLogger(prefix string) (*log.Logger, func()) {
	discard := log.New(io.Discard)

	home, err := os.UserHomeDir()
	if err != nil {
		return discard, func() {}
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "dodge.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discard, func() {}
	}

	l := log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: prefix})
	if flagDebug {
		l.SetLevel(log.DebugLevel)
	}
	return l, func() { f.Close() }
}

// openStore opens the score database; the game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// startWatcher watches the tuning file named by --config when --watch is set.
func startWatcher() *config.Watcher {
	if !flagWatch {
		return nil
	}
	path := flagConfig
	if path == "" {
		path = config.ResolvePath()
	}
	if path == "" {
		logger.Warn("--watch needs a tuning file; none found")
		return nil
	}

	w, err := config.Watch(path)
	if err != nil {
		logger.Warn("could not watch config", "path", path, "error", err)
		return nil
	}
	logger.Debug("watching config", "path", path)
	return w
}
