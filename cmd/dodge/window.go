package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/virus-dodge/internal/platform/gui"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Virus Dodge in a desktop window on the full 400x600 canvas.
Unlike the terminal, the window sees real key releases, so holding
a direction moves smoothly.

Controls:
  Left/A, Right/D  - Move
  P                - Pause
  R/Enter          - Restart (after game over)
  Q/Esc            - Quit

Examples:
  dodge window
  dodge window --scale 1.5 --seed 7
  dodge window --config ./dodge.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window pixels per canvas unit")
}

func runWindow(_ *cobra.Command, _ []string) error {
	if err := useConfig(flagConfig); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	watcher := startWatcher()
	if watcher != nil {
		defer watcher.Close()
	}

	return gui.Run(gui.Options{
		Store:    store,
		Seed:     flagSeed,
		TickRate: flagFPS,
		Scale:    flagScale,
		Debug:    flagDebug,
		Watcher:  watcher,
		Logger:   logger.WithPrefix("dodge/window"),
	})
}
