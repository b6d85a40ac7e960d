// dodge is Virus Dodge: slide left and right, let the viruses fall past.
//
// Usage:
//
//	dodge play             - Play in the terminal
//	dodge window           - Play in a desktop window
//	dodge serve            - Start SSH server for remote play
//	dodge scores           - Show high scores
//	dodge config           - Print or check the tuning file
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--debug         - Panic on malformed entities
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/virus-dodge/internal/core"
	"github.com/vovakirdan/virus-dodge/internal/games/dodge"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "dodge"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Virus Dodge - dodge falling viruses in your terminal",
	Long: `Virus Dodge is an arcade avoidance game. Move left and right along
the bottom of the screen while spiky viruses fall from the top.
One touch and the run is over; every tick you survive scores a point.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print or check the tuning file

Examples:
  dodge play
  dodge play --seed 42 --config ./dodge.yaml --watch
  dodge window --scale 1.5
  dodge serve --ssh :2222
  dodge scores --browse`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
		dodge.SetAssertions(flagDebug)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable entity assertions and debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime knobs shared by every front end.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Debug:    flagDebug,
	}
}
