package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/virus-dodge/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the tuning file",
}

var configShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print the tuning that would be used",
	Long: `Print the effective tuning as YAML. Without a path, the normal
search order applies: ~/.arcade/configs/dodge.yaml, ./configs/dodge.yaml,
then the built-in defaults.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		cfg, err := config.LoadDodge(path)
		if err != nil {
			return err
		}
		if path == "" {
			path = config.ResolvePath()
		}
		if path == "" {
			path = "built-in defaults"
		}
		fmt.Printf("# source: %s\n", path)
		return yaml.NewEncoder(os.Stdout).Encode(cfg)
	},
}

var configDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in tuning file",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck // Stdout
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Validate a tuning file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if _, err := config.LoadDodge(args[0]); err != nil {
			return err
		}
		fmt.Printf("%s: ok\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configDefaultsCmd, configCheckCmd)
}
