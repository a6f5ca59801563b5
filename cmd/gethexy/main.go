package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gethexy/internal/logging"
	"github.com/philipparndt/gethexy/pkg/config"
	"github.com/philipparndt/gethexy/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "gethexy",
	Short: "Drag the disc round the hexagon, drop the jewel in the crown",
	Long: `gethexy runs the Get Hexy onboarding flow: an intro, a title card, a
hexagon tracing game, a crown and jewel docking game and a lead form.

Besides the desktop app it offers tools to replay drag traces through the
perimeter tracker, classify docking samples and render the hexagon to PNG.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Setup(logLevel, os.Stderr)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (defaults are built in)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// loadConfig returns the config named by --config, or the defaults
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
