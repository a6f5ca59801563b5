package main

import (
	"fyne.io/fyne/v2"
	"github.com/philipparndt/gethexy/internal/app"
	"github.com/spf13/cobra"
)

var (
	runWatch  bool
	runWidth  float32
	runHeight float32
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the desktop app",
	Long:  "Open the onboarding flow in a window. With --watch the config file is reloaded when it changes.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(app.Options{
			ConfigPath: configPath,
			Watch:      runWatch,
			Size:       fyne.NewSize(runWidth, runHeight),
			LeadOutput: cmd.OutOrStdout(),
		})
	},
}

func init() {
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "Reload the config file when it changes")
	runCmd.Flags().Float32Var(&runWidth, "width", 1366, "Window width")
	runCmd.Flags().Float32Var(&runHeight, "height", 768, "Window height")
	rootCmd.AddCommand(runCmd)
}
