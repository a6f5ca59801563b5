package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/gethexy/pkg/analysis"
	"github.com/philipparndt/gethexy/pkg/config"
	"github.com/philipparndt/gethexy/pkg/perimeter"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display information about the configured hexagon",
	Long:  "Show the view box, bounds, perimeter and edge statistics of the drag boundary, plus the crown thresholds and phase timings.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runInfo(cfg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cfg *config.Config, out io.Writer) error {
	tracker, err := perimeter.New(cfg.HexagonPoints(), cfg.TrackerOptions()...)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeBoundary(tracker)
	vb := cfg.ViewBox()

	fmt.Fprintln(out, "Hexagon Information")
	fmt.Fprintln(out, "===================")
	if configPath != "" {
		fmt.Fprintf(out, "Config: %s\n", configPath)
	}
	fmt.Fprintf(out, "View Box: %.0f x %.0f\n\n", vb.Width, vb.Height)

	fmt.Fprintln(out, "Boundary:")
	fmt.Fprintf(out, "  Edges: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "  Perimeter: %.6f units\n", result.Perimeter)
	fmt.Fprintf(out, "  Hop Budget: %d\n", cfg.Hexagon.HopBudget)
	fmt.Fprintf(out, "  End Tolerance: %.4f\n\n", cfg.Hexagon.EndTolerance)

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.Bounds.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.Bounds.Max()))
	fmt.Fprintf(out, "  Center: %s\n", analysis.FormatVector(result.Bounds.Center()))
	fmt.Fprintf(out, "  Diagonal: %.6f units\n\n", result.Bounds.Diagonal())

	fmt.Fprintln(out, "Edge Lengths:")
	fmt.Fprintf(out, "  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(out, "  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(out, "  Average: %.6f units\n\n", result.AvgEdgeLength)

	fmt.Fprintln(out, "Crown:")
	fmt.Fprintf(out, "  Near Ratio: %.3f\n", cfg.Crown.NearRatio)
	fmt.Fprintf(out, "  Dock Ratio: %.3f\n", cfg.Crown.DockRatio)
	fmt.Fprintf(out, "  Socket Offset: %.2f\n\n", cfg.Crown.SocketOffset)

	fmt.Fprintln(out, "Phases:")
	for _, step := range cfg.Steps() {
		if step.Timed() {
			fmt.Fprintf(out, "  %-8s %s\n", step.Phase, step.Duration)
		} else {
			fmt.Fprintf(out, "  %-8s on event\n", step.Phase)
		}
	}
	return nil
}
