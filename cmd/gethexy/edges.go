package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/gethexy/pkg/analysis"
	"github.com/philipparndt/gethexy/pkg/config"
	"github.com/philipparndt/gethexy/pkg/perimeter"
	"github.com/spf13/cobra"
)

var (
	edgesCount    int
	edgesLongest  bool
	edgesShortest bool
)

var edgesCmd = &cobra.Command{
	Use:   "edges",
	Short: "List the edges of the drag boundary",
	Long:  "List each edge of the configured hexagon with its length and the progress range it covers, or only the longest or shortest ones.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if edgesLongest && edgesShortest {
			return fmt.Errorf("--longest and --shortest are mutually exclusive")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runEdges(cfg, edgesCount, edgesLongest, edgesShortest, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(edgesCmd)

	edgesCmd.Flags().IntVarP(&edgesCount, "count", "n", 10, "Number of edges to display")
	edgesCmd.Flags().BoolVarP(&edgesLongest, "longest", "l", false, "Show longest edges")
	edgesCmd.Flags().BoolVarP(&edgesShortest, "shortest", "s", false, "Show shortest edges")
}

func runEdges(cfg *config.Config, count int, longest, shortest bool, out io.Writer) error {
	tracker, err := perimeter.New(cfg.HexagonPoints(), cfg.TrackerOptions()...)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeBoundary(tracker)

	var edges []analysis.EdgeInfo
	var title string

	switch {
	case longest:
		edges = analysis.FindLongestEdges(result, count)
		title = fmt.Sprintf("Top %d Longest Edges", len(edges))
	case shortest:
		edges = analysis.FindShortestEdges(result, count)
		title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
	default:
		edges = result.Edges
		if count >= 0 && len(edges) > count {
			edges = edges[:count]
		}
		title = fmt.Sprintf("Edges (showing %d of %d)", len(edges), result.EdgeCount)
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Perimeter: %.6f units\n\n", result.Perimeter)

	if len(edges) == 0 {
		fmt.Fprintln(out, "No edges to show.")
		return nil
	}

	fmt.Fprintf(out, "%-6s %-20s %-20s %-12s %s\n", "Edge", "Start", "End", "Length", "Progress")
	fmt.Fprintln(out, "--------------------------------------------------------------------------------")
	for _, edge := range edges {
		fmt.Fprintf(out, "%-6d %-20s %-20s %-12.6f %6.2f%% - %6.2f%%\n",
			edge.Index,
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length,
			edge.StartProgress,
			edge.EndProgress)
	}
	return nil
}
