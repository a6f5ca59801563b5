package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/gethexy/pkg/config"
	"github.com/philipparndt/gethexy/pkg/docking"
	"github.com/philipparndt/gethexy/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	dockItem   []float64
	dockTarget []float64
	dockScale  float64
)

var dockCmd = &cobra.Command{
	Use:   "dock",
	Short: "Classify one docking sample",
	Long: `Measure an item rectangle against a target rectangle with the configured
crown thresholds and print the zone. Rectangles are x,y,width,height.`,
	Example: "  gethexy dock --item 1195,580,68,68 --target 410,38,546,437 --scale 768",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		item, err := rectFlag("item", dockItem)
		if err != nil {
			return err
		}
		target, err := rectFlag("target", dockTarget)
		if err != nil {
			return err
		}

		return runDock(cfg, item, target, dockScale, cmd.OutOrStdout())
	},
}

func init() {
	dockCmd.Flags().Float64SliceVar(&dockItem, "item", nil, "Item rectangle x,y,w,h")
	dockCmd.Flags().Float64SliceVar(&dockTarget, "target", nil, "Target rectangle x,y,w,h")
	dockCmd.Flags().Float64Var(&dockScale, "scale", 768, "Reference scale, the smaller viewport dimension")
	dockCmd.MarkFlagRequired("item")
	dockCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(dockCmd)
}

func rectFlag(name string, values []float64) (geometry.Rect, error) {
	if len(values) != 4 {
		return geometry.Rect{}, fmt.Errorf("--%s needs 4 values (x,y,w,h), got %d", name, len(values))
	}
	return geometry.NewRect(values[0], values[1], values[2], values[3]), nil
}

func runDock(cfg *config.Config, item, target geometry.Rect, scale float64, out io.Writer) error {
	docker, err := docking.New(cfg.Docking())
	if err != nil {
		return err
	}

	session := docker.Begin()
	reading := docker.End(session, item, target, scale)
	near, dock := docker.Thresholds().Resolve(scale)
	socket := docker.Socket(target)

	fmt.Fprintf(out, "Zone: %s\n", reading.Zone)
	fmt.Fprintf(out, "Distance: %.2f (dock < %.2f, near < %.2f)\n", reading.Distance, dock, near)
	fmt.Fprintf(out, "Socket: %.2f, %.2f\n", socket.X, socket.Y)
	if reading.Snap != nil {
		fmt.Fprintf(out, "Snap: item moves by %.2f, %.2f to %.2f, %.2f\n",
			reading.Snap.Delta.X, reading.Snap.Delta.Y,
			reading.Snap.Item.Min.X, reading.Snap.Item.Min.Y)
	}
	return nil
}
