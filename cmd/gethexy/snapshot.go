package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gethexy/pkg/config"
	"github.com/philipparndt/gethexy/pkg/perimeter"
	"github.com/philipparndt/gethexy/pkg/viewer"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	snapshotProgress float64
	snapshotOutput   string
	snapshotSize     string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the hexagon to a PNG file",
	Long:  "Render the hexagon with the track traced up to the given progress percentage.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		width, height, err := parseSize(snapshotSize)
		if err != nil {
			return err
		}

		return writeSnapshot(cfg, snapshotOutput, snapshotProgress, width, height)
	},
}

func init() {
	snapshotCmd.Flags().Float64VarP(&snapshotProgress, "progress", "p", 0, "Progress percentage to trace (0-100)")
	snapshotCmd.Flags().StringVarP(&snapshotOutput, "output", "o", "hexagon.png", "Output PNG file")
	snapshotCmd.Flags().StringVar(&snapshotSize, "size", "600x520", "Image size WxH")
	rootCmd.AddCommand(snapshotCmd)
}

func parseSize(s string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("invalid size %q, expected WxH: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q, must be positive", s)
	}
	return w, h, nil
}

func writeSnapshot(cfg *config.Config, path string, progress float64, width, height int) error {
	tracker, err := perimeter.New(cfg.HexagonPoints(), cfg.TrackerOptions()...)
	if err != nil {
		return err
	}

	style := viewer.Style{
		ViewBox:     cfg.ViewBox(),
		DiscRadius:  cfg.Hexagon.DiscRadius,
		StrokeWidth: cfg.Hexagon.StrokeWidth,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := viewer.WriteSnapshot(f, tracker, progress, style, width, height); err != nil {
		return err
	}

	log.Info().
		Str("file", path).
		Float64("progress", progress).
		Int("width", width).
		Int("height", height).
		Msg("snapshot: written")
	return f.Close()
}
