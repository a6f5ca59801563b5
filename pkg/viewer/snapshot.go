package viewer

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/philipparndt/gethexy/pkg/perimeter"
)

// RenderHexagon draws the tracker's boundary with the disc at p into a new
// image of the given size.
func RenderHexagon(tracker *perimeter.Tracker, p perimeter.Position, style Style, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	newPainter(img).fill(Background)
	DrawHexagon(img, style, tracker.Polygon().Points(), tracker.TracedPath(p), tracker.Point(p))
	return img
}

// WriteSnapshot renders the hexagon at progress percent and encodes it as
// PNG.
func WriteSnapshot(w io.Writer, tracker *perimeter.Tracker, progress float64, style Style, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid snapshot size %dx%d", width, height)
	}

	img := RenderHexagon(tracker, tracker.PositionAtPercent(progress), style, width, height)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
