package viewer

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/philipparndt/gethexy/pkg/geometry"
	"github.com/philipparndt/gethexy/pkg/perimeter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexagonPoints = []geometry.Vector2{
	{X: 15, Y: 130}, {X: 75, Y: 15}, {X: 225, Y: 15}, {X: 285, Y: 130},
	{X: 225, Y: 245}, {X: 75, Y: 245}, {X: 15, Y: 130},
}

func newHexagonTracker(t *testing.T, opts ...perimeter.Option) *perimeter.Tracker {
	t.Helper()
	tracker, err := perimeter.New(hexagonPoints, opts...)
	require.NoError(t, err)
	return tracker
}

func TestFaceOutline(t *testing.T) {
	face := FaceOutline(geometry.ViewBox{Width: 300, Height: 260})

	require.Len(t, face, 6)
	assert.Equal(t, geometry.NewVector2(75, 0), face[0])
	assert.Equal(t, geometry.NewVector2(300, 130), face[2])
	assert.Equal(t, geometry.NewVector2(0, 130), face[5])
}

func TestRenderHexagon(t *testing.T) {
	tracker := newHexagonTracker(t)

	half := RenderHexagon(tracker, tracker.PositionAtPercent(50), DefaultStyle(), 300, 260)
	start := RenderHexagon(tracker, tracker.Resting(), DefaultStyle(), 300, 260)

	tests := []struct {
		name  string
		img   *image.RGBA
		x, y  int
		color any
	}{
		{"outside the face", half, 1, 1, Background},
		{"face", half, 150, 130, FaceColor},
		{"traced top edge", half, 150, 15, GoldColor},
		{"untraced bottom edge", half, 150, 245, TrackColor},
		{"disc at half way", half, 285, 130, GoldColor},
		{"untraced top edge at start", start, 150, 15, TrackColor},
		{"disc at start", start, 15, 130, GoldColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.color, tt.img.RGBAAt(tt.x, tt.y))
		})
	}
}

func TestRenderHexagonScales(t *testing.T) {
	tracker := newHexagonTracker(t)

	// 600x600 fits the view box at scale 2, centered vertically
	img := RenderHexagon(tracker, tracker.PositionAtPercent(25), DefaultStyle(), 600, 600)
	offsetY := (600 - 520) / 2

	assert.Equal(t, GoldColor, img.RGBAAt(300, 30+offsetY))
	assert.Equal(t, FaceColor, img.RGBAAt(300, 260+offsetY))
}

func TestWriteSnapshot(t *testing.T) {
	tracker := newHexagonTracker(t)

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, tracker, 75, DefaultStyle(), 320, 240))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 320, 240), img.Bounds())

	assert.Error(t, WriteSnapshot(&buf, tracker, 75, DefaultStyle(), 0, 240))
}

func TestRingOutlineLeavesHole(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	newPainter(img).fillPolygon(RingOutline(geometry.NewVector2(50, 50), 40), GoldColor)

	assert.Equal(t, GoldColor, img.RGBAAt(50, 50+34))
	assert.Equal(t, uint8(0), img.RGBAAt(50, 50).A)
}
