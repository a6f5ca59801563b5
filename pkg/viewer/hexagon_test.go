package viewer

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/gethexy/pkg/perimeter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drag replays a gesture the way the desktop driver reports it: each event
// carries the current position and the delta since the previous one.
func drag(d fyne.Draggable, points ...fyne.Position) {
	prev := points[0]
	for _, p := range points[1:] {
		d.Dragged(&fyne.DragEvent{
			PointEvent: fyne.PointEvent{Position: p},
			Dragged:    fyne.NewDelta(p.X-prev.X, p.Y-prev.Y),
		})
		prev = p
	}
}

func newTestHexagonView(t *testing.T, tracker *perimeter.Tracker) *HexagonView {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	v := NewHexagonView(tracker, DefaultStyle())
	v.Resize(fyne.NewSize(300, 260))
	return v
}

func TestHexagonViewDragAlongEdge(t *testing.T) {
	v := newTestHexagonView(t, newHexagonTracker(t))

	started := false
	var progress []float64
	var ended *perimeter.Position
	v.SetOnDragStart(func() { started = true })
	v.SetOnProgress(func(p float64) { progress = append(progress, p) })
	v.SetOnDragEnd(func(p perimeter.Position) { ended = &p })

	drag(v, fyne.NewPos(15, 130), fyne.NewPos(30, 101.25), fyne.NewPos(45, 72.5))

	assert.True(t, started)
	assert.True(t, v.Dragging())
	require.Len(t, progress, 2)
	assert.Less(t, progress[0], progress[1])
	assert.Equal(t, 0, v.DiscPosition().Edge)
	assert.InDelta(t, 0.5, v.DiscPosition().T, 1e-6)

	v.DragEnd()
	require.NotNil(t, ended)
	assert.False(t, v.Dragging())
	assert.InDelta(t, 0.5, ended.T, 1e-6)
	assert.Equal(t, *ended, v.Tracker().Resting())
}

func TestHexagonViewIgnoresPressOffDisc(t *testing.T) {
	tracker := newHexagonTracker(t)
	v := newTestHexagonView(t, tracker)

	drag(v, fyne.NewPos(150, 130), fyne.NewPos(45, 72.5))
	assert.False(t, v.Dragging())

	// Passing over the disc later in the same gesture does not grab it
	drag(v, fyne.NewPos(45, 72.5), fyne.NewPos(15, 130), fyne.NewPos(45, 72.5))
	assert.False(t, v.Dragging())

	v.DragEnd()
	assert.Equal(t, perimeter.Position{}, tracker.Resting())

	// A fresh gesture on the disc works
	drag(v, fyne.NewPos(15, 130), fyne.NewPos(45, 72.5))
	assert.True(t, v.Dragging())
}

func TestHexagonViewCancel(t *testing.T) {
	tracker := newHexagonTracker(t)
	v := newTestHexagonView(t, tracker)

	drag(v, fyne.NewPos(15, 130), fyne.NewPos(45, 72.5))
	v.Cancel()

	assert.False(t, v.Dragging())
	assert.Equal(t, perimeter.Position{}, tracker.Resting())
	assert.Equal(t, perimeter.Position{}, v.DiscPosition())
}

func TestHexagonViewMapsThroughViewBox(t *testing.T) {
	v := newTestHexagonView(t, newHexagonTracker(t))
	v.Resize(fyne.NewSize(600, 520))

	assert.True(t, v.HitDisc(fyne.NewPos(30, 260)))
	assert.False(t, v.HitDisc(fyne.NewPos(15, 130)))

	drag(v, fyne.NewPos(30, 260), fyne.NewPos(90, 145))
	assert.InDelta(t, 0.5, v.DiscPosition().T, 1e-6)
}

func TestHexagonViewCompletes(t *testing.T) {
	completed := 0
	tracker := newHexagonTracker(t,
		perimeter.WithStart(perimeter.Position{Edge: 5, T: 0.5}),
		perimeter.WithOnComplete(func(perimeter.Position) { completed++ }),
	)
	v := newTestHexagonView(t, tracker)

	// Disc rests half way along the closing edge, (45, 187.5)
	drag(v, fyne.NewPos(45, 187.5), fyne.NewPos(30, 158.75), fyne.NewPos(15.2, 130.4))
	v.DragEnd()

	assert.Equal(t, 1, completed)
	assert.True(t, tracker.Completed())
}

func TestHexagonViewKeepsWidgetGeometry(t *testing.T) {
	v := newTestHexagonView(t, newHexagonTracker(t))

	var w fyne.Widget = v
	w.Move(fyne.NewPos(12, 34))
	assert.Equal(t, fyne.NewPos(12, 34), w.Position())
	assert.Equal(t, perimeter.Position{}, v.DiscPosition())
}
