package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gethexy/pkg/geometry"
	"github.com/philipparndt/gethexy/pkg/perimeter"
)

// HexagonView shows the hexagon track and lets the user drag the disc round
// it. A drag only starts when the press lands on the disc.
type HexagonView struct {
	widget.BaseWidget

	tracker  *perimeter.Tracker
	style    Style
	session  *perimeter.Session
	ignoring bool

	onDragStart func()
	onDragEnd   func(perimeter.Position)
	onProgress  func(float64)
}

// NewHexagonView creates a view for tracker
func NewHexagonView(tracker *perimeter.Tracker, style Style) *HexagonView {
	v := &HexagonView{
		tracker: tracker,
		style:   style,
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetOnDragStart sets the callback for when the disc is grabbed
func (v *HexagonView) SetOnDragStart(callback func()) {
	v.onDragStart = callback
}

// SetOnDragEnd sets the callback for when the disc is released
func (v *HexagonView) SetOnDragEnd(callback func(perimeter.Position)) {
	v.onDragEnd = callback
}

// SetOnProgress sets the callback for progress changes while dragging
func (v *HexagonView) SetOnProgress(callback func(percent float64)) {
	v.onProgress = callback
}

// Tracker returns the tracker behind the view
func (v *HexagonView) Tracker() *perimeter.Tracker {
	return v.tracker
}

// Dragging reports whether a disc drag is in progress
func (v *HexagonView) Dragging() bool {
	return v.session.Active()
}

// DiscPosition returns the position currently shown
func (v *HexagonView) DiscPosition() perimeter.Position {
	if v.session.Active() {
		return v.session.Position()
	}
	return v.tracker.Resting()
}

// transform maps view box coordinates onto the widget
func (v *HexagonView) transform() geometry.Transform {
	size := v.Size()
	return v.style.ViewBox.Fit(float64(size.Width), float64(size.Height))
}

func (v *HexagonView) toLocal(pos fyne.Position) geometry.Vector2 {
	return v.transform().ToLocal(geometry.NewVector2(float64(pos.X), float64(pos.Y)))
}

// HitDisc reports whether pos, in widget coordinates, is on the disc
func (v *HexagonView) HitDisc(pos fyne.Position) bool {
	disc := geometry.NewCircle(v.tracker.Point(v.tracker.Resting()), v.style.DiscRadius*discHitSlop)
	return disc.Contains(v.toLocal(pos))
}

// Dragged handles pointer movement. The first event of a gesture decides
// whether the disc was grabbed.
func (v *HexagonView) Dragged(event *fyne.DragEvent) {
	if v.ignoring {
		return
	}

	if !v.session.Active() {
		press := fyne.NewPos(event.Position.X-event.Dragged.DX, event.Position.Y-event.Dragged.DY)
		if !v.HitDisc(press) {
			v.ignoring = true
			return
		}

		v.session = v.tracker.BeginDrag()
		if v.onDragStart != nil {
			v.onDragStart()
		}
	}

	p, changed := v.tracker.UpdateDrag(v.session, v.toLocal(event.Position))
	if !changed {
		return
	}

	v.Refresh()
	if v.onProgress != nil {
		v.onProgress(v.tracker.ProgressPercent(p))
	}
}

// DragEnd commits the drag
func (v *HexagonView) DragEnd() {
	v.ignoring = false
	if !v.session.Active() {
		return
	}

	resting := v.tracker.EndDrag(v.session)
	v.session = nil
	v.Refresh()

	if v.onDragEnd != nil {
		v.onDragEnd(resting)
	}
}

// Cancel abandons a drag in progress, leaving the disc where it rested
func (v *HexagonView) Cancel() {
	v.ignoring = false
	if !v.session.Active() {
		return
	}

	v.tracker.CancelDrag(v.session)
	v.session = nil
	v.Refresh()
}

// CreateRenderer creates the renderer for the widget
func (v *HexagonView) CreateRenderer() fyne.WidgetRenderer {
	r := &hexagonRenderer{view: v}

	r.raster = canvas.NewRaster(func(w, h int) image.Image {
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		p := v.DiscPosition()
		DrawHexagon(img, v.style, v.tracker.Polygon().Points(), v.tracker.TracedPath(p), v.tracker.Point(p))
		return img
	})

	r.top = canvas.NewText("GET", TitleColor)
	r.bottom = canvas.NewText("HEXY", TitleColor)
	for _, text := range []*canvas.Text{r.top, r.bottom} {
		text.TextStyle = fyne.TextStyle{Bold: true}
		text.Alignment = fyne.TextAlignCenter
	}

	r.objects = []fyne.CanvasObject{r.raster, r.top, r.bottom}
	return r
}

// hexagonRenderer implements fyne.WidgetRenderer
type hexagonRenderer struct {
	view    *HexagonView
	raster  *canvas.Raster
	top     *canvas.Text
	bottom  *canvas.Text
	objects []fyne.CanvasObject
}

func (r *hexagonRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.raster.Move(fyne.NewPos(0, 0))

	t := r.view.transform()
	textSize := float32(32 * t.Scale)
	if textSize < 12 {
		textSize = 12
	}

	center := t.ToSurface(geometry.NewVector2(r.view.style.ViewBox.Width/2, r.view.style.ViewBox.Height/2))
	for i, text := range []*canvas.Text{r.top, r.bottom} {
		text.TextSize = textSize
		ts := text.MinSize()
		y := float32(center.Y) - ts.Height + float32(i)*ts.Height
		text.Resize(fyne.NewSize(size.Width, ts.Height))
		text.Move(fyne.NewPos(0, y))
	}
}

func (r *hexagonRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.view.style.ViewBox.Width/2), float32(r.view.style.ViewBox.Height/2))
}

func (r *hexagonRenderer) Refresh() {
	r.raster.Refresh()
	r.top.Refresh()
	r.bottom.Refresh()
}

func (r *hexagonRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *hexagonRenderer) Destroy() {}
