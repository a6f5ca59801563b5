package viewer

import (
	"image"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gethexy/pkg/docking"
	"github.com/philipparndt/gethexy/pkg/flow"
	"github.com/philipparndt/gethexy/pkg/geometry"
	"github.com/philipparndt/gethexy/pkg/layout"
)

// Image proportions, height over width
const (
	CrownAspect  = 0.8
	PillowAspect = 0.35
)

// CrownView is the crown scene: a pillow, a crown and a jewel the user
// drags into the crown's socket.
type CrownView struct {
	widget.BaseWidget

	docker  *docking.Docker
	enlarge float64

	showPillow bool
	showCrown  bool
	showJewel  bool
	hidden     bool

	// jewel center relative to the viewport center
	offset   geometry.Vector2
	viewport layout.Viewport
	session  *docking.Session
	zone     docking.Zone
	docked   bool
	ignoring bool

	onDragStart func()
	onDragEnd   func()
	onDocked    func(docking.Snap)
}

// NewCrownView creates the scene. enlarge scales the jewel while it is
// near the crown.
func NewCrownView(docker *docking.Docker, enlarge float64) *CrownView {
	v := &CrownView{docker: docker, enlarge: enlarge}
	v.ExtendBaseWidget(v)
	return v
}

// SetOnDragStart sets the callback for when the jewel is grabbed
func (v *CrownView) SetOnDragStart(callback func()) {
	v.onDragStart = callback
}

// SetOnDragEnd sets the callback for when the jewel is released
func (v *CrownView) SetOnDragEnd(callback func()) {
	v.onDragEnd = callback
}

// SetOnDocked sets the callback for when the jewel snaps into the crown
func (v *CrownView) SetOnDocked(callback func(docking.Snap)) {
	v.onDocked = callback
}

// Reveal shows the parts of the scene belonging to phase
func (v *CrownView) Reveal(phase flow.Phase) {
	switch phase {
	case flow.Pillow:
		v.showPillow = true
	case flow.Crown:
		v.showPillow, v.showCrown = true, true
	case flow.Jewel:
		v.showPillow, v.showCrown, v.showJewel = true, true, true
		v.resetJewel()
	}
	v.Refresh()
}

// ClearScene blanks the scene once the jewel has docked
func (v *CrownView) ClearScene() {
	v.hidden = true
	v.Refresh()
}

// Docked reports whether the jewel has snapped into the crown
func (v *CrownView) Docked() bool {
	return v.docked
}

// Dragging reports whether a jewel drag is in progress
func (v *CrownView) Dragging() bool {
	return v.session.Active()
}

// Zone returns the zone of the last sample
func (v *CrownView) Zone() docking.Zone {
	return v.zone
}

// SetDocker swaps the docker between drags
func (v *CrownView) SetDocker(docker *docking.Docker, enlarge float64) {
	if v.session.Active() {
		return
	}
	v.docker = docker
	v.enlarge = enlarge
}

// Viewport returns the current widget size as a viewport
func (v *CrownView) Viewport() layout.Viewport {
	size := v.Size()
	return layout.Viewport{Width: float64(size.Width), Height: float64(size.Height)}
}

// CrownRect returns the crown's rectangle in widget coordinates
func (v *CrownView) CrownRect() geometry.Rect {
	return v.Viewport().CrownRect(CrownAspect)
}

// PillowRect returns the pillow's rectangle in widget coordinates
func (v *CrownView) PillowRect() geometry.Rect {
	return v.Viewport().PillowRect(PillowAspect)
}

// JewelCenter returns the jewel's center in widget coordinates
func (v *CrownView) JewelCenter() geometry.Vector2 {
	return v.Viewport().Center().Add(v.offset)
}

// JewelRect returns the jewel's rectangle, enlarged while near the crown
func (v *CrownView) JewelRect() geometry.Rect {
	factor := 1.0
	if v.zone != docking.Idle {
		factor = v.enlarge
	}
	size := v.Viewport().JewelSize(factor)
	return geometry.NewRect(0, 0, size, size).CenteredAt(v.JewelCenter())
}

func (v *CrownView) resetJewel() {
	if v.docked {
		return
	}
	v.offset = v.Viewport().JewelStart()
	v.zone = docking.Idle
}

// Resize moves the jewel back to its start when the viewport changes
func (v *CrownView) Resize(size fyne.Size) {
	v.BaseWidget.Resize(size)

	vp := v.Viewport()
	if vp != v.viewport && !v.session.Active() {
		v.viewport = vp
		v.resetJewel()
	}
}

// Dragged moves the jewel, keeping it inside the drag bounds
func (v *CrownView) Dragged(event *fyne.DragEvent) {
	if v.ignoring || v.docked || v.hidden || !v.showJewel {
		return
	}

	if !v.session.Active() {
		press := geometry.NewVector2(
			float64(event.Position.X-event.Dragged.DX),
			float64(event.Position.Y-event.Dragged.DY),
		)
		if !v.JewelRect().Contains(press) {
			v.ignoring = true
			return
		}

		v.session = v.docker.Begin()
		if v.onDragStart != nil {
			v.onDragStart()
		}
	}

	vp := v.Viewport()
	center := v.JewelCenter().Add(geometry.NewVector2(float64(event.Dragged.DX), float64(event.Dragged.DY)))
	v.offset = vp.DragBounds().Clamp(center).Sub(vp.Center())

	v.apply(v.docker.Update(v.session, v.JewelRect(), v.CrownRect(), vp.ReferenceScale()))
}

// DragEnd takes the final sample and closes the drag
func (v *CrownView) DragEnd() {
	v.ignoring = false
	if !v.session.Active() {
		return
	}

	vp := v.Viewport()
	v.apply(v.docker.End(v.session, v.JewelRect(), v.CrownRect(), vp.ReferenceScale()))
	v.session = nil

	if v.onDragEnd != nil {
		v.onDragEnd()
	}
}

// Cancel abandons a drag; the jewel stays where it was last drawn
func (v *CrownView) Cancel() {
	v.ignoring = false
	if !v.session.Active() {
		return
	}
	v.docker.Cancel(v.session)
	v.session = nil
}

func (v *CrownView) apply(reading docking.Reading) {
	v.zone = reading.Zone
	if reading.Snap != nil && !v.docked {
		v.docked = true
		v.offset = reading.Snap.Item.Center().Sub(v.Viewport().Center())
		if v.onDocked != nil {
			v.onDocked(*reading.Snap)
		}
	}
	v.Refresh()
}

// render draws the scene at w x h pixels
func (v *CrownView) render(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	size := v.Size()
	if v.hidden || size.Width <= 0 {
		return img
	}

	k := float64(w) / float64(size.Width)
	p := newPainter(img)

	if v.showPillow {
		p.fillPolygon(scalePoints(PillowOutline(v.PillowRect()), k), PillowColor)
	}
	if v.showCrown {
		crown := v.CrownRect()
		p.fillPolygon(scalePoints(CrownOutline(crown), k), GoldColor)

		radius := math.Min(crown.Size.X, crown.Size.Y) * 0.08
		p.fillPolygon(scalePoints(RingOutline(v.docker.Socket(crown), radius), k), Background)
	}
	if v.showJewel {
		p.fillPolygon(scalePoints(JewelOutline(v.JewelRect()), k), JewelColor)
	}
	return img
}

// CreateRenderer creates the renderer for the widget
func (v *CrownView) CreateRenderer() fyne.WidgetRenderer {
	raster := canvas.NewRaster(v.render)
	return &crownRenderer{
		raster:  raster,
		objects: []fyne.CanvasObject{raster},
	}
}

// crownRenderer implements fyne.WidgetRenderer
type crownRenderer struct {
	raster  *canvas.Raster
	objects []fyne.CanvasObject
}

func (r *crownRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.raster.Move(fyne.NewPos(0, 0))
}

func (r *crownRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 480)
}

func (r *crownRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *crownRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *crownRenderer) Destroy() {}
