package viewer

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/philipparndt/gethexy/pkg/geometry"
	"golang.org/x/image/vector"
)

// Palette
var (
	TrackColor  = color.RGBA{0x80, 0x80, 0x80, 0xff}
	GoldColor   = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	TitleColor  = color.RGBA{0xd4, 0xaf, 0x37, 0xff}
	PillowColor = color.RGBA{0x8b, 0x1a, 0x2b, 0xff}
	JewelColor  = color.RGBA{0x1e, 0x90, 0xff, 0xff}
	FaceColor   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Background  = color.RGBA{0x11, 0x11, 0x11, 0xff}
)

// Segments used to approximate round caps and the disc
const circleSegments = 32

// painter fills anti-aliased shapes into an RGBA image
type painter struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func newPainter(img *image.RGBA) *painter {
	b := img.Bounds()
	return &painter{img: img, z: vector.NewRasterizer(b.Dx(), b.Dy())}
}

// fillPolygon fills a closed outline given in image coordinates
func (p *painter) fillPolygon(points []geometry.Vector2, col color.Color) {
	if len(points) < 3 {
		return
	}

	b := p.img.Bounds()
	p.z.Reset(b.Dx(), b.Dy())
	p.z.DrawOp = draw.Over

	p.z.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, pt := range points[1:] {
		p.z.LineTo(float32(pt.X), float32(pt.Y))
	}
	p.z.ClosePath()
	p.z.Draw(p.img, b, image.NewUniform(col), image.Point{})
}

// fillCircle fills a disc
func (p *painter) fillCircle(c geometry.Circle, col color.Color) {
	if c.Radius <= 0 {
		return
	}
	p.fillPolygon(c.Points(circleSegments), col)
}

// strokePath draws a polyline with round caps and joins
func (p *painter) strokePath(points []geometry.Vector2, width float64, col color.Color) {
	if len(points) == 0 || width <= 0 {
		return
	}

	half := width / 2
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		d := b.Sub(a)
		length := d.Length()
		if length == 0 {
			continue
		}

		n := geometry.NewVector2(-d.Y/length*half, d.X/length*half)
		p.fillPolygon([]geometry.Vector2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, col)
	}

	for _, pt := range points {
		p.fillCircle(geometry.NewCircle(pt, half), col)
	}
}

// fill paints the whole image
func (p *painter) fill(col color.Color) {
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// toSurface maps a list of view box points through t
func toSurface(t geometry.Transform, points []geometry.Vector2) []geometry.Vector2 {
	out := make([]geometry.Vector2, len(points))
	for i, pt := range points {
		out[i] = t.ToSurface(pt)
	}
	return out
}

// FaceOutline returns the hexagonal face the track is drawn on: corners at
// 25% and 75% of the width along the top and bottom edges, and at half
// height on the sides.
func FaceOutline(vb geometry.ViewBox) []geometry.Vector2 {
	w, h := vb.Width, vb.Height
	return []geometry.Vector2{
		{X: w * 0.25, Y: 0},
		{X: w * 0.75, Y: 0},
		{X: w, Y: h / 2},
		{X: w * 0.75, Y: h},
		{X: w * 0.25, Y: h},
		{X: 0, Y: h / 2},
	}
}

// DrawHexagon renders the face, the full track, the traced part of it and
// the disc, fitted into img.
func DrawHexagon(img *image.RGBA, style Style, track, traced []geometry.Vector2, disc geometry.Vector2) {
	b := img.Bounds()
	t := style.ViewBox.Fit(float64(b.Dx()), float64(b.Dy()))
	stroke := style.StrokeWidth * t.Scale

	p := newPainter(img)
	p.fillPolygon(toSurface(t, FaceOutline(style.ViewBox)), FaceColor)
	p.strokePath(toSurface(t, track), stroke, TrackColor)
	if len(traced) > 1 {
		p.strokePath(toSurface(t, traced), stroke, GoldColor)
	}
	p.fillCircle(geometry.NewCircle(t.ToSurface(disc), style.DiscRadius*t.Scale), GoldColor)
}

// CrownOutline returns a five point crown filling r
func CrownOutline(r geometry.Rect) []geometry.Vector2 {
	at := r.Anchor
	return []geometry.Vector2{
		at(0, 1),
		at(0, 0.1),
		at(0.25, 0.55),
		at(0.5, 0),
		at(0.75, 0.55),
		at(1, 0.1),
		at(1, 1),
	}
}

// JewelOutline returns a cut gem filling r
func JewelOutline(r geometry.Rect) []geometry.Vector2 {
	at := r.Anchor
	return []geometry.Vector2{
		at(0.25, 0),
		at(0.75, 0),
		at(1, 0.35),
		at(0.5, 1),
		at(0, 0.35),
	}
}

// PillowOutline returns an ellipse filling r
func PillowOutline(r geometry.Rect) []geometry.Vector2 {
	unit := geometry.NewCircle(geometry.Vector2{}, 1).Points(circleSegments)
	center := r.Center()
	out := make([]geometry.Vector2, len(unit))
	for i, pt := range unit {
		out[i] = geometry.NewVector2(center.X+pt.X*r.Size.X/2, center.Y+pt.Y*r.Size.Y/2)
	}
	return out
}

// RingOutline returns a ring around center as a single outline; the inner
// circle runs the other way so it stays unfilled.
func RingOutline(center geometry.Vector2, radius float64) []geometry.Vector2 {
	outer := geometry.NewCircle(center, radius).Points(circleSegments)
	inner := geometry.NewCircle(center, radius*0.7).Points(circleSegments)

	ring := append([]geometry.Vector2(nil), outer...)
	for i := len(inner) - 1; i >= 0; i-- {
		ring = append(ring, inner[i])
	}
	return ring
}

func scalePoints(points []geometry.Vector2, k float64) []geometry.Vector2 {
	out := make([]geometry.Vector2, len(points))
	for i, pt := range points {
		out[i] = pt.Mul(k)
	}
	return out
}
