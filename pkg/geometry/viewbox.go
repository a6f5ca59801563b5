package geometry

import "math"

// ViewBox is a fixed local coordinate space that gets scaled onto a drawing
// surface, keeping its aspect ratio and centering it ("meet" fitting).
type ViewBox struct {
	Width  float64
	Height float64
}

// Transform maps view box coordinates to surface coordinates
type Transform struct {
	Scale  float64
	Offset Vector2
}

// Fit returns the transform that fits the view box into a surface of the
// given size. A degenerate surface yields the identity transform.
func (vb ViewBox) Fit(width, height float64) Transform {
	if vb.Width <= 0 || vb.Height <= 0 || width <= 0 || height <= 0 {
		return Transform{Scale: 1}
	}

	scale := math.Min(width/vb.Width, height/vb.Height)
	return Transform{
		Scale: scale,
		Offset: Vector2{
			X: (width - vb.Width*scale) / 2,
			Y: (height - vb.Height*scale) / 2,
		},
	}
}

// ToSurface converts a view box point to surface coordinates
func (t Transform) ToSurface(p Vector2) Vector2 {
	return p.Mul(t.Scale).Add(t.Offset)
}

// ToLocal converts a surface point back to view box coordinates
func (t Transform) ToLocal(p Vector2) Vector2 {
	if t.Scale == 0 {
		return p
	}
	return p.Sub(t.Offset).Mul(1 / t.Scale)
}
