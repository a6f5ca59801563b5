package layout

import (
	"math"

	"github.com/philipparndt/gethexy/pkg/geometry"
)

// MinJewelSize keeps the jewel grabbable on small screens
const MinJewelSize = 30.0

// JewelSize returns the jewel edge length. Phones get a slightly larger
// jewel; enlarge is applied while the jewel is near the crown.
func (v Viewport) JewelSize(enlarge float64) float64 {
	if enlarge <= 0 {
		enlarge = 1
	}

	base := v.Width * 0.05
	if v.IsMobile() {
		base *= 1.2
	}
	return math.Max(MinJewelSize, v.ResponsiveSize(base, Width)*enlarge)
}

// JewelStart returns the jewel's initial offset from the viewport center
func (v Viewport) JewelStart() geometry.Vector2 {
	x := v.Width * 0.4
	if !v.IsMobile() && v.Width < SmallTabletBreakpoint {
		x = v.Width * 0.25
	}

	y := v.Height * 0.3
	if v.Height < 700 {
		y = v.Height * 0.2
	}
	return geometry.NewVector2(x, y)
}

// DragBounds returns the rectangle, in viewport coordinates, the jewel
// center may be dragged within: 45% of the viewport either side of center.
func (v Viewport) DragBounds() geometry.Rect {
	half := geometry.NewVector2(v.Width*0.45, v.Height*0.45)
	center := v.Center()
	return geometry.Rect{
		Min:  center.Sub(half),
		Size: half.Mul(2),
	}
}

// CrownWidth returns the crown image width, between 200 px and 70% of the
// viewport width.
func (v Viewport) CrownWidth() float64 {
	w := v.ResponsiveSize(v.Width*0.4, Width)
	return clampWidth(w, 200, v.Width*0.7)
}

// PillowWidth returns the pillow image width, between 300 px and 90% of the
// viewport width.
func (v Viewport) PillowWidth() float64 {
	w := v.ResponsiveSize(v.Width*0.6, Width)
	return clampWidth(w, 300, v.Width*0.9)
}

// CrownTop returns the crown's top edge; short screens push it down.
func (v Viewport) CrownTop() float64 {
	if v.Height < 700 {
		return v.Height * 0.38
	}
	return v.Height * 0.05
}

// PillowTop returns the pillow's top edge
func (v Viewport) PillowTop() float64 {
	if v.Height < 700 {
		return v.Height * 0.45
	}
	return v.Height * 0.25
}

// CrownRect places a crown image of the given aspect ratio (height/width)
// horizontally centered.
func (v Viewport) CrownRect(aspect float64) geometry.Rect {
	w := v.CrownWidth()
	return geometry.NewRect((v.Width-w)/2, v.CrownTop(), w, w*aspect)
}

// PillowRect places a pillow image of the given aspect ratio horizontally
// centered.
func (v Viewport) PillowRect(aspect float64) geometry.Rect {
	w := v.PillowWidth()
	return geometry.NewRect((v.Width-w)/2, v.PillowTop(), w, w*aspect)
}

// CSS semantics: max-width caps first, then min-width wins over it.
func clampWidth(w, lo, hi float64) float64 {
	return math.Max(lo, math.Min(w, hi))
}
