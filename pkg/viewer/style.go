package viewer

import "github.com/philipparndt/gethexy/pkg/geometry"

// Style sizes the hexagon drawing, in view box units
type Style struct {
	ViewBox     geometry.ViewBox
	DiscRadius  float64
	StrokeWidth float64
}

// DefaultStyle matches the 300x260 hexagon
func DefaultStyle() Style {
	return Style{
		ViewBox:     geometry.ViewBox{Width: 300, Height: 260},
		DiscRadius:  10,
		StrokeWidth: 8,
	}
}

// discHitSlop enlarges the disc's grab area relative to its drawn radius
const discHitSlop = 1.5
