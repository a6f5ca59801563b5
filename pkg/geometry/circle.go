package geometry

import "math"

// Circle is a disc on the drawing surface, used for the draggable marker
type Circle struct {
	Center Vector2
	Radius float64
}

// NewCircle creates a circle around center
func NewCircle(center Vector2, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// Contains reports whether p lies inside the circle or on its outline
func (c Circle) Contains(p Vector2) bool {
	return p.Sub(c.Center).LengthSquared() <= c.Radius*c.Radius
}

// Points approximates the outline with a closed polygon of the given number
// of segments. The first point is repeated at the end.
func (c Circle) Points(segments int) []Vector2 {
	if segments < 3 {
		segments = 3
	}

	points := make([]Vector2, 0, segments+1)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		points = append(points, Vector2{
			X: c.Center.X + c.Radius*math.Cos(angle),
			Y: c.Center.Y + c.Radius*math.Sin(angle),
		})
	}
	return append(points, points[0])
}
