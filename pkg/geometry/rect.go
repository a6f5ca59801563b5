package geometry

// Rect represents an axis-aligned rectangle by its top-left corner and size
type Rect struct {
	Min  Vector2
	Size Vector2
}

// NewRect creates a rectangle from position and size
func NewRect(x, y, width, height float64) Rect {
	return Rect{
		Min:  Vector2{X: x, Y: y},
		Size: Vector2{X: width, Y: height},
	}
}

// Max returns the bottom-right corner
func (r Rect) Max() Vector2 {
	return r.Min.Add(r.Size)
}

// Center returns the center point of the rectangle
func (r Rect) Center() Vector2 {
	return r.Anchor(0.5, 0.5)
}

// Anchor returns the point at the given fractions of width and height,
// measured from the top-left corner.
func (r Rect) Anchor(fx, fy float64) Vector2 {
	return Vector2{
		X: r.Min.X + r.Size.X*fx,
		Y: r.Min.Y + r.Size.Y*fy,
	}
}

// CenteredAt returns a rectangle of the same size whose center is p
func (r Rect) CenteredAt(p Vector2) Rect {
	return Rect{
		Min:  p.Sub(r.Size.Mul(0.5)),
		Size: r.Size,
	}
}

// Translate moves the rectangle by delta
func (r Rect) Translate(delta Vector2) Rect {
	return Rect{Min: r.Min.Add(delta), Size: r.Size}
}

// Contains reports whether p lies inside the rectangle (edges included)
func (r Rect) Contains(p Vector2) bool {
	hi := r.Max()
	return p.X >= r.Min.X && p.X <= hi.X && p.Y >= r.Min.Y && p.Y <= hi.Y
}

// Clamp returns p moved to the nearest point inside the rectangle
func (r Rect) Clamp(p Vector2) Vector2 {
	return p.Max(r.Min).Min(r.Max())
}

// Diagonal returns the length of the rectangle diagonal
func (r Rect) Diagonal() float64 {
	return r.Size.Length()
}
