package geometry

import "math"

// Vector2 represents a 2D point or vector in surface coordinates
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Mul multiplies the vector by a scalar
func (v Vector2) Mul(scalar float64) Vector2 {
	return Vector2{
		X: v.X * scalar,
		Y: v.Y * scalar,
	}
}

// Dot returns the dot product of two vectors
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// LengthSquared returns the squared magnitude of the vector
func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points
func (v Vector2) Distance(other Vector2) float64 {
	return v.Sub(other).Length()
}

// Lerp interpolates linearly from v to other at parameter t
func (v Vector2) Lerp(other Vector2, t float64) Vector2 {
	return Vector2{
		X: v.X + (other.X-v.X)*t,
		Y: v.Y + (other.Y-v.Y)*t,
	}
}

// IsFinite reports whether both components are real numbers
func (v Vector2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Min returns a vector with the minimum components of two vectors
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{
		X: math.Min(v.X, other.X),
		Y: math.Min(v.Y, other.Y),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{
		X: math.Max(v.X, other.X),
		Y: math.Max(v.Y, other.Y),
	}
}
