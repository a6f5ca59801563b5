package geometry

import (
	"fmt"
	"math"
)

// closureTolerance is how far the last point may be from the first one and
// still count as an explicit closure.
const closureTolerance = 1e-9

// Segment is a directed edge between two points
type Segment struct {
	Start Vector2
	End   Vector2
}

// Vector returns the edge vector from start to end
func (s Segment) Vector() Vector2 {
	return s.End.Sub(s.Start)
}

// Length returns the length of the segment
func (s Segment) Length() float64 {
	return s.Vector().Length()
}

// Project returns the scalar projection t of p onto the segment's line,
// 0 at Start and 1 at End. The result is not clamped.
//
//	t = ((p - start) . edge) / |edge|²
func (s Segment) Project(p Vector2) float64 {
	edge := s.Vector()
	return p.Sub(s.Start).Dot(edge) / edge.LengthSquared()
}

// PointAt returns the point at parameter t along the segment
func (s Segment) PointAt(t float64) Vector2 {
	return s.Start.Lerp(s.End, t)
}

// ClosestPoint returns the point of the segment nearest to p and its parameter
func (s Segment) ClosestPoint(p Vector2) (Vector2, float64) {
	t := math.Max(0, math.Min(1, s.Project(p)))
	return s.PointAt(t), t
}

// Polygon is a closed, ordered list of vertices where the first and last
// point are identical. N+1 points define N edges.
type Polygon struct {
	points []Vector2
}

// NewPolygon validates and copies the closed vertex list
func NewPolygon(points []Vector2) (Polygon, error) {
	if len(points) < 4 {
		return Polygon{}, &InvalidPolygonError{Edge: -1, Reason: "need at least 3 edges (4 points including closure)"}
	}

	for i, p := range points {
		if !p.IsFinite() {
			return Polygon{}, &InvalidPolygonError{Edge: -1, Reason: fmt.Sprintf("vertex %d is not finite", i)}
		}
	}

	if points[0].Distance(points[len(points)-1]) > closureTolerance {
		return Polygon{}, &InvalidPolygonError{Edge: -1, Reason: "first and last point must be identical"}
	}

	// Projection divides by the squared length, so it must not underflow
	for i := 0; i < len(points)-1; i++ {
		if points[i+1].Sub(points[i]).LengthSquared() == 0 {
			return Polygon{}, &InvalidPolygonError{Edge: i, Reason: "zero-length edge"}
		}
	}

	copied := make([]Vector2, len(points))
	copy(copied, points)
	return Polygon{points: copied}, nil
}

// EdgeCount returns the number of edges
func (p Polygon) EdgeCount() int {
	if len(p.points) == 0 {
		return 0
	}
	return len(p.points) - 1
}

// Vertex returns the i-th vertex; index EdgeCount() is the closing point
func (p Polygon) Vertex(i int) Vector2 {
	return p.points[i]
}

// Points returns a copy of the closed vertex list
func (p Polygon) Points() []Vector2 {
	points := make([]Vector2, len(p.points))
	copy(points, p.points)
	return points
}

// Edge returns the i-th edge
func (p Polygon) Edge(i int) Segment {
	return Segment{Start: p.points[i], End: p.points[i+1]}
}

// Perimeter returns the sum of all edge lengths
func (p Polygon) Perimeter() float64 {
	total := 0.0
	for i := 0; i < p.EdgeCount(); i++ {
		total += p.Edge(i).Length()
	}
	return total
}

// Bounds returns the axis-aligned bounding rectangle of the vertices
func (p Polygon) Bounds() Rect {
	if len(p.points) == 0 {
		return Rect{}
	}
	lo, hi := p.points[0], p.points[0]
	for _, pt := range p.points[1:] {
		lo = lo.Min(pt)
		hi = hi.Max(pt)
	}
	return Rect{Min: lo, Size: hi.Sub(lo)}
}
