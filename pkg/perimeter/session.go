package perimeter

import "github.com/philipparndt/gethexy/pkg/geometry"

// Position is a point on the boundary expressed as an edge index and the
// parameter along that edge. It is the single source of truth; absolute
// coordinates are always derived from it.
type Position struct {
	Edge int     // Edge index in [0, N-1]
	T    float64 // Parameter along the edge in [0, 1]
}

// Session is one pointer drag, from press to release or cancel
type Session struct {
	active   bool
	position Position
	point    geometry.Vector2 // Last rendered point, re-projected on EndDrag
}

// Active reports whether the session still accepts samples
func (s *Session) Active() bool {
	return s != nil && s.active
}

// Position returns the last position accepted during the session
func (s *Session) Position() Position {
	return s.position
}

// Point returns the last rendered point of the session
func (s *Session) Point() geometry.Vector2 {
	return s.point
}
