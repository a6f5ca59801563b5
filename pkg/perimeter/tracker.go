package perimeter

import (
	"math"

	"github.com/philipparndt/gethexy/pkg/geometry"
	"github.com/rs/zerolog/log"
)

// neighborEpsilon is how much closer a point further along the boundary has
// to be before the walk moves there instead of committing on the current
// edge.
const neighborEpsilon = 1e-9

// Tracker keeps a dragged point glued to a polygon boundary
type Tracker struct {
	polygon    geometry.Polygon
	edges      []geometry.Segment
	lengths    []float64
	cumulative []float64 // Arc length at the start of each edge
	perimeter  float64

	hopBudget    int
	endTolerance float64
	resting      Position
	onComplete   func(Position)
	completed    bool
}

// New creates a tracker for the closed vertex list. It fails with a
// *geometry.InvalidPolygonError when the polygon has fewer than 3 edges, is
// not explicitly closed, or has a zero-length edge.
func New(points []geometry.Vector2, opts ...Option) (*Tracker, error) {
	polygon, err := geometry.NewPolygon(points)
	if err != nil {
		return nil, err
	}

	n := polygon.EdgeCount()
	t := &Tracker{
		polygon:      polygon,
		edges:        make([]geometry.Segment, n),
		lengths:      make([]float64, n),
		cumulative:   make([]float64, n),
		hopBudget:    DefaultHopBudget,
		endTolerance: DefaultEndTolerance,
	}

	for i := 0; i < n; i++ {
		t.edges[i] = polygon.Edge(i)
		t.lengths[i] = t.edges[i].Length()
		t.cumulative[i] = t.perimeter
		t.perimeter += t.lengths[i]
	}

	for _, opt := range opts {
		opt(t)
	}
	t.resting = t.clamp(t.resting)

	return t, nil
}

// Polygon returns the tracked polygon
func (t *Tracker) Polygon() geometry.Polygon {
	return t.polygon
}

// EdgeCount returns the number of edges
func (t *Tracker) EdgeCount() int {
	return len(t.edges)
}

// Perimeter returns the total boundary length
func (t *Tracker) Perimeter() float64 {
	return t.perimeter
}

// Resting returns the position committed by the last completed drag
func (t *Tracker) Resting() Position {
	return t.resting
}

// Completed reports whether the completion callback has fired
func (t *Tracker) Completed() bool {
	return t.completed
}

// Point derives the absolute boundary point of a position
func (t *Tracker) Point(p Position) geometry.Vector2 {
	p = t.clamp(p)
	return t.edges[p.Edge].PointAt(p.T)
}

// BeginDrag opens a session anchored at the resting position
func (t *Tracker) BeginDrag() *Session {
	return &Session{
		active:   true,
		position: t.resting,
		point:    t.Point(t.resting),
	}
}

// UpdateDrag resolves a raw pointer sample onto the boundary, starting from
// the session's current edge and hopping to adjacent edges as needed. It
// returns the session position and whether it changed. Samples that are not
// finite, arrive on an inactive session, or cannot be resolved within the
// hop budget are ignored.
func (t *Tracker) UpdateDrag(s *Session, raw geometry.Vector2) (Position, bool) {
	if s == nil {
		return t.resting, false
	}
	if !s.active || !raw.IsFinite() {
		return s.position, false
	}

	p, ok := t.resolve(s.position.Edge, raw)
	if !ok {
		log.Debug().
			Int("edge", s.position.Edge).
			Float64("x", raw.X).
			Float64("y", raw.Y).
			Int("hopBudget", t.hopBudget).
			Msg("perimeter: sample discarded, hop budget exhausted")
		return s.position, false
	}

	s.position = p
	s.point = t.Point(p)
	return p, true
}

// EndDrag re-projects the last rendered point onto its edge, commits the
// result as the resting position and closes the session.
func (t *Tracker) EndDrag(s *Session) Position {
	if !s.Active() {
		return t.resting
	}
	s.active = false

	edge := s.position.Edge
	param := clamp01(t.edges[edge].Project(s.point))
	t.resting = Position{Edge: edge, T: param}

	if !t.completed && t.IsAtEnd(t.resting, t.endTolerance) {
		t.completed = true
		if t.onComplete != nil {
			t.onComplete(t.resting)
		}
	}

	return t.resting
}

// CancelDrag closes the session without committing anything
func (t *Tracker) CancelDrag(s *Session) {
	if s != nil {
		s.active = false
	}
}

// ProgressPercent returns how far round the boundary p is, from 0 at the
// first vertex to 100 at the closing vertex.
func (t *Tracker) ProgressPercent(p Position) float64 {
	p = t.clamp(p)
	covered := t.cumulative[p.Edge] + p.T*t.lengths[p.Edge]
	return math.Max(0, math.Min(100, covered/t.perimeter*100))
}

// Progress returns the progress of the resting position
func (t *Tracker) Progress() float64 {
	return t.ProgressPercent(t.resting)
}

// IsAtEnd reports whether p is on the last edge within tolerance of its end
func (t *Tracker) IsAtEnd(p Position, tolerance float64) bool {
	return p.Edge == len(t.edges)-1 && p.T > 1-tolerance
}

// EndTolerance returns the configured completion tolerance
func (t *Tracker) EndTolerance() float64 {
	return t.endTolerance
}

// PositionAtPercent returns the position reached after pct percent of the
// perimeter. Values outside [0, 100] are clamped.
func (t *Tracker) PositionAtPercent(pct float64) Position {
	if math.IsNaN(pct) {
		pct = 0
	}
	arc := math.Max(0, math.Min(100, pct)) / 100 * t.perimeter

	last := len(t.edges) - 1
	for i := 0; i < last; i++ {
		if arc <= t.cumulative[i]+t.lengths[i] {
			return Position{Edge: i, T: clamp01((arc - t.cumulative[i]) / t.lengths[i])}
		}
	}
	return Position{Edge: last, T: clamp01((arc - t.cumulative[last]) / t.lengths[last])}
}

// resolve walks from edge towards the edge whose projection of raw lands
// inside it. Each move to an adjacent edge costs one hop.
func (t *Tracker) resolve(edge int, raw geometry.Vector2) (Position, bool) {
	last := len(t.edges) - 1
	hops := 0

	for {
		param := t.edges[edge].Project(raw)

		next, cost := edge, 1
		switch {
		case param > 1 && edge < last:
			next = edge + 1
		case param < 0 && edge > 0:
			next = edge - 1
		default:
			// Lands on this edge, or clamps at either end of the walk.
			param = clamp01(param)
			next, cost = t.closerAlong(edge, raw, t.edges[edge].PointAt(param).Distance(raw))
			if next == edge {
				return Position{Edge: edge, T: param}, true
			}
		}

		if hops+cost > t.hopBudget {
			return Position{}, false
		}
		hops += cost
		edge = next
	}
}

// closerAlong follows the boundary away from edge in each direction for as
// long as the projection of raw keeps pointing that way, and returns the
// edge where that search finds a point strictly closer to raw than dist,
// together with the hops it took. It returns edge itself when neither
// direction gets closer. The search stops at the first and last edge, so it
// never crosses the closing vertex.
func (t *Tracker) closerAlong(edge int, raw geometry.Vector2, dist float64) (int, int) {
	last := len(t.edges) - 1
	best, cost := edge, 0

	for _, step := range [2]int{-1, 1} {
		n := edge + step
		if n < 0 || n > last {
			continue
		}

		hops := 1
		param := t.edges[n].Project(raw)
		for (step > 0 && param > 1 && n < last) || (step < 0 && param < 0 && n > 0) {
			n += step
			hops++
			param = t.edges[n].Project(raw)
		}

		if d := t.edges[n].PointAt(clamp01(param)).Distance(raw); d < dist-neighborEpsilon {
			best, cost, dist = n, hops, d
		}
	}
	return best, cost
}

func (t *Tracker) clamp(p Position) Position {
	if p.Edge < 0 {
		return Position{Edge: 0, T: 0}
	}
	if p.Edge >= len(t.edges) {
		return Position{Edge: len(t.edges) - 1, T: 1}
	}
	return Position{Edge: p.Edge, T: clamp01(p.T)}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
