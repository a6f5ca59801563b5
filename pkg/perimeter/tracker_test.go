package perimeter

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/gethexy/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func hexagon() []geometry.Vector2 {
	return []geometry.Vector2{
		{X: 15, Y: 130},
		{X: 75, Y: 15},
		{X: 225, Y: 15},
		{X: 285, Y: 130},
		{X: 225, Y: 245},
		{X: 75, Y: 245},
		{X: 15, Y: 130},
	}
}

func newHexTracker(t *testing.T, opts ...Option) *Tracker {
	t.Helper()
	tracker, err := New(hexagon(), opts...)
	require.NoError(t, err)
	return tracker
}

// onSegment reports whether p lies on the segment within tolerance
func onSegment(seg geometry.Segment, p geometry.Vector2) bool {
	closest, _ := seg.ClosestPoint(p)
	return closest.Distance(p) < 1e-6
}

func TestNewRejectsInvalidPolygons(t *testing.T) {
	tests := []struct {
		name   string
		points []geometry.Vector2
	}{
		{"two edges", []geometry.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 0}}},
		{"zero-length edge", []geometry.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 0}}},
		{"open", []geometry.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker, err := New(tt.points)
			assert.Nil(t, tracker)

			var polyErr *geometry.InvalidPolygonError
			assert.True(t, errors.As(err, &polyErr), "expected InvalidPolygonError, got %v", err)
		})
	}
}

func TestPerimeterOfHexagon(t *testing.T) {
	tracker := newHexTracker(t)

	assert.Equal(t, 6, tracker.EdgeCount())
	assert.InDelta(t, 4*math.Sqrt(16825)+300, tracker.Perimeter(), tolerance)
	assert.InDelta(t, 818.8448708, tracker.Perimeter(), 1e-6)
}

func TestProgressPercentEndpoints(t *testing.T) {
	tracker := newHexTracker(t)

	assert.InDelta(t, 0.0, tracker.ProgressPercent(Position{Edge: 0, T: 0}), tolerance)
	assert.InDelta(t, 100.0, tracker.ProgressPercent(Position{Edge: 5, T: 1}), tolerance)
	assert.InDelta(t, 25.0, tracker.ProgressPercent(Position{Edge: 1, T: 0.5}), tolerance)
	assert.InDelta(t, 50.0, tracker.ProgressPercent(Position{Edge: 2, T: 1}), tolerance)
	assert.InDelta(t, 50.0, tracker.ProgressPercent(Position{Edge: 3, T: 0}), tolerance)
	assert.InDelta(t, 75.0, tracker.ProgressPercent(Position{Edge: 4, T: 0.5}), tolerance)
}

func TestProgressPercentClampsOutOfRangePositions(t *testing.T) {
	tracker := newHexTracker(t)

	assert.InDelta(t, 0.0, tracker.ProgressPercent(Position{Edge: -3, T: 0.5}), tolerance)
	assert.InDelta(t, 100.0, tracker.ProgressPercent(Position{Edge: 9, T: 0}), tolerance)
	assert.InDelta(t, 0.0, tracker.ProgressPercent(Position{Edge: 0, T: -2}), tolerance)
}

func TestDerivedPointLiesOnEdge(t *testing.T) {
	tracker := newHexTracker(t)
	poly := tracker.Polygon()

	for edge := 0; edge < tracker.EdgeCount(); edge++ {
		for _, param := range []float64{0, 0.1, 0.33, 0.5, 0.9, 1} {
			p := tracker.Point(Position{Edge: edge, T: param})
			assert.True(t, onSegment(poly.Edge(edge), p), "edge %d t %v gave %v", edge, param, p)
		}
	}
}

func TestUpdateDragOnVertexMatchesBothEdges(t *testing.T) {
	tracker := newHexTracker(t)
	session := tracker.BeginDrag()

	pos, moved := tracker.UpdateDrag(session, geometry.NewVector2(75, 15))
	require.True(t, moved)

	// (edge 0, t 1) and (edge 1, t 0) are the same point
	assert.Equal(t, Position{Edge: 0, T: 1}, pos)
	assert.InDelta(t, tracker.ProgressPercent(Position{Edge: 1, T: 0}), tracker.ProgressPercent(pos), tolerance)
	assert.Equal(t, geometry.NewVector2(75, 15), session.Point())
}

func TestUpdateDragHalfway(t *testing.T) {
	tracker := newHexTracker(t)
	session := tracker.BeginDrag()

	pos, moved := tracker.UpdateDrag(session, geometry.NewVector2(285, 130))
	require.True(t, moved)
	assert.InDelta(t, 50.0, tracker.ProgressPercent(pos), 1e-6)
}

func TestUpdateDragForwardIsMonotonic(t *testing.T) {
	tracker := newHexTracker(t)
	session := tracker.BeginDrag()

	last := 0.0
	for pct := 1.0; pct <= 100; pct++ {
		target := tracker.Point(tracker.PositionAtPercent(pct))
		pos, _ := tracker.UpdateDrag(session, target)

		progress := tracker.ProgressPercent(pos)
		assert.GreaterOrEqual(t, progress, last-1e-9, "progress went backwards at %v%%", pct)
		assert.InDelta(t, pct, progress, 1e-6)
		last = progress
	}

	assert.True(t, tracker.IsAtEnd(session.Position(), DefaultEndTolerance))
}

func TestUpdateDragBackwardDecreasesProgress(t *testing.T) {
	tracker := newHexTracker(t)
	session := tracker.BeginDrag()

	for pct := 5.0; pct <= 75; pct += 5 {
		tracker.UpdateDrag(session, tracker.Point(tracker.PositionAtPercent(pct)))
	}
	forward := tracker.ProgressPercent(session.Position())
	require.InDelta(t, 75.0, forward, 1e-6)

	for pct := 70.0; pct >= 25; pct -= 5 {
		tracker.UpdateDrag(session, tracker.Point(tracker.PositionAtPercent(pct)))
	}
	backward := tracker.ProgressPercent(session.Position())

	assert.Less(t, backward, forward)
	assert.InDelta(t, 25.0, backward, 1e-6)
}

func TestUpdateDragKeepsPointOnBoundary(t *testing.T) {
	tracker := newHexTracker(t)
	session := tracker.BeginDrag()
	poly := tracker.Polygon()

	// Pointer samples wander off the outline on both sides
	samples := []geometry.Vector2{
		{X: 30, Y: 110}, {X: 50, Y: 60}, {X: 70, Y: 30},
		{X: 100, Y: 5}, {X: 160, Y: 30}, {X: 220, Y: 8},
		{X: 250, Y: 60}, {X: 275, Y: 110}, {X: 260, Y: 190},
	}

	for _, raw := range samples {
		pos, _ := tracker.UpdateDrag(session, raw)
		assert.True(t, onSegment(poly.Edge(pos.Edge), session.Point()), "sample %v left the boundary", raw)
		assert.GreaterOrEqual(t, pos.T, 0.0)
		assert.LessOrEqual(t, pos.T, 1.0)
	}
	assert.Equal(t, 3, session.Position().Edge)
}

func TestUpdateDragConvergesFromNearbyEdges(t *testing.T) {
	tracker := newHexTracker(t)
	closing := tracker.Point(Position{Edge: tracker.EdgeCount() - 1, T: 1})

	for start := 0; start < tracker.EdgeCount(); start++ {
		for edge := 0; edge < tracker.EdgeCount(); edge++ {
			if abs(edge-start) > 3 {
				// Farther targets are closer across the closing vertex, which
				// the walk never crosses.
				continue
			}
			for _, param := range []float64{0, 0.25, 0.5, 0.75, 1} {
				want := Position{Edge: edge, T: param}
				target := tracker.Point(want)
				tracker.resting = Position{Edge: start, T: 0.5}
				session := tracker.BeginDrag()

				pos, moved := tracker.UpdateDrag(session, target)
				require.True(t, moved, "start %d target %+v", start, want)
				assert.InDelta(t, 0, session.Point().Distance(target), 1e-6,
					"start %d target %+v resolved to %+v", start, want, pos)

				if target.Distance(closing) < tolerance {
					// First and closing vertex coincide; either end is correct.
					continue
				}
				assert.InDelta(t, tracker.ProgressPercent(want), tracker.ProgressPercent(pos), 1e-6,
					"start %d target %+v resolved to %+v", start, want, pos)
			}
		}
	}
}

func TestUpdateDragAcrossTheHexagonStaysOffTheEnds(t *testing.T) {
	tests := []struct {
		name  string
		start Position
		want  Position
	}{
		{"bottom to top", Position{Edge: 4, T: 0.5}, Position{Edge: 1, T: 0.25}},
		{"top to bottom", Position{Edge: 1, T: 0.5}, Position{Edge: 4, T: 0.5}},
		{"bottom to top left", Position{Edge: 4, T: 0.5}, Position{Edge: 1, T: 0}},
		{"top to bottom right", Position{Edge: 1, T: 0.5}, Position{Edge: 4, T: 0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			tracker := newHexTracker(t, WithStart(tt.start), WithOnComplete(func(Position) {
				calls++
			}))
			session := tracker.BeginDrag()

			pos, moved := tracker.UpdateDrag(session, tracker.Point(tt.want))
			require.True(t, moved)
			assert.InDelta(t, tracker.ProgressPercent(tt.want), tracker.ProgressPercent(pos), 1e-6,
				"resolved to %+v", pos)

			committed := tracker.EndDrag(session)
			assert.False(t, tracker.IsAtEnd(committed, DefaultEndTolerance))
			assert.NotEqual(t, Position{}, committed)
			assert.Zero(t, calls)
		})
	}
}

func TestUpdateDragClampsAtEnds(t *testing.T) {
	tracker := newHexTracker(t)
	session := tracker.BeginDrag()

	// Behind the start vertex, along the first edge's line
	pos, moved := tracker.UpdateDrag(session, geometry.NewVector2(5, 149))
	require.True(t, moved)
	assert.Equal(t, Position{Edge: 0, T: 0}, pos)

	tracker.resting = Position{Edge: 5, T: 0.9}
	session = tracker.BeginDrag()

	// Past the closing vertex, along the last edge's line
	pos, moved = tracker.UpdateDrag(session, geometry.NewVector2(5, 111))
	require.True(t, moved)
	assert.Equal(t, Position{Edge: 5, T: 1}, pos)
	assert.InDelta(t, 100.0, tracker.ProgressPercent(pos), tolerance)
}

func TestUpdateDragDiscardsWhenHopBudgetExhausted(t *testing.T) {
	tracker := newHexTracker(t, WithHopBudget(2))
	session := tracker.BeginDrag()

	// Reaching edge 3 from edge 0 takes three hops
	pos, moved := tracker.UpdateDrag(session, geometry.NewVector2(255, 187.5))
	assert.False(t, moved)
	assert.Equal(t, Position{Edge: 0, T: 0}, pos)

	// Within budget the same sample resolves
	tracker = newHexTracker(t, WithHopBudget(3))
	session = tracker.BeginDrag()
	pos, moved = tracker.UpdateDrag(session, geometry.NewVector2(255, 187.5))
	assert.True(t, moved)
	assert.Equal(t, 3, pos.Edge)
	assert.InDelta(t, 0.5, pos.T, tolerance)
}

func TestUpdateDragDiscardsOutsideConvexCorner(t *testing.T) {
	tracker := newHexTracker(t)
	session := tracker.BeginDrag()
	tracker.UpdateDrag(session, geometry.NewVector2(45, 72.5))
	before := session.Position()

	// Past edge 0's end yet before edge 1's start: the walk ping-pongs
	pos, moved := tracker.UpdateDrag(session, geometry.NewVector2(60, 0))
	assert.False(t, moved)
	assert.Equal(t, before, pos)
}

func TestUpdateDragIgnoresMalformedSamples(t *testing.T) {
	tracker := newHexTracker(t)
	session := tracker.BeginDrag()
	tracker.UpdateDrag(session, geometry.NewVector2(45, 72.5))
	before := session.Position()

	for _, raw := range []geometry.Vector2{
		{X: math.NaN(), Y: 10},
		{X: 10, Y: math.Inf(1)},
	} {
		pos, moved := tracker.UpdateDrag(session, raw)
		assert.False(t, moved)
		assert.Equal(t, before, pos)
	}

	pos, moved := tracker.UpdateDrag(nil, geometry.NewVector2(45, 72.5))
	assert.False(t, moved)
	assert.Equal(t, tracker.Resting(), pos)
}

func TestEndDragCommitsRestingPosition(t *testing.T) {
	tracker := newHexTracker(t)
	session := tracker.BeginDrag()
	tracker.UpdateDrag(session, geometry.NewVector2(150, 20))

	resting := tracker.EndDrag(session)
	assert.False(t, session.Active())
	assert.Equal(t, 1, resting.Edge)
	assert.InDelta(t, 0.5, resting.T, tolerance)
	assert.InDelta(t, 25.0, tracker.Progress(), tolerance)

	// Samples after the session ended are ignored
	_, moved := tracker.UpdateDrag(session, geometry.NewVector2(285, 130))
	assert.False(t, moved)

	// The next drag starts where the previous one ended
	next := tracker.BeginDrag()
	assert.Equal(t, resting, next.Position())
}

func TestCancelDragKeepsLastCommittedPosition(t *testing.T) {
	tracker := newHexTracker(t)
	first := tracker.BeginDrag()
	tracker.UpdateDrag(first, geometry.NewVector2(150, 15))
	committed := tracker.EndDrag(first)

	session := tracker.BeginDrag()
	tracker.UpdateDrag(session, geometry.NewVector2(285, 130))
	tracker.CancelDrag(session)

	assert.False(t, session.Active())
	assert.Equal(t, committed, tracker.Resting())
	assert.Equal(t, committed, tracker.EndDrag(session))
}

func TestCompletionFiresOnce(t *testing.T) {
	var calls []Position
	tracker := newHexTracker(t, WithOnComplete(func(p Position) {
		calls = append(calls, p)
	}))

	session := tracker.BeginDrag()
	for pct := 10.0; pct <= 90; pct += 10 {
		tracker.UpdateDrag(session, tracker.Point(tracker.PositionAtPercent(pct)))
	}
	tracker.EndDrag(session)
	assert.Empty(t, calls)

	session = tracker.BeginDrag()
	tracker.UpdateDrag(session, tracker.Point(tracker.PositionAtPercent(97)))
	tracker.UpdateDrag(session, tracker.Point(tracker.PositionAtPercent(99.5)))
	tracker.EndDrag(session)
	require.Len(t, calls, 1)
	assert.Equal(t, 5, calls[0].Edge)
	assert.True(t, tracker.Completed())

	session = tracker.BeginDrag()
	tracker.UpdateDrag(session, geometry.NewVector2(15, 130))
	tracker.EndDrag(session)
	assert.Len(t, calls, 1)
}

func TestIsAtEnd(t *testing.T) {
	tracker := newHexTracker(t)

	assert.True(t, tracker.IsAtEnd(Position{Edge: 5, T: 0.96}, 0.05))
	assert.False(t, tracker.IsAtEnd(Position{Edge: 5, T: 0.95}, 0.05))
	assert.False(t, tracker.IsAtEnd(Position{Edge: 4, T: 1}, 0.05))
	assert.True(t, tracker.IsAtEnd(Position{Edge: 5, T: 0.8}, 0.25))
}

func TestWithStartClampsOntoBoundary(t *testing.T) {
	tracker := newHexTracker(t, WithStart(Position{Edge: 2, T: 1.7}))
	assert.Equal(t, Position{Edge: 2, T: 1}, tracker.Resting())

	session := tracker.BeginDrag()
	assert.Equal(t, geometry.NewVector2(285, 130), session.Point())
}

func TestPositionAtPercent(t *testing.T) {
	tracker := newHexTracker(t)

	tests := []struct {
		pct  float64
		want Position
	}{
		{0, Position{Edge: 0, T: 0}},
		{25, Position{Edge: 1, T: 0.5}},
		{75, Position{Edge: 4, T: 0.5}},
		{100, Position{Edge: 5, T: 1}},
		{-10, Position{Edge: 0, T: 0}},
		{250, Position{Edge: 5, T: 1}},
	}

	for _, tt := range tests {
		got := tracker.PositionAtPercent(tt.pct)
		assert.Equal(t, tt.want.Edge, got.Edge, "pct %v", tt.pct)
		assert.InDelta(t, tt.want.T, got.T, 1e-9, "pct %v", tt.pct)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
