// Package analysis measures a drag boundary: edge lengths, bounds and where
// each edge starts and ends in terms of progress.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gethexy/pkg/geometry"
	"github.com/philipparndt/gethexy/pkg/perimeter"
)

// EdgeInfo contains information about one edge of the boundary
type EdgeInfo struct {
	Index         int
	Start         geometry.Vector2
	End           geometry.Vector2
	Length        float64
	StartProgress float64 // Percent of the perimeter covered at Start
	EndProgress   float64 // Percent of the perimeter covered at End
}

// MeasurementResult contains the measurements of a boundary
type MeasurementResult struct {
	Bounds        geometry.Rect
	Perimeter     float64
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	Edges         []EdgeInfo
}

// AnalyzeBoundary measures the tracker's boundary
func AnalyzeBoundary(tracker *perimeter.Tracker) *MeasurementResult {
	polygon := tracker.Polygon()
	result := &MeasurementResult{
		Bounds:    polygon.Bounds(),
		Perimeter: tracker.Perimeter(),
		EdgeCount: tracker.EdgeCount(),
		Edges:     make([]EdgeInfo, 0, tracker.EdgeCount()),
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i := 0; i < result.EdgeCount; i++ {
		edge := polygon.Edge(i)
		length := edge.Length()

		result.Edges = append(result.Edges, EdgeInfo{
			Index:         i,
			Start:         edge.Start,
			End:           edge.End,
			Length:        length,
			StartProgress: tracker.ProgressPercent(perimeter.Position{Edge: i, T: 0}),
			EndProgress:   tracker.ProgressPercent(perimeter.Position{Edge: i, T: 1}),
		})

		totalLength += length
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
	}

	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	if result.EdgeCount > 0 {
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool {
		return a.Length > b.Length
	})
}

// FindShortestEdges returns the N shortest edges
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool {
		return a.Length < b.Length
	})
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.Edges))
	copy(edges, result.Edges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count > len(edges) {
		count = len(edges)
	}
	if count < 0 {
		count = 0
	}

	return edges[:count]
}

// FormatVector formats a 2D vector
func FormatVector(v geometry.Vector2) string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}
