package geometry

import "fmt"

// InvalidPolygonError reports a polygon that cannot be tracked
type InvalidPolygonError struct {
	Edge   int // Offending edge index, -1 when the polygon as a whole is invalid
	Reason string
}

func (e *InvalidPolygonError) Error() string {
	if e.Edge < 0 {
		return fmt.Sprintf("invalid polygon: %s", e.Reason)
	}
	return fmt.Sprintf("invalid polygon: edge %d: %s", e.Edge, e.Reason)
}
