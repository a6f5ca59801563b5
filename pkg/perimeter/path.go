package perimeter

import (
	"strconv"
	"strings"

	"github.com/philipparndt/gethexy/pkg/geometry"
)

// TracedPath returns the boundary covered from the first vertex up to p:
// every vertex passed so far followed by the point of p itself.
func (t *Tracker) TracedPath(p Position) []geometry.Vector2 {
	p = t.clamp(p)

	path := make([]geometry.Vector2, 0, p.Edge+2)
	for i := 0; i <= p.Edge; i++ {
		path = append(path, t.polygon.Vertex(i))
	}
	return append(path, t.Point(p))
}

// PathData renders the traced path as SVG path data ("M x y L x y ...")
func (t *Tracker) PathData(p Position) string {
	var b strings.Builder
	for i, pt := range t.TracedPath(p) {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(formatCoord(pt.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(pt.Y))
	}
	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
