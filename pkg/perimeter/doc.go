// Package perimeter constrains a dragged point to the boundary of a closed
// polygon and measures how far around the boundary it has travelled.
//
// A Tracker owns the polygon and the resting position between drags. Each
// drag is a Session owned by the caller: BeginDrag opens it, UpdateDrag feeds
// raw pointer samples, EndDrag commits and CancelDrag discards. The walk never
// wraps across the closing vertex, so progress runs from 0 at the first
// vertex to 100 at the closing one.
//
// A Tracker is not safe for concurrent use; samples must be delivered in
// arrival order from a single goroutine.
package perimeter
