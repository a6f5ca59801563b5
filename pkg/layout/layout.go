// Package layout sizes and places the crown scene relative to the viewport.
// Sizes are tuned against a 1366x768 reference screen and scaled down in
// steps for tablets and phones.
package layout

import (
	"math"

	"github.com/philipparndt/gethexy/pkg/geometry"
)

// Reference screen the base sizes were designed for
const (
	BaseWidth  = 1366.0
	BaseHeight = 768.0
)

// Breakpoints, in pixels along the measured dimension
const (
	MobileBreakpoint       = 480.0
	SmallTabletBreakpoint  = 768.0
	LargeTabletBreakpoint  = 1024.0
	LargeDesktopBreakpoint = 1920.0
)

// Dimension selects which viewport axis a size scales with
type Dimension int

const (
	Width Dimension = iota
	Height
)

// Viewport is the size of the drawing surface
type Viewport struct {
	Width  float64
	Height float64
}

// ReferenceScale is the smallest viewport dimension; docking thresholds are
// expressed relative to it.
func (v Viewport) ReferenceScale() float64 {
	return math.Min(v.Width, v.Height)
}

// Center returns the middle of the viewport
func (v Viewport) Center() geometry.Vector2 {
	return geometry.NewVector2(v.Width/2, v.Height/2)
}

// ResponsiveSize scales base by the viewport relative to the reference
// screen, capping the factor per breakpoint.
func (v Viewport) ResponsiveSize(base float64, dim Dimension) float64 {
	current, reference := v.Width, BaseWidth
	if dim == Height {
		current, reference = v.Height, BaseHeight
	}
	factor := current / reference

	switch {
	case current < MobileBreakpoint:
		return base * math.Min(factor, 0.6)
	case current < SmallTabletBreakpoint:
		return base * math.Min(factor, 0.75)
	case current < LargeTabletBreakpoint:
		return base * math.Min(factor, 0.85)
	case current > LargeDesktopBreakpoint:
		return base * math.Min(factor, 1.2)
	default:
		return base * factor
	}
}

// IsMobile reports whether the viewport is phone sized
func (v Viewport) IsMobile() bool {
	return v.Width < MobileBreakpoint
}
