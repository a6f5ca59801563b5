// Package docking decides when a dragged item is close enough to a fixed
// target to snap into it.
//
// Distances are measured from the item's center to the target's socket, a
// point inside the target rectangle. Thresholds are relative: they are
// multiplied by a reference scale supplied with every sample (typically the
// smallest viewport dimension) so behavior follows the screen size.
package docking

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gethexy/pkg/geometry"
	"github.com/rs/zerolog/log"
)

// Zone classifies the distance between item and target
type Zone int

const (
	// Idle means the item is far from the target
	Idle Zone = iota
	// Near means the item is close enough to be highlighted
	Near
	// Docked means the item is close enough to be placed
	Docked
)

func (z Zone) String() string {
	switch z {
	case Idle:
		return "idle"
	case Near:
		return "near"
	case Docked:
		return "docked"
	default:
		return fmt.Sprintf("zone(%d)", int(z))
	}
}

// DefaultSocketOffset puts the socket at the target's geometric center
const DefaultSocketOffset = 0.5

// ErrInvalidThresholds is returned for thresholds that do not satisfy
// 0 < Dock < Near.
var ErrInvalidThresholds = errors.New("docking: thresholds must satisfy 0 < dock < near")

// Thresholds are zone radii relative to the reference scale
type Thresholds struct {
	Near float64
	Dock float64
}

// Validate checks 0 < Dock < Near
func (t Thresholds) Validate() error {
	if !(t.Dock > 0) || !(t.Near > 0) || t.Dock >= t.Near {
		return fmt.Errorf("%w (near=%v, dock=%v)", ErrInvalidThresholds, t.Near, t.Dock)
	}
	return nil
}

// Resolve returns the absolute near and dock radii for a reference scale
func (t Thresholds) Resolve(scale float64) (near, dock float64) {
	return t.Near * scale, t.Dock * scale
}

// Config configures a Docker
type Config struct {
	Thresholds Thresholds
	// SocketOffset is the vertical position of the socket as a fraction of
	// the target height, measured from its top edge. Zero selects
	// DefaultSocketOffset.
	SocketOffset float64
}

// Snap tells the host where to put the item once it docks
type Snap struct {
	Item  geometry.Rect    // Item rectangle centered on the socket
	Delta geometry.Vector2 // Translation from the sampled item position
}

// Reading is the result of one sample
type Reading struct {
	Zone     Zone
	Distance float64
	Snap     *Snap // Set only on the first docked reading of a session
	Complete bool  // True together with Snap
}

// Docker classifies item/target distances into zones
type Docker struct {
	thresholds   Thresholds
	socketOffset float64
	onDocked     func(Snap)
}

// Option configures optional Docker behavior
type Option func(*Docker)

// WithOnDocked registers a callback fired alongside every snap
func WithOnDocked(fn func(Snap)) Option {
	return func(d *Docker) {
		d.onDocked = fn
	}
}

// New creates a docker, validating its thresholds
func New(cfg Config, opts ...Option) (*Docker, error) {
	if err := cfg.Thresholds.Validate(); err != nil {
		return nil, err
	}

	offset := cfg.SocketOffset
	if offset == 0 {
		offset = DefaultSocketOffset
	}
	if offset < 0 || offset > 1 || math.IsNaN(offset) {
		return nil, fmt.Errorf("docking: socket offset %v outside [0, 1]", cfg.SocketOffset)
	}

	d := &Docker{
		thresholds:   cfg.Thresholds,
		socketOffset: offset,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Thresholds returns the configured relative thresholds
func (d *Docker) Thresholds() Thresholds {
	return d.thresholds
}

// Socket returns the point of the target the item docks into
func (d *Docker) Socket(target geometry.Rect) geometry.Vector2 {
	return target.Anchor(0.5, d.socketOffset)
}

// Classify maps a distance to its zone for the given reference scale:
// Docked below dock, Near from dock up to (excluding) near, Idle beyond.
func (d *Docker) Classify(distance, scale float64) Zone {
	near, dock := d.thresholds.Resolve(scale)
	switch {
	case distance < dock:
		return Docked
	case distance < near:
		return Near
	default:
		return Idle
	}
}

// Sample measures item against target. It has no side effects.
func (d *Docker) Sample(item, target geometry.Rect, scale float64) Reading {
	distance := item.Center().Distance(d.Socket(target))
	return Reading{
		Zone:     d.Classify(distance, scale),
		Distance: distance,
	}
}

// Begin opens a drag session
func (d *Docker) Begin() *Session {
	return &Session{active: true}
}

// Update samples within a session. The first docked reading of the session
// carries the snap and the completion signal; later readings never do.
func (d *Docker) Update(s *Session, item, target geometry.Rect, scale float64) Reading {
	reading := d.Sample(item, target, scale)
	if !s.Active() {
		return reading
	}

	s.last = reading.Zone
	if reading.Zone != Docked || s.docked {
		return reading
	}

	s.docked = true
	socket := d.Socket(target)
	snap := Snap{
		Item:  item.CenteredAt(socket),
		Delta: socket.Sub(item.Center()),
	}
	reading.Snap = &snap
	reading.Complete = true

	log.Debug().
		Float64("distance", reading.Distance).
		Float64("x", snap.Item.Min.X).
		Float64("y", snap.Item.Min.Y).
		Msg("docking: item docked")

	if d.onDocked != nil {
		d.onDocked(snap)
	}
	return reading
}

// End takes a final sample, as on pointer release, and closes the session
func (d *Docker) End(s *Session, item, target geometry.Rect, scale float64) Reading {
	reading := d.Update(s, item, target, scale)
	if s != nil {
		s.active = false
	}
	return reading
}

// Cancel closes the session without sampling; nothing is snapped
func (d *Docker) Cancel(s *Session) {
	if s != nil {
		s.active = false
	}
}

// Session is one drag of the item
type Session struct {
	active bool
	docked bool
	last   Zone
}

// Active reports whether the session accepts samples
func (s *Session) Active() bool {
	return s != nil && s.active
}

// Docked reports whether the session has already snapped
func (s *Session) Docked() bool {
	return s != nil && s.docked
}

// Zone returns the zone of the last sample taken in the session
func (s *Session) Zone() Zone {
	if s == nil {
		return Idle
	}
	return s.last
}
