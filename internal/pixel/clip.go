package pixel

import "github.com/vovakirdan/penguin-warrior/internal/core"

// Segment is a line segment between two points in surface space.
type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
}

// ClipRect is an axis-aligned rectangle with inclusive bounds.
type ClipRect struct {
	Left, Top     float64
	Right, Bottom float64
}

// Valid reports whether the bounds are ordered.
func (r ClipRect) Valid() bool {
	return r.Left <= r.Right && r.Top <= r.Bottom
}

// Contains reports whether (x, y) lies inside the rectangle or on its edge.
func (r ClipRect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Axis selects the coordinate a 1-D clip works on.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// ClipSegment reduces seg to the part inside r.
// It returns false when nothing of the segment is visible, which is an
// ordinary outcome for off-screen beams. The endpoint order of seg is kept.
func ClipSegment(seg Segment, r ClipRect) (Segment, bool) {
	if !r.Valid() {
		return seg, false
	}
	seg, ok := clipAxis(seg, AxisX, r.Left, r.Right)
	if !ok {
		return seg, false
	}
	return clipAxis(seg, AxisY, r.Top, r.Bottom)
}

// clipAxis clips seg against lo..hi on the given axis, interpolating the
// other coordinate where an endpoint has to move onto a boundary.
func clipAxis(seg Segment, axis Axis, lo, hi float64) (Segment, bool) {
	a0, b0, a1, b1 := split(seg, axis)

	// Parallel to the boundaries: all or nothing
	if a0 == a1 {
		if a0 < lo || a0 > hi {
			return seg, false
		}
		return seg, true
	}

	// Both endpoints beyond the same boundary
	if (a0 < lo && a1 < lo) || (a0 > hi && a1 > hi) {
		return seg, false
	}

	// Walk from the low extreme to the high one
	swapped := a0 > a1
	if swapped {
		a0, b0, a1, b1 = a1, b1, a0, b0
	}
	bmin, bmax := b0, b1
	if bmin > bmax {
		bmin, bmax = bmax, bmin
	}

	if a0 < lo {
		b0 = core.ClampF(b0+(b1-b0)*(lo-a0)/(a1-a0), bmin, bmax)
		a0 = lo
	}
	if a1 > hi {
		b1 = core.ClampF(b0+(b1-b0)*(hi-a0)/(a1-a0), bmin, bmax)
		a1 = hi
	}

	if swapped {
		a0, b0, a1, b1 = a1, b1, a0, b0
	}
	return join(axis, a0, b0, a1, b1), true
}

// split returns the segment as (axis, other) coordinate pairs.
func split(seg Segment, axis Axis) (a0, b0, a1, b1 float64) {
	if axis == AxisX {
		return seg.X0, seg.Y0, seg.X1, seg.Y1
	}
	return seg.Y0, seg.X0, seg.Y1, seg.X1
}

// join is the inverse of split.
func join(axis Axis, a0, b0, a1, b1 float64) Segment {
	if axis == AxisX {
		return Segment{X0: a0, Y0: b0, X1: a1, Y1: b1}
	}
	return Segment{X0: b0, Y0: a0, X1: b1, Y1: a1}
}
