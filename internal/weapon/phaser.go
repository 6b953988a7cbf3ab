// Package weapon implements the phaser beams: beam geometry, the hit test
// against a ship, beam drawing and the charge/fire cycle of a ship's phasers.
package weapon

import (
	"image/color"
	"math"

	"github.com/vovakirdan/penguin-warrior/internal/core"
	"github.com/vovakirdan/penguin-warrior/internal/pixel"
)

const (
	// DefaultRange is how far a beam reaches: twice the default world width.
	DefaultRange = 4000.0

	// DefaultHitRadius is the perpendicular distance from the beam within
	// which a target counts as hit.
	DefaultHitRadius = 650.0
)

// BeamColor is the colour phaser beams are drawn with.
var BeamColor = color.RGBA{R: 0xd2, G: 0xff, B: 0xff, A: 0xff}

// Emitter is the origin of a beam in world space.
// Angle is in degrees: 0 points along +X and angles grow counter-clockwise
// as seen on screen, where Y grows downward.
type Emitter struct {
	X, Y  float64
	Angle float64
}

// Target is a point that can be hit by a beam.
type Target struct {
	X, Y float64
}

// BeamCoords returns the segment from the emitter to the far end of a beam
// of length rng.
func BeamCoords(src Emitter, rng float64) pixel.Segment {
	theta := core.Radians(src.Angle)
	return pixel.Segment{
		X0: src.X,
		Y0: src.Y,
		X1: rng*math.Cos(theta) + src.X,
		Y1: -rng*math.Sin(theta) + src.Y,
	}
}

// HitTest reports whether a beam fired by src would hit dst.
// Targets behind the emitter are never hit. Otherwise dst is projected onto
// the beam direction and hit when its distance from the beam is below radius.
func HitTest(src Emitter, dst Target, rng, radius float64) bool {
	beam := BeamCoords(src, rng)

	v1x := beam.X1 - beam.X0
	v1y := beam.Y1 - beam.Y0
	v2x := dst.X - beam.X0
	v2y := dst.Y - beam.Y0

	dot := v1x*v2x + v1y*v2y
	if dot < 0 {
		return false
	}

	lenSq := v1x*v1x + v1y*v1y
	if lenSq == 0 {
		// No direction to project on: plain distance from the emitter
		return math.Hypot(v2x, v2y) < radius
	}

	px := v1x * dot / lenSq
	py := v1y * dot / lenSq
	return math.Hypot(v2x-px, v2y-py) < radius
}

// DrawBeam draws the beam of src onto s, where (cameraX, cameraY) is the
// world position of the surface's top-left corner. Beams that miss the
// surface draw nothing; the return value reports whether anything was drawn.
func DrawBeam(s *pixel.Surface, src Emitter, cameraX, cameraY, rng float64, c color.RGBA) bool {
	seg := BeamCoords(src, rng)
	seg.X0 -= cameraX
	seg.Y0 -= cameraY
	seg.X1 -= cameraX
	seg.Y1 -= cameraY
	return pixel.DrawLineClipped(s, seg, c)
}
