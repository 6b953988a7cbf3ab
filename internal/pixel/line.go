package pixel

import (
	"image/color"
	"math"
)

// DrawLine rasterizes a solid line from (x0, y0) to (x1, y1), both endpoints
// included, so the line covers max(|x1-x0|, |y1-y0|)+1 pixels.
//
// The walk steps one pixel along the major axis per iteration and
// accumulates the minor span into an error sum; the minor coordinate
// advances each time the sum reaches the major span. The byte offset into
// the surface is carried incrementally instead of being recomputed.
//
// There is no bounds checking: both endpoints must lie on the surface.
// Route beams through ClipSegment (or use DrawLineClipped) first.
func DrawLine(s *Surface, x0, y0, x1, y1 int, c color.RGBA) {
	pix := s.img.Pix

	xspan := x1 - x0
	yspan := y1 - y0

	// Step direction follows the sign of each span
	xinc := Channels
	if xspan < 0 {
		xinc = -Channels
		xspan = -xspan
	}
	yinc := s.img.Stride
	if yspan < 0 {
		yinc = -s.img.Stride
		yspan = -yspan
	}

	pos := s.Offset(x0, y0)

	if xspan < yspan {
		// Vertical major axis. Seeding the sum with half a span centres
		// the minor steps along the line.
		sum := yspan / 2
		for i := 0; i <= yspan; i++ {
			put(pix, pos, c)
			sum += xspan
			if sum >= yspan {
				pos += xinc
				sum -= yspan
			}
			pos += yinc
		}
		return
	}

	// Horizontal major axis (also covers single points)
	sum := xspan / 2
	for i := 0; i <= xspan; i++ {
		put(pix, pos, c)
		sum += yspan
		if sum >= xspan {
			pos += yinc
			sum -= xspan
		}
		pos += xinc
	}
}

// DrawLineClipped clips seg to the surface and draws whatever survives.
// Returns false when no part of the segment is visible.
func DrawLineClipped(s *Surface, seg Segment, c color.RGBA) bool {
	if s.Width() == 0 || s.Height() == 0 {
		return false
	}
	clipped, ok := ClipSegment(seg, s.Bounds())
	if !ok {
		return false
	}
	DrawLine(s,
		int(math.Round(clipped.X0)), int(math.Round(clipped.Y0)),
		int(math.Round(clipped.X1)), int(math.Round(clipped.Y1)),
		c,
	)
	return true
}
