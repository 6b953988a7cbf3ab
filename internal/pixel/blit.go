package pixel

import "github.com/vovakirdan/penguin-warrior/internal/core"

// Blit copies the src region sr to dst with its top-left corner at (dx, dy).
// Pixels with zero alpha are treated as transparent and skipped.
// The region is clipped against both surfaces; nothing outside either
// surface is read or written.
func (dst *Surface) Blit(src *Surface, sr core.Rect, dx, dy int) {
	sr, dx, dy, ok := clipBlit(dst, src, sr, dx, dy)
	if !ok {
		return
	}

	for y := 0; y < sr.H; y++ {
		si := src.Offset(sr.X, sr.Y+y)
		di := dst.Offset(dx, dy+y)
		for x := 0; x < sr.W; x++ {
			if src.img.Pix[si+3] != 0 {
				copy(dst.img.Pix[di:di+Channels], src.img.Pix[si:si+Channels])
			}
			si += Channels
			di += Channels
		}
	}
}

// BlitOpaque is Blit without transparency: whole rows are copied.
func (dst *Surface) BlitOpaque(src *Surface, sr core.Rect, dx, dy int) {
	sr, dx, dy, ok := clipBlit(dst, src, sr, dx, dy)
	if !ok {
		return
	}

	rowBytes := sr.W * Channels
	for y := 0; y < sr.H; y++ {
		si := src.Offset(sr.X, sr.Y+y)
		di := dst.Offset(dx, dy+y)
		copy(dst.img.Pix[di:di+rowBytes], src.img.Pix[si:si+rowBytes])
	}
}

// clipBlit trims the source rectangle so that both the source and the
// destination areas lie inside their surfaces.
func clipBlit(dst, src *Surface, sr core.Rect, dx, dy int) (core.Rect, int, int, bool) {
	// Clip against the source surface first, shifting the destination
	// by however much the source origin moved.
	clipped := sr.Intersect(src.Rect())
	dx += clipped.X - sr.X
	dy += clipped.Y - sr.Y
	sr = clipped
	if sr.Empty() {
		return sr, dx, dy, false
	}

	dr := core.NewRect(dx, dy, sr.W, sr.H).Intersect(dst.Rect())
	if dr.Empty() {
		return sr, dx, dy, false
	}
	sr = core.NewRect(sr.X+dr.X-dx, sr.Y+dr.Y-dy, dr.W, dr.H)
	return sr, dr.X, dr.Y, true
}
