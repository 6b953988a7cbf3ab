// Package pixel is a small software blitting layer: surfaces backed by a
// packed RGBA byte buffer, rectangle blits, and the line rasterizer and
// clipper used by the phaser beams.
package pixel

import (
	"image"
	"image/color"

	"github.com/vovakirdan/penguin-warrior/internal/core"
)

// Channels is the number of bytes per pixel (R, G, B, A).
const Channels = 4

// Surface is a mutable rectangular pixel store.
// Pixels are kept row-major in a flat byte slice; Stride is the number of
// bytes between the start of consecutive rows and may exceed Width*Channels.
// The backing store is an *image.RGBA so text drawing and window uploads
// can work on the very same bytes.
type Surface struct {
	img *image.RGBA
}

// NewSurface creates a cleared surface with a tightly packed stride.
func NewSurface(width, height int) *Surface {
	return NewSurfaceStride(width, height, width*Channels)
}

// NewSurfaceStride creates a cleared surface whose rows are stride bytes
// apart. Strides smaller than width*Channels are raised to that minimum.
func NewSurfaceStride(width, height, stride int) *Surface {
	width = core.Max(width, 0)
	height = core.Max(height, 0)
	stride = core.Max(stride, width*Channels)
	return &Surface{
		img: &image.RGBA{
			Pix:    make([]byte, stride*height),
			Stride: stride,
			Rect:   image.Rect(0, 0, width, height),
		},
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// Stride returns the number of bytes per row.
func (s *Surface) Stride() int {
	return s.img.Stride
}

// Pix returns the raw pixel bytes. The slice aliases the surface.
func (s *Surface) Pix() []byte {
	return s.img.Pix
}

// Image exposes the surface as an *image.RGBA sharing the same memory.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Rect returns the surface area as an integer rectangle at the origin.
func (s *Surface) Rect() core.Rect {
	return core.NewRect(0, 0, s.Width(), s.Height())
}

// Bounds returns the inclusive clip rectangle covering the whole surface.
func (s *Surface) Bounds() ClipRect {
	return ClipRect{
		Left:   0,
		Top:    0,
		Right:  float64(s.Width() - 1),
		Bottom: float64(s.Height() - 1),
	}
}

// Offset returns the byte offset of pixel (x, y).
// The result is meaningless for coordinates outside the surface.
func (s *Surface) Offset(x, y int) int {
	return y*s.img.Stride + x*Channels
}

// Packed returns the surface as a tightly packed RGBA byte slice
// (stride == Width*Channels), copying only when rows are padded.
func (s *Surface) Packed() []byte {
	rowBytes := s.Width() * Channels
	if s.img.Stride == rowBytes {
		return s.img.Pix
	}
	out := make([]byte, rowBytes*s.Height())
	for y := 0; y < s.Height(); y++ {
		copy(out[y*rowBytes:(y+1)*rowBytes], s.img.Pix[s.Offset(0, y):])
	}
	return out
}

// Set writes a pixel. Out-of-bounds coordinates are silently ignored.
func (s *Surface) Set(x, y int, c color.RGBA) {
	if x < 0 || x >= s.Width() || y < 0 || y >= s.Height() {
		return
	}
	put(s.img.Pix, s.Offset(x, y), c)
}

// At returns the pixel at (x, y), or transparent black out of bounds.
func (s *Surface) At(x, y int) color.RGBA {
	if x < 0 || x >= s.Width() || y < 0 || y >= s.Height() {
		return color.RGBA{}
	}
	i := s.Offset(x, y)
	p := s.img.Pix[i : i+Channels : i+Channels]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Fill sets every pixel to c.
func (s *Surface) Fill(c color.RGBA) {
	s.FillRect(s.Rect(), c)
}

// Clear resets every byte, including row padding, to zero.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// FillRect fills the part of r that lies on the surface.
func (s *Surface) FillRect(r core.Rect, c color.RGBA) {
	r = r.Intersect(s.Rect())
	if r.Empty() {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		pos := s.Offset(r.X, y)
		for x := r.X; x < r.Right(); x++ {
			put(s.img.Pix, pos, c)
			pos += Channels
		}
	}
}

// Resize changes the surface dimensions, preserving content where possible.
func (s *Surface) Resize(width, height int) {
	if width == s.Width() && height == s.Height() {
		return
	}

	old := s.img
	fresh := NewSurface(width, height)
	copyW := core.Min(old.Rect.Dx(), width) * Channels
	copyH := core.Min(old.Rect.Dy(), height)
	for y := 0; y < copyH; y++ {
		copy(fresh.img.Pix[fresh.Offset(0, y):fresh.Offset(0, y)+copyW], old.Pix[y*old.Stride:])
	}
	s.img = fresh.img
}

// put writes one pixel at byte offset i.
func put(pix []byte, i int, c color.RGBA) {
	p := pix[i : i+Channels : i+Channels]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = c.A
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
