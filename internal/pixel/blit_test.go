package pixel

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/penguin-warrior/internal/core"
)

func TestBlitColorKey(t *testing.T) {
	src := NewSurface(2, 2)
	src.Set(0, 0, RGB(10, 0, 0))
	src.Set(1, 1, RGB(0, 10, 0))

	dst := NewSurface(4, 4)
	dst.Fill(RGB(1, 1, 1))
	dst.Blit(src, src.Rect(), 1, 1)

	tests := []struct {
		x, y     int
		expected color.RGBA
	}{
		{1, 1, RGB(10, 0, 0)},
		{2, 2, RGB(0, 10, 0)},
		{2, 1, RGB(1, 1, 1)}, // transparent source pixel
		{0, 0, RGB(1, 1, 1)},
	}
	for _, tc := range tests {
		if got := dst.At(tc.x, tc.y); got != tc.expected {
			t.Errorf("At(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestBlitClipsDestination(t *testing.T) {
	src := NewSurface(4, 4)
	src.Fill(RGB(3, 3, 3))

	dst := NewSurface(4, 4)
	dst.Blit(src, src.Rect(), -2, 3)

	count := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if dst.At(x, y).A != 0 {
				count++
			}
		}
	}
	if count != 2 {
		t.Errorf("clipped blit painted %d pixels, expected 2", count)
	}
}

func TestBlitClipsSource(t *testing.T) {
	src := NewSurface(4, 4)
	src.Set(0, 0, RGB(8, 8, 8))
	src.Set(3, 3, RGB(9, 9, 9))

	dst := NewSurface(8, 8)
	// Region hangs off the top-left of the source; (0,0) lands at (2,2)
	dst.Blit(src, core.NewRect(-2, -2, 4, 4), 0, 0)

	if got := dst.At(2, 2); got != RGB(8, 8, 8) {
		t.Errorf("At(2, 2) = %v, expected source origin", got)
	}
	if got := dst.At(0, 0); got.A != 0 {
		t.Errorf("At(0, 0) = %v, expected untouched", got)
	}
}

func TestBlitOpaque(t *testing.T) {
	src := NewSurface(3, 1)
	src.Set(0, 0, RGB(1, 2, 3))

	dst := NewSurfaceStride(3, 2, 20)
	dst.Fill(RGB(9, 9, 9))
	dst.BlitOpaque(src, src.Rect(), 0, 1)

	if got := dst.At(1, 1); got != (color.RGBA{}) {
		t.Errorf("At(1, 1) = %v, expected copied transparent pixel", got)
	}
	if got := dst.At(0, 1); got != RGB(1, 2, 3) {
		t.Errorf("At(0, 1) = %v, expected %v", got, RGB(1, 2, 3))
	}
	if got := dst.At(0, 0); got != RGB(9, 9, 9) {
		t.Errorf("At(0, 0) = %v, expected untouched", got)
	}
}

func TestBlitOffSurface(t *testing.T) {
	src := NewSurface(2, 2)
	src.Fill(RGB(1, 1, 1))
	dst := NewSurface(2, 2)
	dst.Blit(src, src.Rect(), 5, 5)
	dst.Blit(src, core.NewRect(10, 10, 2, 2), 0, 0)
	if dst.At(0, 0).A != 0 {
		t.Error("off-surface blit should not write")
	}
}
