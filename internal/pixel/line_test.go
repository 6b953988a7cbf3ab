package pixel

import (
	"image/color"
	"math"
	"testing"

	"github.com/vovakirdan/penguin-warrior/internal/core"
)

var white = RGB(255, 255, 255)

// litPixels returns the coordinates of all non-transparent pixels.
func litPixels(s *Surface) map[[2]int]bool {
	lit := make(map[[2]int]bool)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.At(x, y).A != 0 {
				lit[[2]int{x, y}] = true
			}
		}
	}
	return lit
}

func TestDrawLineHorizontal(t *testing.T) {
	s := NewSurface(16, 4)
	DrawLine(s, 0, 0, 9, 0, white)

	lit := litPixels(s)
	if len(lit) != 10 {
		t.Fatalf("horizontal line lit %d pixels, expected 10", len(lit))
	}
	for x := 0; x < 10; x++ {
		if !lit[[2]int{x, 0}] {
			t.Errorf("expected pixel at (%d, 0)", x)
		}
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	s := NewSurface(8, 8)
	DrawLine(s, 0, 0, 4, 4, white)

	lit := litPixels(s)
	if len(lit) != 5 {
		t.Fatalf("diagonal line lit %d pixels, expected 5", len(lit))
	}
	for i := 0; i < 5; i++ {
		if !lit[[2]int{i, i}] {
			t.Errorf("expected staircase pixel at (%d, %d)", i, i)
		}
	}

	// Drawing the other way round covers the same cells
	r := NewSurface(8, 8)
	DrawLine(r, 4, 4, 0, 0, white)
	for p := range litPixels(r) {
		if !lit[p] {
			t.Errorf("reversed diagonal lit unexpected pixel %v", p)
		}
	}
}

func TestDrawLineShapes(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		expected       int
	}{
		{"single point", 2, 2, 2, 2, 1},
		{"vertical down", 3, 1, 3, 6, 6},
		{"vertical up", 3, 6, 3, 1, 6},
		{"horizontal leftward", 9, 2, 0, 2, 10},
		{"shallow negative x", 9, 0, 0, 3, 10},
		{"steep", 1, 0, 3, 9, 10},
		{"steep negative y", 3, 9, 1, 0, 10},
		{"gentle slope", 0, 0, 4, 2, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSurface(12, 12)
			DrawLine(s, tc.x0, tc.y0, tc.x1, tc.y1, white)
			lit := litPixels(s)
			if len(lit) != tc.expected {
				t.Errorf("lit %d pixels, expected %d", len(lit), tc.expected)
			}
			if !lit[[2]int{tc.x0, tc.y0}] || !lit[[2]int{tc.x1, tc.y1}] {
				t.Error("both endpoints should be drawn")
			}
		})
	}
}

func TestDrawLineEveryDirection(t *testing.T) {
	// Lines from the centre to every border cell: pixel count, endpoints,
	// one pixel per major-axis coordinate and 8-connectivity.
	const size = 11
	cx, cy := size/2, size/2

	var ends [][2]int
	for i := 0; i < size; i++ {
		ends = append(ends, [2]int{i, 0}, [2]int{i, size - 1}, [2]int{0, i}, [2]int{size - 1, i})
	}

	for _, end := range ends {
		s := NewSurface(size, size)
		DrawLine(s, cx, cy, end[0], end[1], white)
		lit := litPixels(s)

		dx := core.Abs(end[0] - cx)
		dy := core.Abs(end[1] - cy)
		major := core.Max(dx, dy)
		if len(lit) != major+1 {
			t.Errorf("line to %v lit %d pixels, expected %d", end, len(lit), major+1)
			continue
		}
		if !lit[[2]int{cx, cy}] || !lit[end] {
			t.Errorf("line to %v is missing an endpoint", end)
		}

		perMajor := make(map[int]int)
		for p := range lit {
			if dx >= dy {
				perMajor[p[0]]++
			} else {
				perMajor[p[1]]++
			}
			// Every pixel except the end has a neighbour further along
			connected := false
			for ny := -1; ny <= 1; ny++ {
				for nx := -1; nx <= 1; nx++ {
					if (nx != 0 || ny != 0) && lit[[2]int{p[0] + nx, p[1] + ny}] {
						connected = true
					}
				}
			}
			if major > 0 && !connected {
				t.Errorf("line to %v has isolated pixel %v", end, p)
			}
		}
		for k, n := range perMajor {
			if n != 1 {
				t.Errorf("line to %v has %d pixels at major coordinate %d", end, n, k)
			}
		}
	}
}

func TestDrawLinePaddedStride(t *testing.T) {
	s := NewSurfaceStride(8, 4, 64)
	DrawLine(s, 0, 1, 7, 1, white)
	DrawLine(s, 2, 0, 2, 3, white)

	if got := len(litPixels(s)); got != 8+4-1 {
		t.Errorf("lit %d pixels, expected %d", got, 8+4-1)
	}

	// Row padding must stay untouched
	for y := 0; y < s.Height(); y++ {
		row := s.Pix()[y*s.Stride() : (y+1)*s.Stride()]
		for i := 8 * Channels; i < len(row); i++ {
			if row[i] != 0 {
				t.Fatalf("padding byte %d of row %d was written", i, y)
			}
		}
	}
}

func TestDrawLineColor(t *testing.T) {
	s := NewSurface(4, 4)
	c := color.RGBA{R: 10, G: 20, B: 30, A: 40}
	DrawLine(s, 0, 0, 3, 0, c)

	if got := s.At(2, 0); got != c {
		t.Errorf("At(2, 0) = %v, expected %v", got, c)
	}
}

func TestDrawLineClipped(t *testing.T) {
	s := NewSurface(20, 10)

	if DrawLineClipped(s, Segment{X0: -50, Y0: -5, X1: -10, Y1: -1}, white) {
		t.Error("segment fully outside should not be drawn")
	}
	if len(litPixels(s)) != 0 {
		t.Error("rejected segment should not touch the surface")
	}

	if !DrawLineClipped(s, Segment{X0: -100, Y0: 5, X1: 100, Y1: 5}, white) {
		t.Fatal("segment crossing the surface should be drawn")
	}
	lit := litPixels(s)
	if len(lit) != 20 {
		t.Errorf("clipped horizontal beam lit %d pixels, expected 20", len(lit))
	}
	if !lit[[2]int{0, 5}] || !lit[[2]int{19, 5}] {
		t.Error("clipped beam should reach both edges")
	}
}

func TestDrawLineClippedManyBeams(t *testing.T) {
	// Long beams through every direction must never write off-surface
	s := NewSurface(32, 24)
	for deg := 0; deg < 360; deg += 7 {
		rad := core.Radians(float64(deg))
		seg := Segment{
			X0: 16, Y0: 12,
			X1: 16 + 4000*math.Cos(rad), Y1: 12 - 4000*math.Sin(rad),
		}
		if !DrawLineClipped(s, seg, white) {
			t.Errorf("beam at %d degrees from the centre should be visible", deg)
		}
	}
}
