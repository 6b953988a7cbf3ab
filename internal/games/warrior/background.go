package warrior

import (
	"github.com/vovakirdan/penguin-warrior/internal/core"
	"github.com/vovakirdan/penguin-warrior/internal/pixel"
)

// Starfield layout. The tile grids wrap long before the world ends, which
// nobody notices in a field of stars.
const (
	TileSize    = 64
	gridSize    = 100
	starTiles   = 8
	backFactor  = 4 // back layer scrolls at a quarter of the camera speed
	frontFactor = 2 // front layer at half
	backStars   = 6
	frontStars  = 3
)

// Starfield is the two-layer parallax background.
type Starfield struct {
	back      *pixel.Surface // opaque tile strip
	front     *pixel.Surface // colour-keyed tile strip
	backGrid  [gridSize][gridSize]uint8
	frontGrid [gridSize][gridSize]uint8
}

// NewStarfield generates the tile strips and assigns a random tile to every
// grid cell of both layers.
func NewStarfield(rng *RNG) *Starfield {
	sf := &Starfield{
		back:  pixel.NewSurface(TileSize*starTiles, TileSize),
		front: pixel.NewSurface(TileSize*starTiles, TileSize),
	}

	sf.back.Fill(pixel.RGB(0, 0, 8))
	for t := 0; t < starTiles; t++ {
		for i := 0; i < backStars; i++ {
			v := uint8(60 + rng.Intn(80))
			sf.back.Set(t*TileSize+rng.Intn(TileSize), rng.Intn(TileSize), pixel.RGB(v, v, v+uint8(rng.Intn(40))))
		}
		// Front stars stay on a transparent strip so the back layer shows through
		for i := 0; i < frontStars; i++ {
			v := uint8(170 + rng.Intn(86))
			x, y := t*TileSize+rng.Intn(TileSize-1), rng.Intn(TileSize-1)
			sf.front.Set(x, y, pixel.RGB(v, v, v))
			if rng.Intn(3) == 0 {
				sf.front.Set(x+1, y, pixel.RGB(v/2, v/2, v/2))
				sf.front.Set(x, y+1, pixel.RGB(v/2, v/2, v/2))
			}
		}
	}

	for x := 0; x < gridSize; x++ {
		for y := 0; y < gridSize; y++ {
			sf.backGrid[x][y] = uint8(rng.Intn(starTiles))
			sf.frontGrid[x][y] = uint8(rng.Intn(starTiles))
		}
	}
	return sf
}

// Draw paints both layers for the given camera position. The back layer
// covers the whole surface, so no separate clear is needed.
func (sf *Starfield) Draw(dst *pixel.Surface, cameraX, cameraY float64) {
	sf.drawLayer(dst, sf.back, &sf.backGrid, int(cameraX)/backFactor, int(cameraY)/backFactor, true)
	sf.drawLayer(dst, sf.front, &sf.frontGrid, int(cameraX)/frontFactor, int(cameraY)/frontFactor, false)
}

// drawLayer tiles dst with the layer's tiles, scrolled to (ox, oy).
func (sf *Starfield) drawLayer(dst, strip *pixel.Surface, grid *[gridSize][gridSize]uint8, ox, oy int, opaque bool) {
	ox = core.Max(ox, 0)
	oy = core.Max(oy, 0)

	startTileX := (ox / TileSize) % gridSize
	startTileY := (oy / TileSize) % gridSize
	startDrawX := -(ox % TileSize)
	startDrawY := -(oy % TileSize)

	tileY := startTileY
	for drawY := startDrawY; drawY < dst.Height(); drawY += TileSize {
		tileX := startTileX
		for drawX := startDrawX; drawX < dst.Width(); drawX += TileSize {
			src := core.NewRect(TileSize*int(grid[tileX][tileY]), 0, TileSize, TileSize)
			if opaque {
				dst.BlitOpaque(strip, src, drawX, drawY)
			} else {
				dst.Blit(strip, src, drawX, drawY)
			}
			tileX = (tileX + 1) % gridSize
		}
		tileY = (tileY + 1) % gridSize
	}
}
