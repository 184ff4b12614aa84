package vista

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer is the drawing collaborator the parallax system emits draw calls
// to: one call per non-tiled layer, or one per visible tile of a tiled layer.
// Coordinates are screen-space pixels.
type Renderer interface {
	DrawImageAt(img *ebiten.Image, x, y float64)
}

// ParallaxLayer is a single background image bound to a speed factor.
//
// A speed factor of 0 counter-moves against the camera at full rate, so the
// layer appears fixed on screen (skybox). A factor of 1 keeps the world
// offset constant, so the layer appears fixed in the world. Values above 1
// overshoot, producing foreground layers that sweep past the camera.
type ParallaxLayer struct {
	// Image is a read-only shared reference; layers never mutate pixels,
	// so multiple layers or cameras may share one image.
	Image *ebiten.Image
	// SpeedFactor is the fraction of camera motion the layer inherits.
	// Typically 0-1, but deliberately not clamped.
	SpeedFactor float64
	// TileMode repeats the image to cover the whole viewport.
	TileMode bool
	// Offset is the layer's static world anchor.
	Offset Vec2

	// worldOffset is the derived per-frame world position of the layer
	// origin.
	worldOffset Vec2
}

// WorldOffset returns the layer's world offset as of the last update.
func (l *ParallaxLayer) WorldOffset() Vec2 {
	return l.worldOffset
}

// update recomputes the layer's world offset for the given camera position.
// This single formula carries the whole parallax illusion.
func (l *ParallaxLayer) update(cameraPosition Vec2, dt float64) {
	l.worldOffset = l.Offset.Sub(cameraPosition.Scale(1 - l.SpeedFactor))
}

// render converts the layer's world offset to screen space and issues draw
// calls through r. Tiled layers cover the viewport with a one-tile margin on
// each side to hide seams during fast movement, skipping tiles whose screen
// rectangle doesn't overlap the viewport.
func (l *ParallaxLayer) render(cam *Camera, r Renderer) {
	if l.Image == nil {
		return
	}
	screen := cam.WorldToScreen(l.worldOffset)

	if !l.TileMode {
		r.DrawImageAt(l.Image, screen.X, screen.Y)
		return
	}

	b := l.Image.Bounds()
	tileW := float64(b.Dx())
	tileH := float64(b.Dy())
	if tileW <= 0 || tileH <= 0 {
		return
	}

	viewW := cam.viewportWidth
	viewH := cam.viewportHeight
	viewport := Rect{Width: viewW, Height: viewH}

	startX := int(math.Floor(-screen.X/tileW)) - 1
	endX := int(math.Ceil((viewW-screen.X)/tileW)) + 1
	startY := int(math.Floor(-screen.Y/tileH)) - 1
	endY := int(math.Ceil((viewH-screen.Y)/tileH)) + 1

	for ty := startY; ty <= endY; ty++ {
		for tx := startX; tx <= endX; tx++ {
			x := screen.X + float64(tx)*tileW
			y := screen.Y + float64(ty)*tileH
			tile := Rect{X: x, Y: y, Width: tileW, Height: tileH}
			if !tile.Intersects(viewport) {
				continue
			}
			r.DrawImageAt(l.Image, x, y)
		}
	}
}

// ParallaxBackground owns an ordered set of parallax layers sharing one
// camera. Layers render back to front, sorted ascending by speed factor.
type ParallaxBackground struct {
	// Enabled gates both update and render. Defaults to true.
	Enabled bool

	layers  []*ParallaxLayer
	sortBuf []*ParallaxLayer
}

// NewParallaxBackground creates an empty, enabled background.
func NewParallaxBackground() *ParallaxBackground {
	return &ParallaxBackground{Enabled: true}
}

// AddLayer appends a layer and returns it for later removal or mutation.
func (p *ParallaxBackground) AddLayer(img *ebiten.Image, speedFactor float64, tileMode bool, offset Vec2) *ParallaxLayer {
	layer := &ParallaxLayer{
		Image:       img,
		SpeedFactor: speedFactor,
		TileMode:    tileMode,
		Offset:      offset,
	}
	p.layers = append(p.layers, layer)
	return layer
}

// RemoveLayer removes a layer if present.
func (p *ParallaxBackground) RemoveLayer(layer *ParallaxLayer) {
	for i, l := range p.layers {
		if l == layer {
			p.layers = append(p.layers[:i], p.layers[i+1:]...)
			return
		}
	}
}

// Clear removes all layers.
func (p *ParallaxBackground) Clear() {
	p.layers = p.layers[:0]
}

// Len returns the number of layers.
func (p *ParallaxBackground) Len() int {
	return len(p.layers)
}

// Layers returns the layer list in insertion order.
// The returned slice MUST NOT be mutated.
func (p *ParallaxBackground) Layers() []*ParallaxLayer {
	return p.layers
}

// Update recomputes each layer's world offset for the camera position.
func (p *ParallaxBackground) Update(cameraPosition Vec2, dt float64) {
	if !p.Enabled {
		return
	}
	for _, layer := range p.layers {
		layer.update(cameraPosition, dt)
	}
}

// Render draws all layers back to front. The draw order is re-sorted by
// speed factor on every call rather than cached, so layers can be inserted
// or removed at runtime; layer counts are small enough that the sort is
// cheaper than invalidation bookkeeping. Returns false when nothing was
// rendered.
func (p *ParallaxBackground) Render(cam *Camera, r Renderer) bool {
	if !p.Enabled || len(p.layers) == 0 {
		return false
	}

	p.sortBuf = append(p.sortBuf[:0], p.layers...)
	sort.SliceStable(p.sortBuf, func(i, j int) bool {
		return p.sortBuf[i].SpeedFactor < p.sortBuf[j].SpeedFactor
	})

	for _, layer := range p.sortBuf {
		layer.render(cam, r)
	}
	return true
}
