package vista

import "github.com/hajimehoshi/ebiten/v2"

// PositionReceiver is an optional Renderer capability. Renderers that
// implement it receive the camera's resolved position (base position plus
// effect offset) at the end of every Update, which is where shake offsets
// are meant to be consumed.
type PositionReceiver interface {
	SetCameraPosition(pos Vec2)
}

// SurfaceRenderer is a Renderer that draws onto an ebiten image and records
// the published camera position. It covers the common case of rendering the
// parallax background straight onto the frame's screen image.
type SurfaceRenderer struct {
	// Target is the destination image for draw calls.
	Target *ebiten.Image
	// CameraPosition is the most recently published camera position.
	CameraPosition Vec2
}

// NewSurfaceRenderer creates a renderer drawing onto target.
func NewSurfaceRenderer(target *ebiten.Image) *SurfaceRenderer {
	return &SurfaceRenderer{Target: target}
}

// DrawImageAt blits img with its top-left corner at (x, y) screen pixels.
func (r *SurfaceRenderer) DrawImageAt(img *ebiten.Image, x, y float64) {
	if r.Target == nil || img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	r.Target.DrawImage(img, op)
}

// SetCameraPosition records the camera position published for this frame.
func (r *SurfaceRenderer) SetCameraPosition(pos Vec2) {
	r.CameraPosition = pos
}
