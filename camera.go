package vista

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// zoomEpsilon is the convergence threshold below which zoom smoothing is
// skipped to avoid float jitter on an already-settled value.
const zoomEpsilon = 0.001

// Camera is a 2D viewport/transform manager. Its position is the world-space
// center of the viewport; every frame Update runs a fixed pipeline (follow,
// smooth, effects, constraints, viewport, parallax, publish) and the
// coordinate API places everything else on screen.
type Camera struct {
	// SmoothSpeed controls how fast position and zoom converge on their
	// targets. The smoothing step uses t = min(1, SmoothSpeed*dt*60): the
	// *60 normalizes behavior around a 60fps baseline, a deliberate
	// simplification rather than true frame-rate-independent damping.
	SmoothSpeed float64
	// Easing is the interpolation curve used for position smoothing.
	// Zoom always smooths linearly.
	Easing Interpolation

	viewportWidth  float64
	viewportHeight float64

	position       Vec2 // world-space viewport center, smoothed
	targetPosition Vec2 // desired position before smoothing
	zoom           float64
	targetZoom     float64
	rotation       float64

	// Transient effect contributions, zeroed at the start of every
	// effects pass.
	offset         Vec2
	rotationOffset float64

	target   Target
	strategy FollowStrategy
	mode     Mode

	constraints Constraints
	effects     []Effect
	parallax    *ParallaxBackground

	viewportRect Rect

	scrollTween *scrollAnim
	renderer    Renderer
}

// NewCamera creates a camera for a viewport of the given pixel size,
// centered on the world origin with zoom 1, no target, and a direct-follow
// strategy.
func NewCamera(viewportWidth, viewportHeight float64) *Camera {
	c := &Camera{
		SmoothSpeed:    0.1,
		Easing:         Linear,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
		zoom:           1.0,
		targetZoom:     1.0,
		strategy:       DirectFollow{},
		mode:           ModeFollow,
		constraints:    DefaultConstraints(),
		parallax:       NewParallaxBackground(),
	}
	c.updateViewportRect()
	return c
}

// --- State accessors ---

// Position returns the resolved camera position for the current frame,
// including any active effect offset. This is what the renderer should use.
func (c *Camera) Position() Vec2 {
	return c.position.Add(c.offset)
}

// BasePosition returns the smoothed camera position without effect offsets.
func (c *Camera) BasePosition() Vec2 {
	return c.position
}

// SetPosition snaps the camera (and its smoothing target) to a world
// position and recomputes the viewport immediately, so coordinate
// conversions are consistent before the next Update.
func (c *Camera) SetPosition(pos Vec2) {
	c.position = pos
	c.targetPosition = pos
	c.updateViewportRect()
}

// Zoom returns the current zoom factor.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// SetZoom sets the target zoom, clamped to the constraint range at the point
// it's set so zoom can never transiently exceed its bounds mid-interpolation.
// With smooth false the zoom snaps immediately.
func (c *Camera) SetZoom(zoom float64, smooth bool) {
	c.targetZoom = c.constraints.clampZoom(zoom)
	if !smooth {
		c.zoom = c.targetZoom
		c.updateViewportRect()
	}
}

// Rotation returns the base camera rotation in radians.
func (c *Camera) Rotation() float64 {
	return c.rotation
}

// SetRotation sets the camera rotation, clamped to the constraint range.
func (c *Camera) SetRotation(radians float64) {
	c.rotation = c.constraints.RotationRange.Clamp(radians)
}

// RotationOffset returns the transient effect-driven rotation contribution
// for the current frame.
func (c *Camera) RotationOffset() float64 {
	return c.rotationOffset
}

// ViewportRect returns the world-space rectangle visible through the camera,
// as of the last Update (or position/zoom snap).
func (c *Camera) ViewportRect() Rect {
	return c.viewportRect
}

// ViewportWidth returns the viewport width in pixels.
func (c *Camera) ViewportWidth() float64 {
	return c.viewportWidth
}

// ViewportHeight returns the viewport height in pixels.
func (c *Camera) ViewportHeight() float64 {
	return c.viewportHeight
}

// SetViewportSize resizes the viewport (e.g. after a window resize) and
// recomputes the visible rectangle.
func (c *Camera) SetViewportSize(width, height float64) {
	c.viewportWidth = width
	c.viewportHeight = height
	c.updateViewportRect()
}

// --- Target and follow strategy ---

// SetTarget sets the object the camera follows. Pass nil to stop following;
// the camera holds its last position.
func (c *Camera) SetTarget(target Target) {
	c.target = target
}

// Target returns the current follow target, or nil.
func (c *Camera) Target() Target {
	return c.target
}

// Follow sets the target and switches to the default strategy for mode.
func (c *Camera) Follow(target Target, mode Mode) {
	c.target = target
	c.SetMode(mode)
}

// SetFollowStrategy replaces the active follow strategy. The camera position
// is untouched, so swapping strategies never jumps beyond what smoothing
// already allows.
func (c *Camera) SetFollowStrategy(strategy FollowStrategy) {
	c.strategy = strategy
	c.mode = modeForStrategy(strategy)
}

// Strategy returns the active follow strategy.
func (c *Camera) Strategy() FollowStrategy {
	return c.strategy
}

// SetMode switches to the default strategy for a legacy follow mode.
// It is sugar over SetFollowStrategy.
func (c *Camera) SetMode(mode Mode) {
	c.mode = mode
	c.strategy = c.strategyForMode(mode)
}

// Mode returns the legacy mode matching the active strategy.
func (c *Camera) Mode() Mode {
	return c.mode
}

// --- Constraints ---

// SetConstraints replaces the constraint set wholesale. Invalid zoom or
// rotation limits are repaired, and the current zoom is re-clamped so the
// camera never holds an out-of-range value.
func (c *Camera) SetConstraints(constraints Constraints) {
	constraints.normalize()
	c.constraints = constraints
	c.zoom = c.constraints.clampZoom(c.zoom)
	c.targetZoom = c.constraints.clampZoom(c.targetZoom)
	c.rotation = c.constraints.RotationRange.Clamp(c.rotation)
}

// Constraints returns the active constraint set.
func (c *Camera) Constraints() Constraints {
	return c.constraints
}

// SetBounds enables world-bounds clamping: the visible area is kept inside
// bounds every frame.
func (c *Camera) SetBounds(bounds Rect) {
	c.constraints.Bounds = bounds
	c.constraints.BoundsEnabled = true
}

// ClearBounds disables world-bounds clamping.
func (c *Camera) ClearBounds() {
	c.constraints.BoundsEnabled = false
}

// --- Effects ---

// Shake starts a shake effect with the given peak intensity and duration in
// seconds. Multiple shakes stack additively.
func (c *Camera) Shake(intensity, duration float64, kind ShakeKind) {
	c.AddEffect(NewShakeEffect(intensity, duration, kind))
}

// AddTrauma accumulates trauma-style shake. If a trauma effect is already
// active its trauma is increased (clamped at 1.0); otherwise a new one is
// created with the default decay rate.
func (c *Camera) AddTrauma(amount float64) {
	for _, e := range c.effects {
		if t, ok := e.(*TraumaEffect); ok {
			t.AddTrauma(amount)
			return
		}
	}
	c.AddEffect(NewTraumaEffect(amount, 0))
}

// AddEffect registers an effect. It is updated, applied, and eventually
// removed automatically by Update.
func (c *Camera) AddEffect(effect Effect) {
	c.effects = append(c.effects, effect)
}

// RemoveEffect removes a specific effect if present.
func (c *Camera) RemoveEffect(effect Effect) {
	for i, e := range c.effects {
		if e == effect {
			c.effects = append(c.effects[:i], c.effects[i+1:]...)
			return
		}
	}
}

// ClearEffects removes all active effects.
func (c *Camera) ClearEffects() {
	c.effects = c.effects[:0]
}

// EffectCount returns the number of active effects.
func (c *Camera) EffectCount() int {
	return len(c.effects)
}

// --- Scroll animation ---

// ScrollTo animates the camera to a world position over duration seconds.
// While scrolling, the tween drives the position directly; it takes
// precedence over follow smoothing until both axes complete.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.position.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.position.Y), float32(y), duration, easeFn),
	}
}

// ScrollToTile scrolls to the center of the given tile in a tile-based layout.
func (c *Camera) ScrollToTile(tileX, tileY int, tileW, tileH float64, duration float32, easeFn ease.TweenFunc) {
	worldX := float64(tileX)*tileW + tileW/2
	worldY := float64(tileY)*tileH + tileH/2
	c.ScrollTo(worldX, worldY, duration, easeFn)
}

// --- Renderer ---

// SetRenderer attaches the renderer the camera publishes its resolved
// position to at the end of every Update. Optional; pass nil to detach.
func (c *Camera) SetRenderer(r Renderer) {
	c.renderer = r
}

// --- Core update ---

// Update advances the camera one frame. The pipeline order is fixed:
// follow strategy, position smoothing, zoom smoothing, scroll animation,
// effects, constraints, viewport rect, parallax, publish. Rendering code
// must not call the coordinate API mid-update.
func (c *Camera) Update(dt float64) {
	// 1. Follow strategy picks the new target position.
	if c.target != nil {
		c.targetPosition = c.strategy.TargetPosition(c, c.target, dt)
	}

	// 2-3. Smooth position and zoom toward targets.
	t := math.Min(1.0, c.SmoothSpeed*dt*60.0)
	c.position = InterpolateVec2(c.position, c.targetPosition, t, c.Easing)
	if math.Abs(c.targetZoom-c.zoom) > zoomEpsilon {
		c.zoom = Interpolate(c.zoom, c.targetZoom, t, Linear)
	}
	c.advanceScroll(dt)

	// 4. Effects pass.
	c.updateEffects(dt)

	// 5. Constraints pass.
	c.applyConstraints()

	// 6. Recompute the visible world rectangle.
	c.updateViewportRect()

	// 7. Parallax follows the settled position.
	c.parallax.Update(c.position, dt)

	// 8. Publish the resolved position (including effect offset).
	if pr, ok := c.renderer.(PositionReceiver); ok {
		pr.SetCameraPosition(c.Position())
	}
}

// advanceScroll steps the active scroll tween, driving position directly and
// snapping the smoothing target along with it.
func (c *Camera) advanceScroll(dt float64) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(float32(dt))
		c.position.X = float64(val)
		c.targetPosition.X = c.position.X
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(float32(dt))
		c.position.Y = float64(val)
		c.targetPosition.Y = c.position.Y
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
}

// updateEffects zeroes the transient offsets, then replays all active
// effects, sweeping out expired ones in place. Expired effects are removed
// without a final Apply; effects still active all contribute this frame.
func (c *Camera) updateEffects(dt float64) {
	c.offset = Vec2{}
	c.rotationOffset = 0

	kept := c.effects[:0]
	for _, effect := range c.effects {
		if effect.Update(dt) {
			effect.Apply(c)
			kept = append(kept, effect)
		}
	}
	for i := len(kept); i < len(c.effects); i++ {
		c.effects[i] = nil
	}
	c.effects = kept
}

// applyConstraints clamps zoom/rotation and, when bounds are enabled, keeps
// the entire viewport inside the bounds rectangle. If the viewport is larger
// than the bounds on an axis the camera collapses to the bounds center on
// that axis. The smoothing target is snapped to the clamped position so the
// camera doesn't fight the clamp every subsequent frame.
func (c *Camera) applyConstraints() {
	c.zoom = c.constraints.clampZoom(c.zoom)
	c.rotation = c.constraints.RotationRange.Clamp(c.rotation)

	if !c.constraints.BoundsEnabled {
		return
	}
	b := c.constraints.Bounds
	halfW := c.viewportWidth / 2 / c.zoom
	halfH := c.viewportHeight / 2 / c.zoom

	minX := b.X + halfW
	maxX := b.X + b.Width - halfW
	minY := b.Y + halfH
	maxY := b.Y + b.Height - halfH

	if minX > maxX {
		c.position.X = b.X + b.Width/2
	} else {
		c.position.X = math.Max(minX, math.Min(c.position.X, maxX))
	}
	if minY > maxY {
		c.position.Y = b.Y + b.Height/2
	} else {
		c.position.Y = math.Max(minY, math.Min(c.position.Y, maxY))
	}
	c.targetPosition = c.position
}

// updateViewportRect recomputes the world-space visible rectangle from the
// current position and zoom.
func (c *Camera) updateViewportRect() {
	halfW := c.viewportWidth / 2 / c.zoom
	halfH := c.viewportHeight / 2 / c.zoom
	c.viewportRect = Rect{
		X:      c.position.X - halfW,
		Y:      c.position.Y - halfH,
		Width:  c.viewportWidth / c.zoom,
		Height: c.viewportHeight / c.zoom,
	}
}

// --- Coordinate conversion ---
//
// The camera position is the viewport center: WorldToScreen of the viewport
// rect's top-left is always (0,0), and WorldToScreen of the position is the
// viewport center in pixels. Effect offsets are applied by the renderer via
// the published position, not by these conversions.

// WorldToScreen converts a world position to screen pixels
// (viewport top-left origin).
func (c *Camera) WorldToScreen(world Vec2) Vec2 {
	return world.Sub(c.viewportRect.TopLeft()).Scale(c.zoom)
}

// ScreenToWorld converts a screen pixel position to world coordinates.
func (c *Camera) ScreenToWorld(screen Vec2) Vec2 {
	return c.viewportRect.TopLeft().Add(screen.Scale(1 / c.zoom))
}

// WorldToScreenVector converts a world-space delta or size to screen pixels,
// without the positional offset.
func (c *Camera) WorldToScreenVector(world Vec2) Vec2 {
	return world.Scale(c.zoom)
}

// ScreenToWorldVector converts a screen-space delta or size to world units,
// without the positional offset.
func (c *Camera) ScreenToWorldVector(screen Vec2) Vec2 {
	return screen.Scale(1 / c.zoom)
}

// WorldMatrix returns the full camera transform as a GeoM, for callers
// drawing world-space content directly with ebiten. Composition order:
//
//	Translate(-position) -> Rotate(-angle) -> Scale(zoom) -> Translate(center)
//
// It uses the resolved position and total rotation, so shake offsets come
// through. Unlike the flat coordinate API it honors camera rotation.
func (c *Camera) WorldMatrix() ebiten.GeoM {
	var g ebiten.GeoM
	pos := c.Position()
	g.Translate(-pos.X, -pos.Y)
	g.Rotate(-(c.rotation + c.rotationOffset))
	g.Scale(c.zoom, c.zoom)
	g.Translate(c.viewportWidth/2, c.viewportHeight/2)
	return g
}

// IsVisible reports whether a world point projects inside the viewport,
// expanded by margin pixels on every side.
func (c *Camera) IsVisible(world Vec2, margin float64) bool {
	screen := c.WorldToScreen(world)
	return screen.X >= -margin && screen.X <= c.viewportWidth+margin &&
		screen.Y >= -margin && screen.Y <= c.viewportHeight+margin
}

// --- Parallax ---

// Parallax returns the camera's parallax background.
func (c *Camera) Parallax() *ParallaxBackground {
	return c.parallax
}

// AddParallaxLayer adds a background layer bound to this camera.
func (c *Camera) AddParallaxLayer(img *ebiten.Image, speedFactor float64, tileMode bool, offset Vec2) *ParallaxLayer {
	return c.parallax.AddLayer(img, speedFactor, tileMode, offset)
}

// RemoveParallaxLayer removes a background layer.
func (c *Camera) RemoveParallaxLayer(layer *ParallaxLayer) {
	c.parallax.RemoveLayer(layer)
}

// ClearParallaxLayers removes all background layers.
func (c *Camera) ClearParallaxLayers() {
	c.parallax.Clear()
}

// RenderParallax draws the parallax background back to front through r.
// Returns false when nothing was rendered.
func (c *Camera) RenderParallax(r Renderer) bool {
	return c.parallax.Render(c, r)
}
