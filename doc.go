// Package vista is a 2D camera and parallax library for [Ebitengine].
//
// Vista manages the view into a 2D world: a unified world/screen coordinate
// transform, pluggable follow strategies, zoom and world-bounds constraints,
// stackable temporal effects (shake, trauma), and a tile-culled parallax
// background renderer.
//
// # Quick start
//
// Create a camera for your viewport, point it at a target, and step it once
// per frame:
//
//	cam := vista.NewCamera(800, 600)
//	cam.Follow(player, vista.ModePlatformer)
//	cam.SetBounds(vista.Rect{Width: 4000, Height: 1200})
//
//	// Each frame:
//	cam.Update(1.0 / 60.0)
//	screenPos := cam.WorldToScreen(sprite.Pos)
//
// The camera position is the world-space center of the viewport, smoothed
// toward the follow strategy's output. WorldToScreen of the viewport rect's
// top-left is always (0,0).
//
// # Following
//
// A [Target] is anything with a world position; targets that also implement
// [Mover] expose a velocity for look-ahead. Built-in [FollowStrategy]
// implementations cover fixed, direct, platformer-deadzone, and
// top-down-with-look-ahead cameras, with [Mode] as construction sugar.
// Custom strategies plug in via [Camera.SetFollowStrategy].
//
// # Effects
//
// [Camera.Shake] and [Camera.AddTrauma] stack time-bounded effects that
// perturb the published camera position and rotation without disturbing the
// smoothed base position. Effects compose additively and remove themselves
// when expired.
//
// # Parallax
//
// [ParallaxBackground] renders background layers sorted back to front by
// speed factor, tiling and culling them against the viewport. Layer stacks
// can be declared in a Tiled map's image layers and loaded with
// [ParallaxBackground.LoadTiled] (via [go-tiled]).
//
// Position smoothing and [Camera.ScrollTo] animations are built on [gween]
// easing. ECS integration lives in the vista/ecs submodule ([Donburi]
// adapter).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [go-tiled]: https://github.com/lafriks/go-tiled
// [Donburi]: https://github.com/yohamta/donburi
package vista
