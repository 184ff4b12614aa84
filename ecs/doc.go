// Package ecs provides ECS adapters for vista cameras.
//
// The camera is stored as a [Donburi] component via [Camera], and shake
// requests from gameplay systems are decoupled through the queued
// [ShakeRequestType] event. A typical setup:
//
//	world := donburi.NewWorld()
//	ecs.AttachShakeHandler(world)
//	ecs.NewCameraEntity(world, cam)
//
//	// Each frame:
//	ecs.Update(world, dt)
//
//	// From any system:
//	ecs.ShakeRequestType.Publish(world, ecs.ShakeRequest{Trauma: 0.4})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
