package ecs

import (
	"github.com/phanxgames/vista"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CameraData wraps a vista camera for storage on a Donburi entity.
type CameraData struct {
	Camera *vista.Camera
}

// Camera is the Donburi component type holding a scene camera.
var Camera = donburi.NewComponentType[CameraData]()

// ShakeRequest asks the camera system to shake every camera in the world.
// When Trauma is non-zero the request accumulates trauma instead of starting
// a fixed-duration shake. Requests are queued events, so gameplay systems can
// publish them without holding a camera reference.
type ShakeRequest struct {
	Intensity float64
	Duration  float64
	Kind      vista.ShakeKind
	Trauma    float64
}

// ShakeRequestType is the Donburi event type for camera shake requests.
var ShakeRequestType = events.NewEventType[ShakeRequest]()

// NewCameraEntity spawns an entity carrying cam and returns its entry.
func NewCameraEntity(w donburi.World, cam *vista.Camera) *donburi.Entry {
	entity := w.Create(Camera)
	entry := w.Entry(entity)
	Camera.Set(entry, &CameraData{Camera: cam})
	return entry
}

// AttachShakeHandler subscribes the shake-request handler on w.
// Call once per world, before the first Update.
func AttachShakeHandler(w donburi.World) {
	ShakeRequestType.Subscribe(w, applyShake)
}

// Update drains queued shake requests, then steps every camera by dt.
func Update(w donburi.World, dt float64) {
	ShakeRequestType.ProcessEvents(w)
	Camera.Each(w, func(entry *donburi.Entry) {
		data := Camera.Get(entry)
		if data.Camera != nil {
			data.Camera.Update(dt)
		}
	})
}

func applyShake(w donburi.World, req ShakeRequest) {
	Camera.Each(w, func(entry *donburi.Entry) {
		data := Camera.Get(entry)
		if data.Camera == nil {
			return
		}
		if req.Trauma > 0 {
			data.Camera.AddTrauma(req.Trauma)
			return
		}
		data.Camera.Shake(req.Intensity, req.Duration, req.Kind)
	})
}
