package vista

// Target is anything the camera can follow. Implementations expose a world
// position; the camera never mutates a target.
type Target interface {
	Position() Vec2
}

// Mover is an optional Target capability. Strategies that use velocity
// (look-ahead) check for it with a type assertion and degrade to zero
// look-ahead when the target doesn't implement it.
type Mover interface {
	Velocity() Vec2
}

// StaticTarget adapts a plain world position into a Target.
type StaticTarget Vec2

// Position returns the wrapped position.
func (t StaticTarget) Position() Vec2 {
	return Vec2(t)
}

// velocityOf returns the target's velocity if it implements Mover,
// or the zero vector otherwise.
func velocityOf(target Target) Vec2 {
	if m, ok := target.(Mover); ok {
		return m.Velocity()
	}
	return Vec2{}
}
