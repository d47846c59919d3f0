package physics

import (
	"github.com/automoto/boxhop/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Body is a moving box. Velocities are in units per millisecond.
type Body struct {
	Position      dmath.Vec2
	Velocity      dmath.Vec2
	Width, Height float64
}

// AABB returns the box currently occupied by the body.
func (b *Body) AABB() gamemath.AABB {
	return gamemath.NewAABB(b.Position.X, b.Position.Y, b.Width, b.Height)
}

// Integrate advances the position by dt milliseconds of velocity.
func (b *Body) Integrate(dt float64) {
	b.Position.X += b.Velocity.X * dt
	b.Position.Y += b.Velocity.Y * dt
}
