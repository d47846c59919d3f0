package physics

import (
	"errors"
	"fmt"

	dmath "github.com/yohamta/donburi/features/math"
)

// ReferenceSize is the body size the default constants are authored for.
// Speeds and accelerations scale linearly with size / ReferenceSize.
const ReferenceSize = 25.0

// Tuning holds the player's movement constants. Speeds are in units per ms,
// accelerations in units per ms squared, RespawnDelay in ms.
type Tuning struct {
	Gravity           float64
	MaxFallSpeed      float64
	WallSlideGravity  float64
	MaxWallSlideSpeed float64

	GroundAccel    float64
	AirAccel       float64
	MaxGroundSpeed float64
	Traction       float64

	// CornerLeniency is added to the gaps of one axis when classifying a
	// contact so that tile seams do not catch the body.
	CornerLeniency float64

	JumpSpeed      float64
	WallJumpSpeedX float64
	WallJumpSpeedY float64

	InitialVelocity dmath.Vec2
	RespawnDelay    float64
}

// DefaultTuning returns the stock constants scaled for a body of the given
// size.
func DefaultTuning(size float64) Tuning {
	s := size / ReferenceSize
	return Tuning{
		Gravity:           0.0006 * s,
		MaxFallSpeed:      0.5 * s,
		WallSlideGravity:  0.00015 * s,
		MaxWallSlideSpeed: 0.2 * s,

		GroundAccel:    0.0006 * s,
		AirAccel:       0.0003 * s,
		MaxGroundSpeed: 0.25 * s,
		Traction:       0.0006 * s,

		CornerLeniency: 2.0 * s,

		JumpSpeed:      0.36 * s,
		WallJumpSpeedX: 0.2 * s,
		WallJumpSpeedY: 0.3 * s,

		InitialVelocity: dmath.Vec2{X: 0, Y: 0.1 * s},
		RespawnDelay:    500,
	}
}

var errWallSlideGravity = errors.New("wall slide gravity must be less than gravity")

// Validate checks the constants for values the controller cannot work with.
func (t Tuning) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"gravity", t.Gravity},
		{"max fall speed", t.MaxFallSpeed},
		{"wall slide gravity", t.WallSlideGravity},
		{"max wall slide speed", t.MaxWallSlideSpeed},
		{"ground accel", t.GroundAccel},
		{"air accel", t.AirAccel},
		{"max ground speed", t.MaxGroundSpeed},
		{"traction", t.Traction},
		{"corner leniency", t.CornerLeniency},
		{"jump speed", t.JumpSpeed},
		{"wall jump speed x", t.WallJumpSpeedX},
		{"wall jump speed y", t.WallJumpSpeedY},
		{"respawn delay", t.RespawnDelay},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("tuning: %s is negative (%v)", f.name, f.value)
		}
	}
	if t.WallSlideGravity >= t.Gravity {
		return fmt.Errorf("tuning: %w (%v >= %v)", errWallSlideGravity, t.WallSlideGravity, t.Gravity)
	}
	return nil
}
