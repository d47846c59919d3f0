package physics

import (
	"github.com/automoto/boxhop/shared/gamemath"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Kind is the closed set of obstacle behaviours.
type Kind int

const (
	KindNormal Kind = iota
	KindHazard
	KindGoal
	KindBounce
	KindCheckpoint
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindHazard:
		return "hazard"
	case KindGoal:
		return "goal"
	case KindBounce:
		return "bounce"
	case KindCheckpoint:
		return "checkpoint"
	}
	return "unknown"
}

// Solid reports whether bodies are pushed out of the obstacle.
func (k Kind) Solid() bool {
	switch k {
	case KindNormal, KindBounce:
		return true
	case KindHazard, KindGoal, KindCheckpoint:
		return false
	}
	return false
}

// Obstacle is a static tile owned by a Registry.
type Obstacle struct {
	Box  gamemath.AABB
	Kind Kind
	// BounceSpeed is the push-away speed of a bounce pad for a body of
	// ReferenceSize, in units per ms.
	BounceSpeed float64
	// Data links the obstacle to its owner, e.g. an ECS entry.
	Data any

	seq      int
	consumed bool
	object   *resolv.Object
}

// Consumed reports whether a checkpoint has been triggered and is waiting to
// be compacted out of its registry.
func (o *Obstacle) Consumed() bool {
	return o.consumed
}

// SpawnFor returns the top-left position that centers a w x h body on the
// obstacle.
func (o *Obstacle) SpawnFor(w, h float64) dmath.Vec2 {
	cx, cy := o.Box.Center()
	return dmath.Vec2{X: cx - w/2, Y: cy - h/2}
}
