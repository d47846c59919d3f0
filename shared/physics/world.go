package physics

import "github.com/automoto/boxhop/shared/gamemath"

// Input is the per-tick control state. Jump is true only on the tick the
// jump button went down.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
}

// BurstSource identifies what produced a particle burst.
type BurstSource int

const (
	BurstDeath BurstSource = iota
	BurstBounce
	BurstCheckpoint
)

// Burst asks for particles cut from Box in a Segments x Segments grid,
// thrown toward Direction.
type Burst struct {
	Source    BurstSource
	Box       gamemath.AABB
	Direction gamemath.Side
	Segments  int
	// Scale multiplies particle speeds and accelerations, usually the size
	// of the emitting body over ReferenceSize.
	Scale float64
	Fade  bool
}

// Sink receives the game events the physics step produces.
type Sink interface {
	Burst(b Burst)
	CheckpointReached(o *Obstacle)
	LevelComplete()
}

type nopSink struct{}

func (nopSink) Burst(Burst)                 {}
func (nopSink) CheckpointReached(*Obstacle) {}
func (nopSink) LevelComplete()              {}

// World is what a player steps against: the obstacles of the level, the
// level bounds and the event sink.
type World struct {
	Obstacles *Registry
	Bounds    gamemath.AABB
	Sink      Sink

	complete bool
}

// NewWorld returns a world over reg. A nil sink discards events.
func NewWorld(reg *Registry, bounds gamemath.AABB, sink Sink) *World {
	return &World{Obstacles: reg, Bounds: bounds, Sink: sink}
}

// Complete reports whether the goal has been reached since the last Reset.
func (w *World) Complete() bool {
	return w.complete
}

// Reset clears the goal latch.
func (w *World) Reset() {
	w.complete = false
}

func (w *World) completeLevel() {
	if w.complete {
		return
	}
	w.complete = true
	w.sink().LevelComplete()
}

func (w *World) sink() Sink {
	if w.Sink == nil {
		return nopSink{}
	}
	return w.Sink
}
