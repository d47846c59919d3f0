package physics

import (
	"github.com/automoto/boxhop/shared/gamemath"
)

type recordingSink struct {
	bursts      []Burst
	checkpoints []*Obstacle
	completions int
}

func (s *recordingSink) Burst(b Burst)                 { s.bursts = append(s.bursts, b) }
func (s *recordingSink) CheckpointReached(o *Obstacle) { s.checkpoints = append(s.checkpoints, o) }
func (s *recordingSink) LevelComplete()                { s.completions++ }

func newTestWorld(width, height float64) (*World, *recordingSink) {
	reg := NewRegistry(int(width), int(height), 20)
	sink := &recordingSink{}
	return NewWorld(reg, gamemath.NewAABB(0, 0, width, height), sink), sink
}

func newTestPlayer(x, y float64) *Player {
	return NewPlayer(x, y, ReferenceSize, ReferenceSize, DefaultTuning(ReferenceSize))
}

func box(x, y, w, h float64) gamemath.AABB {
	return gamemath.NewAABB(x, y, w, h)
}
