package physics

import (
	"math"

	"github.com/automoto/boxhop/shared/gamemath"
)

const bounceSegments = 3

// resolveCollisions runs the contact pass: flags are rebuilt from scratch,
// obstacles are visited in registration order and checkpoints consumed
// during the pass are compacted out afterwards.
func (p *Player) resolveCollisions(w *World) {
	p.clearContacts()
	defer w.Obstacles.Compact()

	lx, ly := p.Tuning.CornerLeniency, 0.0
	if p.wasOnWall() {
		lx, ly = 0, p.Tuning.CornerLeniency
	}

	var bounced [gamemath.SideLeft + 1]bool
	reach := math.Max(p.Width, p.Height)
	candidates := w.Obstacles.Candidates(p.AABB().Expand(reach))

pass:
	for _, o := range candidates {
		box := p.AABB()
		if o.consumed || !gamemath.OverlapsAdjacent(box, o.Box) {
			continue
		}

		switch o.Kind {
		case KindHazard:
			p.die(w, gamemath.SideNone)
			break pass
		case KindGoal:
			w.completeLevel()
			break pass
		case KindCheckpoint:
			p.Spawn = o.SpawnFor(p.Width, p.Height)
			w.Obstacles.Consume(o)
			w.sink().CheckpointReached(o)
			continue
		case KindNormal, KindBounce:
		}

		hit := gamemath.Classify(box, o.Box, lx, ly)
		p.pushOut(o, hit.Side)
		if o.Kind == KindBounce {
			p.bounce(w, o, hit.Side)
			bounced[hit.Side] = true
		}
	}

	if bounced[gamemath.SideTop] {
		p.Grounded = false
	}
	if bounced[gamemath.SideRight] {
		p.OnRightWall = false
	}
	if bounced[gamemath.SideLeft] {
		p.OnLeftWall = false
	}
}

// pushOut moves the body flush against side of o and stops motion into it.
func (p *Player) pushOut(o *Obstacle, side gamemath.Side) {
	switch side {
	case gamemath.SideTop:
		p.Position.Y = o.Box.MinY() - p.Height
		if p.Velocity.Y > 0 {
			p.Velocity.Y = 0
		}
		p.Grounded = true
	case gamemath.SideRight:
		p.Position.X = o.Box.MaxX()
		if p.Velocity.X < 0 {
			p.Velocity.X = 0
		}
		p.OnRightWall = true
	case gamemath.SideBottom:
		p.Position.Y = o.Box.MaxY()
		if p.Velocity.Y < 0 {
			p.Velocity.Y = 0
		}
	case gamemath.SideLeft:
		p.Position.X = o.Box.MinX() - p.Width
		if p.Velocity.X > 0 {
			p.Velocity.X = 0
		}
		p.OnLeftWall = true
	}
}

// bounce replaces the velocity along the side's normal with the pad speed.
func (p *Player) bounce(w *World, o *Obstacle, side gamemath.Side) {
	speed := o.BounceSpeed * p.scale()
	nx, ny := side.Normal()
	if nx != 0 {
		p.Velocity.X = nx * speed
	}
	if ny != 0 {
		p.Velocity.Y = ny * speed
	}
	w.sink().Burst(Burst{
		Source:    BurstBounce,
		Box:       o.Box,
		Direction: side,
		Segments:  bounceSegments,
		Scale:     p.scale(),
		Fade:      true,
	})
}
