package physics

import (
	"math"

	"github.com/automoto/boxhop/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// State summarises the player's movement mode.
type State int

const (
	StateAirborne State = iota
	StateGrounded
	StateWallSliding
	StateDead
)

func (s State) String() string {
	switch s {
	case StateGrounded:
		return "grounded"
	case StateWallSliding:
		return "wall sliding"
	case StateDead:
		return "dead"
	}
	return "airborne"
}

// deathSegments is the side length of the particle grid a dying player
// breaks into.
const deathSegments = 5

// Player is the controllable body.
//
// OnRightWall means the body is touching the right face of an obstacle, so
// the wall is on the body's left; OnLeftWall is the mirror case.
type Player struct {
	Body
	Tuning Tuning
	Spawn  dmath.Vec2

	Grounded    bool
	OnLeftWall  bool
	OnRightWall bool

	prevGrounded    bool
	prevOnLeftWall  bool
	prevOnRightWall bool

	dead     bool
	timeDead float64
	deaths   int
	ready    bool
}

// NewPlayer creates a player at (x, y) which also becomes its spawn point.
func NewPlayer(x, y, w, h float64, t Tuning) *Player {
	p := &Player{
		Body: Body{
			Position: dmath.Vec2{X: x, Y: y},
			Velocity: t.InitialVelocity,
			Width:    w,
			Height:   h,
		},
		Tuning: t,
		Spawn:  dmath.Vec2{X: x, Y: y},
		ready:  true,
	}
	return p
}

// IsDead reports whether the player is waiting to respawn.
func (p *Player) IsDead() bool { return p.dead }

// Deaths returns how many times the player has died.
func (p *Player) Deaths() int { return p.deaths }

// SetDeaths restores a persisted death count.
func (p *Player) SetDeaths(n int) { p.deaths = n }

// State returns the current movement mode.
func (p *Player) State() State {
	switch {
	case p.dead:
		return StateDead
	case p.Grounded:
		return StateGrounded
	case p.OnLeftWall || p.OnRightWall:
		return StateWallSliding
	}
	return StateAirborne
}

func (p *Player) wasOnWall() bool {
	return p.prevOnLeftWall || p.prevOnRightWall
}

func (p *Player) scale() float64 {
	return p.Width / ReferenceSize
}

// Respawn puts the player back at its spawn point with the initial velocity
// and clears all contact state.
func (p *Player) Respawn() {
	p.Position = p.Spawn
	p.Velocity = p.Tuning.InitialVelocity
	p.clearContacts()
	p.prevGrounded, p.prevOnLeftWall, p.prevOnRightWall = false, false, false
}

func (p *Player) clearContacts() {
	p.Grounded, p.OnLeftWall, p.OnRightWall = false, false, false
}

// Step advances the player by dt milliseconds against w.
func (p *Player) Step(w *World, in Input, dt float64) {
	if !p.ready {
		panic("physics: Step called on a player that was not built with NewPlayer")
	}

	if p.dead {
		p.timeDead += dt
		if p.timeDead >= p.Tuning.RespawnDelay {
			p.dead = false
			p.timeDead = 0
		}
		p.snapshot()
		return
	}

	p.moveHorizontal(in, dt)
	p.jump(in)
	p.clampFall()
	p.applyGravity(dt)
	p.Integrate(dt)
	p.resolveCollisions(w)
	if !p.dead {
		p.checkBounds(w)
	}
	p.snapshot()
}

func (p *Player) moveHorizontal(in Input, dt float64) {
	if in.MoveRight {
		p.Velocity.X = p.accelerate(p.Velocity.X, 1, dt)
	}
	if in.MoveLeft {
		p.Velocity.X = p.accelerate(p.Velocity.X, -1, dt)
	}

	t := p.Tuning
	switch {
	case !in.MoveLeft && !in.MoveRight && p.Grounded:
		p.Velocity.X = gamemath.ApplyFriction(p.Velocity.X, t.Traction*dt)
	case p.Grounded:
		// Speed above the cap (from a bounce) bleeds off instead of being cut.
		p.Velocity.X = gamemath.ApproachCap(p.Velocity.X, t.MaxGroundSpeed, t.Traction*dt)
	}
}

// accelerate pushes v toward dir (+1 right, -1 left).
func (p *Player) accelerate(v, dir, dt float64) float64 {
	t := p.Tuning
	along := v * dir
	switch {
	case p.Grounded && along < 0:
		return v + dir*(t.GroundAccel+t.Traction)*dt
	case along >= t.MaxGroundSpeed:
		return v
	case p.Grounded:
		return dir * math.Min((v+dir*t.GroundAccel*dt)*dir, t.MaxGroundSpeed)
	default:
		return dir * math.Min((v+dir*t.AirAccel*dt)*dir, t.MaxGroundSpeed)
	}
}

func (p *Player) jump(in Input) {
	if !in.Jump {
		return
	}
	t := p.Tuning
	switch {
	case p.Grounded:
		p.Velocity.Y = -t.JumpSpeed
		p.Grounded = false
	case p.prevOnRightWall:
		p.Velocity.X += t.WallJumpSpeedX
		p.Velocity.Y = -t.WallJumpSpeedY
	case p.prevOnLeftWall:
		p.Velocity.X -= t.WallJumpSpeedX
		p.Velocity.Y = -t.WallJumpSpeedY
	}
}

func (p *Player) clampFall() {
	t := p.Tuning
	if p.wasOnWall() {
		p.Velocity.Y = math.Min(p.Velocity.Y, t.MaxWallSlideSpeed)
		return
	}
	p.Velocity.Y = math.Min(p.Velocity.Y, t.MaxFallSpeed)
}

func (p *Player) applyGravity(dt float64) {
	if p.Velocity.Y > 0 && (p.OnLeftWall || p.OnRightWall) {
		p.Velocity.Y += p.Tuning.WallSlideGravity * dt
		return
	}
	p.Velocity.Y += p.Tuning.Gravity * dt
}

func (p *Player) snapshot() {
	p.prevGrounded = p.Grounded
	p.prevOnLeftWall = p.OnLeftWall
	p.prevOnRightWall = p.OnRightWall
}

func (p *Player) checkBounds(w *World) {
	b := w.Bounds
	switch {
	case p.Position.Y > b.MaxY():
		p.die(w, gamemath.SideTop)
	case p.Position.X > b.MaxX():
		p.die(w, gamemath.SideLeft)
	case p.Position.X+p.Width < b.MinX():
		p.die(w, gamemath.SideRight)
	}
}

// die bursts the player into particles thrown toward dir and resets it to
// the spawn point in the dead state.
func (p *Player) die(w *World, dir gamemath.Side) {
	p.deaths++
	w.sink().Burst(Burst{
		Source:    BurstDeath,
		Box:       p.AABB(),
		Direction: dir,
		Segments:  deathSegments,
		Scale:     p.scale(),
	})
	p.Respawn()
	p.dead = true
	p.timeDead = 0
}

// Previous returns the contact flags recorded at the end of the last step.
func (p *Player) Previous() (grounded, onLeftWall, onRightWall bool) {
	return p.prevGrounded, p.prevOnLeftWall, p.prevOnRightWall
}
