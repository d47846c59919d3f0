package physics

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/boxhop/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

// ParticleTuning holds particle constants for a ReferenceSize emitter.
type ParticleTuning struct {
	Gravity      float64
	Drag         float64
	MaxFallSpeed float64
	// StartSpeed bounds the random initial speed on each axis; the axis of
	// the burst direction uses StartSpeed*Bias.
	StartSpeed float64
	Bias       float64
	Lifespan   float64
}

// DefaultParticleTuning returns the stock particle constants.
func DefaultParticleTuning() ParticleTuning {
	return ParticleTuning{
		Gravity:      0.0006,
		Drag:         0.00005,
		MaxFallSpeed: 0.5,
		StartSpeed:   0.2,
		Bias:         2,
		Lifespan:     2000,
	}
}

// Particle is a decorative body. It never collides.
type Particle struct {
	Body
	Source BurstSource

	gravity  float64
	drag     float64
	maxFall  float64
	lifespan float64
	age      float64
	fade     *gween.Tween
	alpha    float32
}

// Update advances the particle by dt ms and reports whether it is still
// alive.
func (p *Particle) Update(dt float64) bool {
	p.age += dt
	if p.age >= p.lifespan {
		p.alpha = 0
		return false
	}

	p.Velocity.X = gamemath.ApplyFriction(p.Velocity.X, p.drag*dt)
	p.Velocity.Y = math.Min(p.Velocity.Y+p.gravity*dt, p.maxFall)
	p.Integrate(dt)

	if p.fade != nil {
		p.alpha, _ = p.fade.Update(float32(dt))
	}
	return true
}

// Alpha returns the opacity in [0, 1]. Non-fading particles stay opaque for
// their whole life.
func (p *Particle) Alpha() float32 {
	return p.alpha
}

// Remaining returns the fraction of the lifespan left.
func (p *Particle) Remaining() float64 {
	if p.lifespan <= 0 {
		return 0
	}
	return math.Max(0, 1-p.age/p.lifespan)
}

// Emitter turns bursts into particles with seeded random velocities.
type Emitter struct {
	rng    *rand.Rand
	tuning ParticleTuning
}

// NewEmitter returns an emitter whose output is fully determined by seed.
func NewEmitter(seed uint64, t ParticleTuning) *Emitter {
	return &Emitter{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		tuning: t,
	}
}

// Emit cuts b.Box into a grid of particles.
func (e *Emitter) Emit(b Burst) []*Particle {
	n := max(b.Segments, 1)
	s := b.Scale
	if s <= 0 {
		s = 1
	}
	cw := b.Box.Width / float64(n)
	ch := b.Box.Height / float64(n)

	out := make([]*Particle, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			vx, vy := e.velocity(b.Direction, s)
			p := &Particle{
				Body: Body{
					Position: dmath.Vec2{X: b.Box.X + float64(i)*cw, Y: b.Box.Y + float64(j)*ch},
					Velocity: dmath.Vec2{X: vx, Y: vy},
					Width:    cw,
					Height:   ch,
				},
				Source:   b.Source,
				gravity:  e.tuning.Gravity * s,
				drag:     e.tuning.Drag * s,
				maxFall:  e.tuning.MaxFallSpeed * s,
				lifespan: e.tuning.Lifespan,
				alpha:    1,
			}
			if b.Fade {
				p.fade = gween.New(1, 0, float32(e.tuning.Lifespan), ease.Linear)
			}
			out = append(out, p)
		}
	}
	return out
}

// velocity picks a random start velocity inside the cone of dir.
func (e *Emitter) velocity(dir gamemath.Side, scale float64) (float64, float64) {
	near := e.tuning.StartSpeed * scale
	far := near * e.tuning.Bias
	switch dir {
	case gamemath.SideTop:
		return e.between(-near, near), e.between(-far, 0)
	case gamemath.SideRight:
		return e.between(0, far), e.between(-near, near)
	case gamemath.SideBottom:
		return e.between(-near, near), e.between(0, far)
	case gamemath.SideLeft:
		return e.between(-far, 0), e.between(-near, near)
	}
	return e.between(-near, near), e.between(-near, near)
}

func (e *Emitter) between(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}
