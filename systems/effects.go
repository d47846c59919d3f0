package systems

import (
	"image/color"
	"math"

	"github.com/automoto/boxhop/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles advances every particle and removes the expired ones.
func UpdateParticles(ecs *ecs.ECS) {
	dt := frameDelta(ecs)

	var expired []*donburi.Entry
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Particle.Get(e).Particle.Update(dt) {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		e.Remove()
	}
}

// UpdateEffects processes checkpoint breaks and screen shake
func UpdateEffects(ecs *ecs.ECS) {
	updateCheckpointBreaks(ecs)
	updateScreenShake(ecs)
}

func updateCheckpointBreaks(ecs *ecs.ECS) {
	dt := float32(frameDelta(ecs))

	var done []*donburi.Entry
	components.CheckpointBreak.Each(ecs.World, func(e *donburi.Entry) {
		b := components.CheckpointBreak.Get(e)
		b.Progress, b.Done = b.Tween.Update(dt)
		if b.Done {
			done = append(done, e)
		}
	})
	for _, e := range done {
		e.Remove()
	}
}

func updateScreenShake(ecs *ecs.ECS) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Duration == 0 {
		return
	}
	shake.Elapsed++
	if shake.Elapsed >= shake.Duration {
		*shake = components.ScreenShakeData{}
	}
}

// shakeOffset returns the current draw offset of an active screen shake.
func shakeOffset(ecs *ecs.ECS) (float64, float64) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return 0, 0
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Duration == 0 {
		return 0, 0
	}

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	intensity := shake.Intensity * progress

	return math.Sin(float64(shake.Elapsed)*1.1) * intensity,
		math.Cos(float64(shake.Elapsed)*1.3) * intensity
}

// DrawParticles draws every particle, faded by its remaining life.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	ox, oy := shakeOffset(ecs)
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		data := components.Particle.Get(e)
		p := data.Particle
		vector.DrawFilledRect(
			screen,
			float32(p.Position.X+ox), float32(p.Position.Y+oy),
			float32(p.Width), float32(p.Height),
			fade(data.Color, p.Alpha()),
			false,
		)
	})
}

// DrawEffects draws the shrinking remains of consumed checkpoints.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	ox, oy := shakeOffset(ecs)
	components.CheckpointBreak.Each(ecs.World, func(e *donburi.Entry) {
		b := components.CheckpointBreak.Get(e)
		scale := float64(b.Progress)
		w, h := b.Box.Width*scale, b.Box.Height*scale
		cx, cy := b.Box.Center()
		vector.DrawFilledRect(
			screen,
			float32(cx-w/2+ox), float32(cy-h/2+oy),
			float32(w), float32(h),
			fade(b.Color, b.Progress),
			false,
		)
	})
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
