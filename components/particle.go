package components

import (
	"image/color"

	"github.com/automoto/boxhop/shared/physics"
	"github.com/yohamta/donburi"
)

// ParticleData is a decorative particle and the color it is drawn with.
type ParticleData struct {
	Particle *physics.Particle
	Color    color.RGBA
}

var Particle = donburi.NewComponentType[ParticleData]()
