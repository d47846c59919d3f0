package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Obstacle   = donburi.NewTag().SetName("Obstacle")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
	Particle   = donburi.NewTag().SetName("Particle")
	Effect     = donburi.NewTag().SetName("Effect")
)
