package components

import "github.com/yohamta/donburi"

// ProgressData is the part of the game state that survives restarts.
type ProgressData struct {
	LevelIndex  int
	TotalDeaths int
	Dirty       bool // changed since the last save
}

var Progress = donburi.NewComponentType[ProgressData]()
