package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores the state of the level complete overlay
type LevelCompleteData struct {
	IsComplete  bool
	AllComplete bool // the last level of the set was finished
	Armed       bool // the overlay has been up for a full tick
}

// Ready reports whether the overlay may take input yet. The first call after
// completion only arms it, so the press that reached the goal is not also
// read as "continue".
func (d *LevelCompleteData) Ready() bool {
	if !d.IsComplete {
		return false
	}
	if !d.Armed {
		d.Armed = true
		return false
	}
	return true
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
