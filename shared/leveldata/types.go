// Package leveldata parses level descriptions into plain tile data.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

import "errors"

// TileKind is the behaviour of a level tile.
type TileKind string

const (
	TileNormal     TileKind = "normal"
	TileHazard     TileKind = "hazard"
	TileGoal       TileKind = "goal"
	TileBounce     TileKind = "bounce"
	TileCheckpoint TileKind = "checkpoint"
)

var (
	ErrNoSpawn        = errors.New("level has no player spawn")
	ErrMultipleSpawns = errors.New("level has more than one player spawn")
	ErrEmptyLevel     = errors.New("level is empty")
	ErrUnknownSymbol  = errors.New("unknown level symbol")
	ErrUnknownKind    = errors.New("unknown tile kind")
)

// Level is a parsed level ready to be built into obstacles.
type Level struct {
	Name   string
	Tiles  []Tile
	Spawn  Point
	Width  float64
	Height float64
}

// Tile is one obstacle cell. BounceSpeed is zero unless the level overrides
// the default for a bounce tile.
type Tile struct {
	X, Y, W, H  float64
	Kind        TileKind
	BounceSpeed float64
}

// Point is a position in level units.
type Point struct {
	X, Y float64
}

// Count returns how many tiles of kind the level has.
func (l *Level) Count(kind TileKind) int {
	n := 0
	for _, t := range l.Tiles {
		if t.Kind == kind {
			n++
		}
	}
	return n
}

func parseKind(s string) (TileKind, error) {
	switch k := TileKind(s); k {
	case TileNormal, TileHazard, TileGoal, TileBounce, TileCheckpoint:
		return k, nil
	}
	return "", ErrUnknownKind
}
