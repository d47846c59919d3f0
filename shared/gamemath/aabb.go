package gamemath

import "math"

// AABB is an axis-aligned box with a top-left origin, y pointing down.
type AABB struct {
	X, Y          float64
	Width, Height float64
}

// NewAABB returns a box, treating negative sizes as zero.
func NewAABB(x, y, w, h float64) AABB {
	return AABB{X: x, Y: y, Width: math.Max(w, 0), Height: math.Max(h, 0)}
}

func (b AABB) MinX() float64 { return b.X }
func (b AABB) MaxX() float64 { return b.X + b.Width }
func (b AABB) MinY() float64 { return b.Y }
func (b AABB) MaxY() float64 { return b.Y + b.Height }

// Center returns the midpoint of the box.
func (b AABB) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Expand grows the box by n on every side.
func (b AABB) Expand(n float64) AABB {
	return NewAABB(b.X-n, b.Y-n, b.Width+2*n, b.Height+2*n)
}

// Overlaps reports whether a and b share interior area. Boxes that only
// touch along an edge do not overlap.
func Overlaps(a, b AABB) bool {
	return a.MinX() < b.MaxX() && a.MaxX() > b.MinX() &&
		a.MinY() < b.MaxY() && a.MaxY() > b.MinY()
}

// OverlapsAdjacent is Overlaps with touching edges counted as contact, so a
// body resting exactly on a surface still registers every frame.
func OverlapsAdjacent(a, b AABB) bool {
	return a.MinX() <= b.MaxX() && a.MaxX() >= b.MinX() &&
		a.MinY() <= b.MaxY() && a.MaxY() >= b.MinY()
}

// Collision is the result of Classify: the side of the other box that was
// hit and how far the moving box must travel to clear it.
type Collision struct {
	Side  Side
	Depth float64
}

// Classify resolves a contact between self and other into the side of other
// that self hit. leniencyX is added to the left and right gaps, leniencyY to
// the top and bottom gaps; the smallest adjusted gap wins with ties going
// Top, Right, Bottom, Left. Depth is the unadjusted gap of the winning side.
func Classify(self, other AABB, leniencyX, leniencyY float64) Collision {
	gaps := [4]struct {
		side     Side
		raw, adj float64
	}{
		{SideTop, math.Abs(other.MinY() - self.MaxY()), 0},
		{SideRight, math.Abs(other.MaxX() - self.MinX()), 0},
		{SideBottom, math.Abs(other.MaxY() - self.MinY()), 0},
		{SideLeft, math.Abs(other.MinX() - self.MaxX()), 0},
	}
	gaps[0].adj = gaps[0].raw + leniencyY
	gaps[1].adj = gaps[1].raw + leniencyX
	gaps[2].adj = gaps[2].raw + leniencyY
	gaps[3].adj = gaps[3].raw + leniencyX

	best := 0
	for i := 1; i < len(gaps); i++ {
		if gaps[i].adj < gaps[best].adj {
			best = i
		}
	}
	return Collision{Side: gaps[best].side, Depth: gaps[best].raw}
}
