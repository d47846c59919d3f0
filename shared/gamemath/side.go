package gamemath

// Side names a face of a box. The numeric values are stable and double as
// particle burst directions.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideRight
	SideBottom
	SideLeft
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	}
	return "none"
}

// Normal returns the outward unit vector of the side in screen space.
func (s Side) Normal() (float64, float64) {
	switch s {
	case SideTop:
		return 0, -1
	case SideRight:
		return 1, 0
	case SideBottom:
		return 0, 1
	case SideLeft:
		return -1, 0
	}
	return 0, 0
}
