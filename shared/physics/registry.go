package physics

import (
	"fmt"
	"slices"

	"github.com/automoto/boxhop/shared/gamemath"
	"github.com/solarlune/resolv"
)

const (
	obstacleTag = "obstacle"
	probeTag    = "probe"
)

// probeMargin widens candidate queries past resolv's cell rounding so that
// obstacles exactly touching the query box are returned.
const probeMargin = 2

// Registry is the ordered set of obstacles of a level. Obstacles are kept in
// a resolv space for the broad phase; iteration order is always the order in
// which they were added.
type Registry struct {
	space     *resolv.Space
	probe     *resolv.Object
	obstacles []*Obstacle
	next      int
	dirty     bool
}

// NewRegistry creates an empty registry covering width x height units,
// bucketed into cells of cellSize.
func NewRegistry(width, height, cellSize int) *Registry {
	if cellSize <= 0 {
		panic(fmt.Sprintf("physics: invalid registry cell size %d", cellSize))
	}
	space := resolv.NewSpace(max(width, cellSize), max(height, cellSize), cellSize, cellSize)
	probe := resolv.NewObject(0, 0, 1, 1, probeTag)
	space.Add(probe)
	return &Registry{space: space, probe: probe}
}

// Add registers an obstacle of the given kind.
func (r *Registry) Add(box gamemath.AABB, kind Kind) *Obstacle {
	o := &Obstacle{Box: box, Kind: kind, seq: r.next}
	r.next++

	// resolv leaves objects under one unit wide or tall out of every cell.
	o.object = resolv.NewObject(box.X, box.Y, max(box.Width, 1), max(box.Height, 1), obstacleTag, kind.String())
	o.object.Data = o
	r.space.Add(o.object)

	r.obstacles = append(r.obstacles, o)
	return o
}

// AddBounce registers a bounce pad.
func (r *Registry) AddBounce(box gamemath.AABB, speed float64) *Obstacle {
	o := r.Add(box, KindBounce)
	o.BounceSpeed = speed
	return o
}

// Obstacles returns every registered obstacle in registration order,
// including consumed ones that have not been compacted yet.
func (r *Registry) Obstacles() []*Obstacle {
	return r.obstacles
}

// Len returns the number of registered obstacles.
func (r *Registry) Len() int {
	return len(r.obstacles)
}

// Candidates returns the unconsumed obstacles near box, in registration
// order. The result is a superset of those touching box.
func (r *Registry) Candidates(box gamemath.AABB) []*Obstacle {
	area := box.Expand(probeMargin)
	r.probe.X, r.probe.Y = area.X, area.Y
	r.probe.W, r.probe.H = area.Width, area.Height
	r.probe.Update()

	col := r.probe.Check(0, 0, obstacleTag)
	if col == nil {
		return nil
	}

	found := make([]*Obstacle, 0, len(col.Objects))
	for _, obj := range col.Objects {
		o, ok := obj.Data.(*Obstacle)
		if !ok || o.consumed {
			continue
		}
		found = append(found, o)
	}
	slices.SortFunc(found, func(a, b *Obstacle) int {
		return a.seq - b.seq
	})
	return found
}

// Consume marks an obstacle for removal. It stays in Obstacles until the
// next Compact so that an in-progress pass is not disturbed.
func (r *Registry) Consume(o *Obstacle) {
	if o.consumed {
		return
	}
	o.consumed = true
	r.dirty = true
}

// Compact drops consumed obstacles.
func (r *Registry) Compact() {
	if !r.dirty {
		return
	}
	r.obstacles = slices.DeleteFunc(r.obstacles, func(o *Obstacle) bool {
		if o.consumed {
			r.space.Remove(o.object)
			return true
		}
		return false
	})
	r.dirty = false
}
