// Package pathfind provides A* shortest-path search over a hex grid.
// States are grid coordinates; movement expands through passable
// neighbors only. With the default uniform step cost and hex-distance
// heuristic the returned path is optimal in hop count.
package pathfind

import (
	"container/heap"
	"slices"

	"github.com/talgya/hexworld/grid"
	"github.com/talgya/hexworld/hex"
)

// Heuristic estimates the remaining cost from a to goal. It must never
// overestimate the true cost under the active CostFn or optimality is
// lost.
type Heuristic func(a, goal hex.Cube) float64

// CostFn returns the cost of stepping from one hex to an adjacent one.
// Costs must be non-negative.
type CostFn func(from, to hex.Cube) float64

// Options configures a search. Zero-value fields select the defaults:
// hex distance as the heuristic and uniform cost 1 per step.
type Options struct {
	Heuristic Heuristic
	Cost      CostFn
}

// HexDistance is the default heuristic: the plain hex distance, which
// never overestimates at a minimum step cost of 1.
func HexDistance(a, goal hex.Cube) float64 {
	return float64(hex.Distance(a, goal))
}

// UniformCost is the default cost function: every step costs 1.
func UniformCost(_, _ hex.Cube) float64 {
	return 1
}

// Find returns the cheapest path from start to end through passable
// cells, both endpoints included, or nil when no path exists. A search
// where start equals end returns the single-element path [start].
func Find(g grid.Grid, start, end hex.Cube, opts Options) []hex.Cube {
	if start == end {
		return []hex.Cube{start}
	}

	h := opts.Heuristic
	if h == nil {
		h = HexDistance
	}
	cost := opts.Cost
	if cost == nil {
		cost = UniformCost
	}

	costSoFar := map[hex.Cube]float64{start: 0}
	cameFrom := make(map[hex.Cube]hex.Cube)

	pq := &frontier{{coord: start, priority: h(start, end)}}
	heap.Init(pq)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*node)
		// Only a popped goal guarantees the cheapest route to it.
		if current.coord == end {
			return reconstruct(cameFrom, start, end)
		}
		for _, n := range g.Neighbors(current.coord, true) {
			newCost := costSoFar[current.coord] + cost(current.coord, n)
			if prev, seen := costSoFar[n]; !seen || newCost < prev {
				costSoFar[n] = newCost
				cameFrom[n] = current.coord
				heap.Push(pq, &node{coord: n, priority: newCost + h(n, end)})
			}
		}
	}
	return nil
}

// Cost sums fn over consecutive path pairs; 0 for paths of length <= 1.
// A nil fn uses UniformCost.
func Cost(path []hex.Cube, fn CostFn) float64 {
	if fn == nil {
		fn = UniformCost
	}
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += fn(path[i-1], path[i])
	}
	return total
}

// Length returns the number of cells on the path: 0 for a nil path.
// Note this counts cells, not edges.
func Length(path []hex.Cube) int {
	return len(path)
}

// reconstruct walks predecessor links from end back to start, then
// reverses into start-to-end order.
func reconstruct(cameFrom map[hex.Cube]hex.Cube, start, end hex.Cube) []hex.Cube {
	path := []hex.Cube{end}
	for c := end; c != start; {
		c = cameFrom[c]
		path = append(path, c)
	}
	slices.Reverse(path)
	return path
}

// node is a frontier entry: a coordinate with its f = g + h priority.
type node struct {
	coord    hex.Cube
	priority float64
}

// frontier is a min-heap of nodes ordered by priority.
type frontier []*node

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool { return f[i].priority < f[j].priority }

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*node)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}
