package nav

import (
	"container/heap"
	"math"

	"github.com/elektrokombinacija/navgate/internal/arc"
	"github.com/elektrokombinacija/navgate/internal/core"
	"github.com/elektrokombinacija/navgate/internal/gate"
	"github.com/elektrokombinacija/navgate/internal/metrics"
)

// searchNode is one frontier entry.
type searchNode struct {
	id       core.NodeID
	g        float64 // cost so far
	f        float64 // g + heuristic
	seq      int     // insertion order, breaks f ties deterministically
	edgeCost float64 // cost of the edge that reached this node
	parent   *searchNode
	index    int // heap index
}

type searchHeap []*searchNode

func (h searchHeap) Len() int { return len(h) }
func (h searchHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h searchHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *searchHeap) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *searchHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// FindPath runs an A* search with default options.
func FindPath(s *core.Snapshot, start, goal core.NodeID, p core.Profile) Result {
	return FindPathOpts(s, start, goal, p, Options{})
}

// FindPathOpts runs an A* search over an immutable snapshot. All search
// state is call-local, so any number of searches may share one snapshot.
// A flood-fill pre-check separates TargetUnreachable (disconnected for
// this profile) from NoPathFound (frontier or budget exhausted).
func FindPathOpts(s *core.Snapshot, start, goal core.NodeID, p core.Profile, opts Options) Result {
	p = p.Normalized()

	startNode, ok := s.NodeByID(start)
	if !ok {
		return finish(Result{Outcome: OutcomeInvalidRequest})
	}
	goalNode, ok := s.NodeByID(goal)
	if !ok {
		return finish(Result{Outcome: OutcomeInvalidRequest})
	}
	if start == goal {
		return finish(Result{
			Outcome: OutcomePathFound,
			Success: true,
			Nodes:   []core.NodeID{start},
		})
	}

	if _, reachable := reachableFrom(s, start, p)[goal]; !reachable {
		return finish(Result{Outcome: OutcomeTargetUnreachable})
	}

	open := &searchHeap{}
	heap.Init(open)
	gScore := map[core.NodeID]float64{start: 0}
	closed := make(map[core.NodeID]bool)
	seq := 0

	heap.Push(open, &searchNode{
		id:  start,
		f:   heuristic(startNode, goalNode, p.Abilities),
		seq: seq,
	})

	budget := opts.maxExpanded()
	expanded := 0

	for open.Len() > 0 {
		current := heap.Pop(open).(*searchNode)
		if closed[current.id] {
			continue
		}
		closed[current.id] = true

		if current.id == goal {
			nodes, stepCosts := reconstruct(current)
			return finish(Result{
				Outcome:   OutcomePathFound,
				Success:   true,
				Nodes:     nodes,
				StepCosts: stepCosts,
				TotalCost: current.g,
				Expanded:  expanded,
			})
		}

		expanded++
		if expanded >= budget {
			return finish(Result{Outcome: OutcomeNoPathFound, Expanded: expanded})
		}

		for _, nb := range s.NeighborsOf(current.id) {
			if closed[nb.Dest] {
				continue
			}
			if !gate.CanTraverse(nb.Link, p, current.id) {
				continue
			}
			dest, ok := s.NodeByID(nb.Dest)
			if !ok || !dest.Active {
				continue
			}

			cost := edgeCost(s, nb.Link, dest, p)
			if math.IsInf(cost, 1) {
				continue
			}

			tentative := current.g + cost
			if best, seen := gScore[nb.Dest]; seen && tentative >= best {
				continue
			}
			gScore[nb.Dest] = tentative
			seq++
			heap.Push(open, &searchNode{
				id:       nb.Dest,
				g:        tentative,
				f:        tentative + heuristic(dest, goalNode, p.Abilities),
				seq:      seq,
				edgeCost: cost,
				parent:   current,
			})
		}
	}

	return finish(Result{Outcome: OutcomeNoPathFound, Expanded: expanded})
}

// edgeCost combines the gate cost with the arc model. Links that
// structurally require a motion ability are costed through the trajectory
// model; every edge costs at least the destination's base traversal cost.
func edgeCost(s *core.Snapshot, l core.Link, dest core.Node, p core.Profile) float64 {
	cost := gate.EffectiveCost(l, p)
	if l.RequireAbility.Intersects(core.MotionAbilities) {
		from, ok := s.NodeByID(l.From)
		if ok {
			cost *= arc.Multiplier(from.Pos, dest.Pos, p.Abilities)
		}
	}
	return math.Max(cost, dest.MinCost)
}

// maxHeuristicScale caps how far the arc model may inflate the straight
// line estimate; the heuristic stays a rough lower bound rather than an
// exact climb cost.
const maxHeuristicScale = 4.0

// heuristic estimates remaining cost as straight-line distance, scaled by
// the arc model whenever the goal sits above the node.
func heuristic(from, goal core.Node, abilities core.Ability) float64 {
	d := from.Pos.DistanceTo(goal.Pos)
	if rise := goal.Pos.Z - from.Pos.Z; rise > 0.05 {
		d *= math.Min(arc.Multiplier(from.Pos, goal.Pos, abilities), maxHeuristicScale)
	}
	return d
}

// reconstruct walks parent pointers back to the start.
func reconstruct(node *searchNode) ([]core.NodeID, []float64) {
	var nodes []core.NodeID
	var costs []float64
	for n := node; n != nil; n = n.parent {
		nodes = append([]core.NodeID{n.id}, nodes...)
		if n.parent != nil {
			costs = append([]float64{n.edgeCost}, costs...)
		}
	}
	return nodes, costs
}

func finish(r Result) Result {
	metrics.RecordSearch(r.Outcome.String(), r.Expanded)
	return r
}
