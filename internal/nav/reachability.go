package nav

import (
	"github.com/elektrokombinacija/navgate/internal/core"
	"github.com/elektrokombinacija/navgate/internal/gate"
)

// reachableFrom flood-fills the snapshot from root, honoring CanTraverse
// and skipping inactive destinations.
func reachableFrom(s *core.Snapshot, root core.NodeID, p core.Profile) map[core.NodeID]struct{} {
	visited := make(map[core.NodeID]struct{})
	if _, ok := s.NodeByID(root); !ok {
		return visited
	}
	visited[root] = struct{}{}
	queue := []core.NodeID{root}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, nb := range s.NeighborsOf(current) {
			if _, seen := visited[nb.Dest]; seen {
				continue
			}
			if !gate.CanTraverse(nb.Link, p, current) {
				continue
			}
			dest, ok := s.NodeByID(nb.Dest)
			if !ok || !dest.Active {
				continue
			}
			visited[nb.Dest] = struct{}{}
			queue = append(queue, nb.Dest)
		}
	}
	return visited
}

// ComputeUnreachable returns, in ascending order, every node the profile
// cannot reach from the given root. Read-only; the snapshot is never
// touched.
func ComputeUnreachable(s *core.Snapshot, p core.Profile, root core.NodeID) []core.NodeID {
	p = p.Normalized()
	reachable := reachableFrom(s, root, p)
	var out []core.NodeID
	for _, id := range s.NodeIDs() {
		if _, ok := reachable[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// ConnectedComponents counts traversal components for a profile. Two nodes
// share a component when a link between them is traversable in at least
// one direction; this detects isolated areas rather than flow capacity.
func ConnectedComponents(s *core.Snapshot, p core.Profile) int {
	p = p.Normalized()
	parent := make(map[core.NodeID]core.NodeID)

	var find func(core.NodeID) core.NodeID
	find = func(id core.NodeID) core.NodeID {
		if parent[id] != id {
			parent[id] = find(parent[id])
		}
		return parent[id]
	}
	union := func(a, b core.NodeID) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[rb] = ra
		}
	}

	ids := s.NodeIDs()
	for _, id := range ids {
		parent[id] = id
	}
	for _, id := range ids {
		from, _ := s.NodeByID(id)
		if !from.Active {
			continue
		}
		for _, nb := range s.NeighborsOf(id) {
			if !gate.CanTraverse(nb.Link, p, id) {
				continue
			}
			dest, ok := s.NodeByID(nb.Dest)
			if !ok || !dest.Active {
				continue
			}
			union(id, nb.Dest)
		}
	}

	roots := make(map[core.NodeID]struct{})
	for _, id := range ids {
		roots[find(id)] = struct{}{}
	}
	return len(roots)
}

// Validate produces the full reachability report for one profile, rooted
// at the given entry node.
func Validate(s *core.Snapshot, p core.Profile, root core.NodeID) Report {
	unreachable := ComputeUnreachable(s, p, root)
	return Report{
		UnreachableNodes:   unreachable,
		IsolatedComponents: ConnectedComponents(s, p),
	}
}
