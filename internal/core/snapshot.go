package core

import (
	"time"

	"github.com/google/uuid"

	"github.com/elektrokombinacija/navgate/internal/metrics"
)

// Neighbor pairs an outgoing link with its destination.
type Neighbor struct {
	Link Link
	Dest NodeID
}

// Stats is the graph-level aggregate reported to the host.
type Stats struct {
	NodeCount        int
	LinkCount        int
	Ready            bool
	UnreachableAreas int
	BuiltAt          time.Time
}

// Snapshot is an immutable copy of a graph, published wholesale by Build.
// Concurrent searches may share one snapshot freely; a world rebuild
// produces a new snapshot with a new version and never mutates an old one.
type Snapshot struct {
	version     string
	builtAt     time.Time
	nodes       map[NodeID]Node
	adj         map[NodeID][]Link
	nodeOrder   []NodeID
	linkCount   int
	unreachable int
}

// Build publishes an immutable snapshot of the current graph state. The
// builder may keep mutating afterwards; the snapshot is unaffected.
func (g *Graph) Build() *Snapshot {
	s := &Snapshot{
		version:   uuid.NewString(),
		builtAt:   time.Now(),
		nodes:     make(map[NodeID]Node, len(g.nodes)),
		adj:       make(map[NodeID][]Link, len(g.adj)),
		nodeOrder: g.sortedNodeIDs(),
		linkCount: g.links,
	}
	for id, n := range g.nodes {
		s.nodes[id] = n
	}
	for id, links := range g.adj {
		cp := make([]Link, len(links))
		copy(cp, links)
		s.adj[id] = cp
	}
	metrics.RecordRebuild(len(s.nodes), s.linkCount)
	return s
}

// Version returns the snapshot's unique version id.
func (s *Snapshot) Version() string { return s.version }

// NodeByID looks up a node. The second return is false for unknown ids;
// an unknown id is never a crash.
func (s *Snapshot) NodeByID(id NodeID) (Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// NeighborsOf returns every outgoing traversal option from a node,
// parallel edges included, in insertion order. Unknown ids yield nil.
func (s *Snapshot) NeighborsOf(id NodeID) []Neighbor {
	links := s.adj[id]
	if len(links) == 0 {
		return nil
	}
	out := make([]Neighbor, len(links))
	for i, l := range links {
		out[i] = Neighbor{Link: l, Dest: l.To}
	}
	return out
}

// NodeIDs returns all node ids in ascending order.
func (s *Snapshot) NodeIDs() []NodeID {
	out := make([]NodeID, len(s.nodeOrder))
	copy(out, s.nodeOrder)
	return out
}

// NodeCount returns the number of nodes.
func (s *Snapshot) NodeCount() int { return len(s.nodes) }

// LinkCount returns the number of directed link entries.
func (s *Snapshot) LinkCount() int { return s.linkCount }

// WithUnreachableAreas returns a derived snapshot carrying a validation
// result. The receiver is not modified; both snapshots share the same
// underlying node and link data, which neither can mutate.
func (s *Snapshot) WithUnreachableAreas(count int) *Snapshot {
	cp := *s
	cp.unreachable = count
	return &cp
}

// Stats returns the aggregate view of the snapshot.
func (s *Snapshot) Stats() Stats {
	return Stats{
		NodeCount:        len(s.nodes),
		LinkCount:        s.linkCount,
		Ready:            len(s.nodes) > 0,
		UnreachableAreas: s.unreachable,
		BuiltAt:          s.builtAt,
	}
}
