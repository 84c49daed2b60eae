package core

import (
	"fmt"
	"sort"
)

// Graph is the mutable builder used while the host assembles a world.
// Searches never see a Graph; they operate on the immutable Snapshot
// published by Build.
type Graph struct {
	nodes map[NodeID]Node
	adj   map[NodeID][]Link
	links int
}

// NewGraph creates an empty builder.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[NodeID]Node),
		adj:   make(map[NodeID][]Link),
	}
}

// AddNode inserts a node, clamping its base cost. Duplicate IDs are
// rejected: node ids are unique within a graph instance.
func (g *Graph) AddNode(n Node) error {
	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("duplicate node id %d", n.ID)
	}
	g.nodes[n.ID] = n.clamped()
	if g.adj[n.ID] == nil {
		g.adj[n.ID] = []Link{}
	}
	return nil
}

// AddLink inserts a link after clamping its costs. Bidirectional links get
// their reverse entry automatically. Both endpoints must already exist.
// Duplicate calls are permitted and produce parallel edges; the search
// considers every one of them.
func (g *Graph) AddLink(l Link) error {
	if _, ok := g.nodes[l.From]; !ok {
		return fmt.Errorf("link %q: unknown source node %d", l.Label, l.From)
	}
	if _, ok := g.nodes[l.To]; !ok {
		return fmt.Errorf("link %q: unknown destination node %d", l.Label, l.To)
	}
	l = l.clamped()
	g.adj[l.From] = append(g.adj[l.From], l)
	g.links++
	if !l.Kind.OneWay() {
		g.adj[l.To] = append(g.adj[l.To], l.reversed())
		g.links++
	}
	return nil
}

// SetNodeActive toggles a node's active flag.
func (g *Graph) SetNodeActive(id NodeID, active bool) error {
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("unknown node %d", id)
	}
	n.Active = active
	g.nodes[id] = n
	return nil
}

// SetNodeDiscovered toggles a node's discovered flag.
func (g *Graph) SetNodeDiscovered(id NodeID, discovered bool) error {
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("unknown node %d", id)
	}
	n.Discovered = discovered
	g.nodes[id] = n
	return nil
}

// NodeCount returns the number of nodes added so far.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// LinkCount returns the number of directed link entries added so far.
func (g *Graph) LinkCount() int { return g.links }

// sortedNodeIDs returns node ids in ascending order for deterministic
// iteration regardless of map order.
func (g *Graph) sortedNodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
