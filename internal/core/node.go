package core

import "math"

// NodeID is a unique node identifier within one graph.
type NodeID int

// Pos is a world position.
type Pos struct {
	X, Y, Z float64
}

// DistanceTo returns the euclidean distance to another position.
func (p Pos) DistanceTo(o Pos) float64 {
	dx := o.X - p.X
	dy := o.Y - p.Y
	dz := o.Z - p.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Zone is an open-ended environmental category tag.
type Zone string

const (
	ZoneCavern Zone = "cavern"
	ZoneRuins  Zone = "ruins"
	ZoneCanopy Zone = "canopy"
	ZoneDepths Zone = "depths"
	ZoneSummit Zone = "summit"
)

// MinNodeCost is the floor for a node's base traversal cost.
const MinNodeCost = 0.1

// Node is a traversable location.
type Node struct {
	ID         NodeID
	Pos        Pos
	Zone       Zone
	Polarity   Polarity // primary capability category of the location
	Active     bool
	Discovered bool
	MinCost    float64 // base traversal cost, clamped to >= MinNodeCost
}

// clamped returns a copy with MinCost forced into range.
func (n Node) clamped() Node {
	if n.MinCost < MinNodeCost {
		n.MinCost = MinNodeCost
	}
	return n
}
