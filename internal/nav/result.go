// Package nav implements pathfinding and reachability analysis over graph
// snapshots.
package nav

import "github.com/elektrokombinacija/navgate/internal/core"

// Outcome classifies how a search ended. NoPathFound and TargetUnreachable
// are deliberately distinct: the first means the frontier exhausted (or hit
// its budget) with the goal in the same component, the second means start
// and goal are in disconnected components for this profile.
type Outcome int

const (
	OutcomePathFound Outcome = iota
	OutcomeNoPathFound
	OutcomeTargetUnreachable
	OutcomeInvalidRequest
)

func (o Outcome) String() string {
	return [...]string{"path-found", "no-path-found", "target-unreachable", "invalid-request"}[o]
}

// Result is a completed pathfinding call. StepCosts is parallel to the
// edges of Nodes: StepCosts[i] is the cost of Nodes[i] -> Nodes[i+1].
type Result struct {
	Outcome   Outcome
	Success   bool
	Nodes     []core.NodeID
	StepCosts []float64
	TotalCost float64
	Expanded  int // nodes popped from the frontier
}

// Report is a validation result for one profile over one snapshot.
type Report struct {
	UnreachableNodes   []core.NodeID
	IsolatedComponents int
}

// DefaultMaxExpanded bounds search work on pathological graphs.
const DefaultMaxExpanded = 1000

// Options tunes a single search.
type Options struct {
	// MaxExpanded caps frontier pops; exceeding it yields NoPathFound.
	// Zero means DefaultMaxExpanded.
	MaxExpanded int
}

func (o Options) maxExpanded() int {
	if o.MaxExpanded <= 0 {
		return DefaultMaxExpanded
	}
	return o.MaxExpanded
}
