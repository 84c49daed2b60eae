package core

import "fmt"

// LinkKind is a link's directionality. Drop and vent are semantically
// one-way subtypes; they gate the same way as the general one-way case.
type LinkKind int

const (
	LinkBidirectional LinkKind = iota
	LinkOneWay
	LinkDrop
	LinkVent
)

var linkKindNames = [...]string{"bidirectional", "one-way", "drop", "vent"}

func (k LinkKind) String() string {
	if k < LinkBidirectional || k > LinkVent {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return linkKindNames[k]
}

// ParseLinkKind resolves a kind name. Empty defaults to bidirectional.
func ParseLinkKind(name string) (LinkKind, error) {
	if name == "" {
		return LinkBidirectional, nil
	}
	for i, n := range linkKindNames {
		if n == name {
			return LinkKind(i), nil
		}
	}
	return LinkBidirectional, fmt.Errorf("unknown link kind %q", name)
}

// OneWay reports whether only the declared From endpoint may initiate.
func (k LinkKind) OneWay() bool { return k != LinkBidirectional }

// MinLinkCost is the floor for a link's base cost.
const MinLinkCost = 0.1

// Link is a directed traversal option between two nodes.
type Link struct {
	From, To NodeID
	Kind     LinkKind

	RequirePolarity Polarity // PolarityNone = no requirement, PolarityAny = wildcard
	RequireAbility  Ability
	Softness        Softness

	BaseCost     float64 // >= MinLinkCost
	MismatchMult float64 // >= 1.0, applied per mismatched dimension on soft gates

	Active     bool
	Discovered bool
	Label      string // diagnostics only
}

// clamped returns a copy with costs forced into range.
func (l Link) clamped() Link {
	if l.BaseCost < MinLinkCost {
		l.BaseCost = MinLinkCost
	}
	if l.MismatchMult < 1.0 {
		l.MismatchMult = 1.0
	}
	return l
}

// reversed returns the mirror entry stored for a bidirectional link.
func (l Link) reversed() Link {
	l.From, l.To = l.To, l.From
	return l
}
