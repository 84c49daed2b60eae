// Package gate decides link traversability and effective cost for a
// capability profile.
package gate

import (
	"math"

	"github.com/elektrokombinacija/navgate/internal/core"
)

// CanTraverse reports whether a profile may take a link starting from the
// given node. One-way links (including drops and vents) only admit their
// declared source. Hard links require a full polarity+ability match; every
// softer tier is always traversable.
func CanTraverse(l core.Link, p core.Profile, from core.NodeID) bool {
	if !l.Active {
		return false
	}
	if l.From != from {
		return false
	}
	if l.Softness != core.SoftnessHard {
		return true
	}
	return core.Satisfies(l.RequirePolarity, l.RequireAbility, l.Softness, p).Result != core.GateBlocked
}

// EffectiveCost returns the traversal cost of a link for a profile.
// Starting from the base cost, each mismatched dimension (polarity,
// ability) multiplies in the link's mismatch multiplier, then the softness
// tier scalar applies. A skill high enough to bypass the tier's ability
// check waives the ability-dimension penalty. Inactive links cost +Inf.
func EffectiveCost(l core.Link, p core.Profile) float64 {
	if !l.Active {
		return math.Inf(1)
	}
	p = p.Normalized()
	cost := l.BaseCost
	if !core.PolaritySatisfied(l.RequirePolarity, p.Polarities) {
		cost *= l.MismatchMult
	}
	if !core.AbilitySatisfied(l.RequireAbility, p.Abilities) && !l.Softness.SkillBypasses(p.Skill) {
		cost *= l.MismatchMult
	}
	return cost * l.Softness.CostScale()
}
