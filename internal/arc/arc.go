// Package arc turns a displacement between two nodes into a trajectory
// cost multiplier under simplified ballistic rules. A one-unit hop and a
// six-unit climb both "require Jump" structurally; this model is what makes
// them cost differently, and what gives teleport, grapple, and the jump
// variants distinct range envelopes.
package arc

import (
	"math"

	"github.com/elektrokombinacija/navgate/internal/core"
)

// ImpossibleMultiplier is returned when no held ability covers the
// displacement. Finite rather than infinite: the search can still rank the
// edge as a last resort when nothing else connects two areas.
const ImpossibleMultiplier = 10.0

// envelope declares one ability's operating range and cost band. Exactly
// one of maxVertical/maxEuclidean is set: ballistic abilities are limited
// by rise, point-to-point abilities by total distance.
type envelope struct {
	ability      core.Ability
	maxVertical  float64
	maxEuclidean float64
	minMult      float64
	maxMult      float64
}

// envelopes are evaluated in priority order; the first one whose range
// covers the displacement and whose ability is held decides the base
// multiplier.
var envelopes = []envelope{
	{ability: core.AbilityTeleport, maxEuclidean: 8.0, minMult: 2.0, maxMult: 3.0},
	{ability: core.AbilityGrapple, maxEuclidean: 6.0, minMult: 1.3, maxMult: 2.0},
	{ability: core.AbilityChargedJump, maxVertical: 4.0, minMult: 1.1, maxMult: 1.7},
	{ability: core.AbilityArcJump, maxVertical: 3.0, minMult: 1.0, maxMult: 1.4},
	{ability: core.AbilityJump, maxVertical: 2.0, minMult: 1.0, maxMult: 1.5},
	{ability: core.AbilityDoubleJump, maxVertical: 3.5, minMult: 1.2, maxMult: 2.0},
	{ability: core.AbilityWallJump, maxVertical: 5.0, minMult: 1.5, maxMult: 2.5},
}

// Multiplier computes the trajectory cost multiplier for moving from one
// position to another with the given abilities.
func Multiplier(from, to core.Pos, abilities core.Ability) float64 {
	dz := to.Z - from.Z
	if dz < 0 {
		return descentMultiplier(-dz, abilities)
	}
	return ascentMultiplier(from, to, dz, abilities)
}

// descentMultiplier handles drops: cheap, scaling with fall height up to a
// cap, cheaper still when the agent can glide down.
func descentMultiplier(drop float64, abilities core.Ability) float64 {
	m := 1.0 + math.Min(drop/10.0, 0.5)
	if abilities.Intersects(core.AbilityGlide) {
		m *= 0.7
	}
	return m
}

// ascentMultiplier handles upward and lateral movement through the
// envelope table.
func ascentMultiplier(from, to core.Pos, rise float64, abilities core.Ability) float64 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	horizontal := math.Hypot(dx, dy)
	euclidean := from.DistanceTo(to)

	base := 0.0
	matched := false
	for _, env := range envelopes {
		if !abilities.HasAll(env.ability) {
			continue
		}
		extent, limit := rise, env.maxVertical
		if env.maxEuclidean > 0 {
			extent, limit = euclidean, env.maxEuclidean
		}
		if extent > limit {
			continue
		}
		base = env.minMult + (env.maxMult-env.minMult)*(extent/limit)
		matched = true
		break
	}
	if !matched {
		return ImpossibleMultiplier
	}

	// Horizontal reach past one unit complicates the trajectory, up to
	// x1.6 at five units and beyond.
	if horizontal > 1.0 {
		base *= 1.0 + 0.6*math.Min((horizontal-1.0)/4.0, 1.0)
	}

	// Precision abilities discount the whole arc, multiplicatively,
	// floored at half the undiscounted multiplier.
	discounted := base
	if abilities.Intersects(core.AbilityArcJump) {
		discounted *= 0.85
	}
	if abilities.Intersects(core.AbilityGlide) {
		discounted *= 0.9
	}
	return math.Max(discounted, 0.5*base)
}
