// Package core defines the capability model and graph data model for navgate.
package core

import (
	"fmt"
	"strings"
)

// Polarity classifies nodes, links, and agents by environmental affinity.
// Requirements are bit masks: a link may demand one or more polarities, an
// agent carries the set it is attuned to.
type Polarity uint32

const (
	PolarityEmber Polarity = 1 << iota
	PolarityFrost
	PolarityGale
	PolarityTide
	PolarityUmbral
	PolarityRadiant
)

// PolarityNone means no polarity requirement.
const PolarityNone Polarity = 0

// PolarityAny is the wildcard requirement, satisfied by every agent.
const PolarityAny = ^Polarity(0)

var polarityNames = map[Polarity]string{
	PolarityEmber:   "ember",
	PolarityFrost:   "frost",
	PolarityGale:    "gale",
	PolarityTide:    "tide",
	PolarityUmbral:  "umbral",
	PolarityRadiant: "radiant",
}

// Union returns the combined mask.
func (p Polarity) Union(o Polarity) Polarity { return p | o }

// Intersect returns the shared bits.
func (p Polarity) Intersect(o Polarity) Polarity { return p & o }

// Intersects reports whether the two masks share any bit.
func (p Polarity) Intersects(o Polarity) bool { return p&o != 0 }

func (p Polarity) String() string {
	switch p {
	case PolarityNone:
		return "none"
	case PolarityAny:
		return "any"
	}
	var parts []string
	for bit := PolarityEmber; bit <= PolarityRadiant; bit <<= 1 {
		if p.Intersects(bit) {
			parts = append(parts, polarityNames[bit])
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("polarity(%#x)", uint32(p))
	}
	return strings.Join(parts, "|")
}

// ParsePolarity resolves a polarity name ("ember", "none", "any", ...).
func ParsePolarity(name string) (Polarity, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return PolarityNone, nil
	case "any":
		return PolarityAny, nil
	}
	for bit, n := range polarityNames {
		if n == strings.ToLower(name) {
			return bit, nil
		}
	}
	return PolarityNone, fmt.Errorf("unknown polarity %q", name)
}

// PolaritySatisfied reports whether an agent mask meets a requirement.
// None and Any short-circuit to true; otherwise any shared bit passes.
func PolaritySatisfied(required, have Polarity) bool {
	if required == PolarityNone || required == PolarityAny {
		return true
	}
	return required.Intersects(have)
}

// Ability is a bit set of discrete movement capabilities.
type Ability uint32

const (
	AbilityJump Ability = 1 << iota
	AbilityDoubleJump
	AbilityDash
	AbilityWallJump
	AbilityArcJump
	AbilityChargedJump
	AbilityTeleport
	AbilityGrapple
	AbilityClimb
	AbilityGlide
)

// MotionAbilities covers every ability that implies a trajectory; links
// requiring any of these are costed through the arc model.
const MotionAbilities = AbilityJump | AbilityDoubleJump | AbilityDash |
	AbilityWallJump | AbilityArcJump | AbilityChargedJump |
	AbilityTeleport | AbilityGrapple | AbilityClimb | AbilityGlide

var abilityNames = map[Ability]string{
	AbilityJump:        "jump",
	AbilityDoubleJump:  "double-jump",
	AbilityDash:        "dash",
	AbilityWallJump:    "wall-jump",
	AbilityArcJump:     "arc-jump",
	AbilityChargedJump: "charged-jump",
	AbilityTeleport:    "teleport",
	AbilityGrapple:     "grapple",
	AbilityClimb:       "climb",
	AbilityGlide:       "glide",
}

// Union returns the combined ability set.
func (a Ability) Union(o Ability) Ability { return a | o }

// Intersects reports whether the two sets share any ability.
func (a Ability) Intersects(o Ability) bool { return a&o != 0 }

// HasAll reports whether every ability in o is present in a.
func (a Ability) HasAll(o Ability) bool { return a&o == o }

func (a Ability) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	for bit := AbilityJump; bit <= AbilityGlide; bit <<= 1 {
		if a.Intersects(bit) {
			parts = append(parts, abilityNames[bit])
		}
	}
	return strings.Join(parts, "|")
}

// ParseAbility resolves an ability name ("jump", "wall-jump", ...).
func ParseAbility(name string) (Ability, error) {
	for bit, n := range abilityNames {
		if n == strings.ToLower(name) {
			return bit, nil
		}
	}
	return 0, fmt.Errorf("unknown ability %q", name)
}

// AbilitySatisfied reports whether the required set is fully covered.
// An empty requirement always passes.
func AbilitySatisfied(required, have Ability) bool {
	return have.HasAll(required)
}

// Softness orders how strictly a gate enforces its requirements. Hard gates
// are pass/fail; every softer tier is always traversable at increased cost.
type Softness int

const (
	SoftnessHard Softness = iota
	SoftnessVeryDifficult
	SoftnessDifficult
	SoftnessModerate
	SoftnessEasy
	SoftnessTrivial

	softnessCount = int(SoftnessTrivial) + 1
)

var softnessNames = [softnessCount]string{
	"hard", "very-difficult", "difficult", "moderate", "easy", "trivial",
}

// softnessCostScale maps tier ordinal to the traversal cost scalar. Kept as
// a table so tuning never touches the search code.
var softnessCostScale = [softnessCount]float64{1.0, 1.5, 2.0, 2.5, 3.0, 4.0}

func (s Softness) valid() bool { return s >= SoftnessHard && s < Softness(softnessCount) }

func (s Softness) String() string {
	if !s.valid() {
		return fmt.Sprintf("softness(%d)", int(s))
	}
	return softnessNames[s]
}

// ParseSoftness resolves a tier name ("hard", "moderate", ...).
func ParseSoftness(name string) (Softness, error) {
	for i, n := range softnessNames {
		if n == strings.ToLower(name) {
			return Softness(i), nil
		}
	}
	return SoftnessHard, fmt.Errorf("unknown softness %q", name)
}

// CostScale returns the tier's cost multiplier.
func (s Softness) CostScale() float64 {
	if !s.valid() {
		return softnessCostScale[SoftnessHard]
	}
	return softnessCostScale[s]
}

// BypassThreshold returns the minimum skill that bypasses the ability check
// on a non-hard gate: 1 - tier/tiers. Hard gates never bypass.
func (s Softness) BypassThreshold() float64 {
	return 1.0 - float64(s)/float64(softnessCount)
}

// SkillBypasses reports whether the given skill clears the tier's threshold.
// Always false for hard gates.
func (s Softness) SkillBypasses(skill float64) bool {
	if s == SoftnessHard {
		return false
	}
	return skill >= s.BypassThreshold()
}
