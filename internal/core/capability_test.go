package core

import (
	"math"
	"testing"
)

func TestPolarityWildcards(t *testing.T) {
	if !PolaritySatisfied(PolarityNone, 0) {
		t.Error("none requirement must always pass")
	}
	if !PolaritySatisfied(PolarityAny, 0) {
		t.Error("any requirement must always pass")
	}
	if !PolaritySatisfied(PolarityEmber|PolarityFrost, PolarityFrost) {
		t.Error("shared bit must pass")
	}
	if PolaritySatisfied(PolarityEmber, PolarityFrost|PolarityTide) {
		t.Error("disjoint masks must fail")
	}
}

func TestAbilitySubset(t *testing.T) {
	have := AbilityJump | AbilityDash
	if !AbilitySatisfied(0, 0) {
		t.Error("empty requirement must pass")
	}
	if !AbilitySatisfied(AbilityJump, have) {
		t.Error("covered requirement must pass")
	}
	if AbilitySatisfied(AbilityJump|AbilityGlide, have) {
		t.Error("partially covered requirement must fail")
	}
}

func TestSatisfiesHardGate(t *testing.T) {
	p := Profile{Abilities: AbilityJump, Skill: 1.0}

	pass := Satisfies(PolarityNone, AbilityDash, SoftnessHard, p)
	if pass.Result != GateBlocked {
		t.Errorf("hard gate with missing ability: got %v, want blocked", pass.Result)
	}

	pass = Satisfies(PolarityNone, AbilityJump, SoftnessHard, p)
	if pass.Result != GateHardPass {
		t.Errorf("hard gate with full match: got %v, want hard-pass", pass.Result)
	}

	// A zero required ability mask always passes, at any softness.
	pass = Satisfies(PolarityNone, 0, SoftnessHard, Profile{})
	if pass.Result != GateHardPass {
		t.Errorf("zero ability mask: got %v, want hard-pass", pass.Result)
	}
}

func TestSatisfiesSoftGateNeverBlocks(t *testing.T) {
	p := Profile{Skill: 0}
	for s := SoftnessVeryDifficult; s <= SoftnessTrivial; s++ {
		pass := Satisfies(PolarityEmber, AbilityTeleport, s, p)
		if pass.Result != GateSoftPass {
			t.Errorf("%v gate with full mismatch: got %v, want soft-pass", s, pass.Result)
		}
		if pass.Multiplier != s.CostScale() {
			t.Errorf("%v soft pass multiplier: got %v, want %v", s, pass.Multiplier, s.CostScale())
		}
	}
}

func TestSkillBypassThreshold(t *testing.T) {
	for s := SoftnessVeryDifficult; s <= SoftnessTrivial; s++ {
		threshold := 1.0 - float64(s)/float64(softnessCount)

		above := Satisfies(PolarityNone, AbilityGrapple, s, Profile{Skill: threshold + 0.001})
		if !above.SkillBypass {
			t.Errorf("%v at skill %.3f: expected bypass", s, threshold+0.001)
		}

		below := Satisfies(PolarityNone, AbilityGrapple, s, Profile{Skill: threshold - 0.001})
		if below.Result != GateSoftPass {
			t.Errorf("%v below threshold: got %v, want soft-pass", s, below.Result)
		}
		if below.SkillBypass {
			t.Errorf("%v at skill %.3f: unexpected bypass", s, threshold-0.001)
		}
	}

	// Hard gates never bypass, even at full skill.
	if SoftnessHard.SkillBypasses(1.0) {
		t.Error("hard gates must not skill-bypass")
	}
}

func TestCostScaleMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for s := SoftnessHard; s <= SoftnessTrivial; s++ {
		scale := s.CostScale()
		if scale < prev {
			t.Errorf("cost scale decreased at %v: %v < %v", s, scale, prev)
		}
		prev = scale
	}
	if SoftnessHard.CostScale() != 1.0 {
		t.Errorf("hard scale: got %v, want 1.0", SoftnessHard.CostScale())
	}
}

func TestProfileNormalized(t *testing.T) {
	if got := (Profile{Skill: 1.7}).Normalized().Skill; got != 1.0 {
		t.Errorf("skill clamp high: got %v", got)
	}
	if got := (Profile{Skill: -0.3}).Normalized().Skill; got != 0.0 {
		t.Errorf("skill clamp low: got %v", got)
	}
}

func TestGateConditionCheck(t *testing.T) {
	locked := GateCondition{
		RequireAbility: AbilityDash,
		Softness:       SoftnessHard,
		Active:         true,
	}
	if got := locked.Check(Profile{}); got.Result != GateBlocked {
		t.Errorf("locked hard condition: got %v", got.Result)
	}

	inactive := locked
	inactive.Active = false
	if got := inactive.Check(Profile{}); got.Result != GateHardPass {
		t.Errorf("inactive condition: got %v", got.Result)
	}

	unlocked := locked
	unlocked.Unlocked = true
	if got := unlocked.Check(Profile{}); got.Result != GateHardPass {
		t.Errorf("unlocked condition: got %v", got.Result)
	}

	skillGate := GateCondition{
		Softness: SoftnessModerate,
		MinSkill: 0.6,
		Active:   true,
	}
	if got := skillGate.Check(Profile{Skill: 0.3}); got.Result != GateSoftPass {
		t.Errorf("skill shortfall on soft condition: got %v, want soft-pass", got.Result)
	}
	if got := skillGate.Check(Profile{Skill: 0.8}); got.Result != GateHardPass {
		t.Errorf("sufficient skill: got %v, want hard-pass", got.Result)
	}
}

func TestParseRoundTrips(t *testing.T) {
	for _, name := range []string{"ember", "frost", "gale", "tide", "umbral", "radiant", "none", "any"} {
		if _, err := ParsePolarity(name); err != nil {
			t.Errorf("ParsePolarity(%q): %v", name, err)
		}
	}
	if _, err := ParsePolarity("plasma"); err == nil {
		t.Error("expected error for unknown polarity")
	}

	for bit, name := range abilityNames {
		got, err := ParseAbility(name)
		if err != nil || got != bit {
			t.Errorf("ParseAbility(%q): got %v, %v", name, got, err)
		}
	}

	for i, name := range softnessNames {
		got, err := ParseSoftness(name)
		if err != nil || got != Softness(i) {
			t.Errorf("ParseSoftness(%q): got %v, %v", name, got, err)
		}
	}
}
