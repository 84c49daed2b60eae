package core

// Profile describes one agent's traversal capabilities. Profiles are value
// types; a search takes its own copy and never mutates it.
type Profile struct {
	Polarities Polarity
	Abilities  Ability
	Skill      float64 // [0,1], clamped by Normalized
	Tag        string  // free-text agent type, diagnostics only
	SharePaths bool    // discoveries may be reused across agents
}

// Normalized returns a copy with Skill clamped into [0,1]. Out-of-range
// configuration clamps rather than errors to keep searches deterministic.
func (p Profile) Normalized() Profile {
	if p.Skill < 0 {
		p.Skill = 0
	} else if p.Skill > 1 {
		p.Skill = 1
	}
	return p
}

// GateResult classifies a gate check.
type GateResult int

const (
	GateBlocked GateResult = iota
	GateSoftPass
	GateHardPass
)

func (r GateResult) String() string {
	return [...]string{"blocked", "soft-pass", "hard-pass"}[r]
}

// GatePass carries the outcome of Satisfies plus the cost consequence.
type GatePass struct {
	Result      GateResult
	Multiplier  float64 // softness cost scalar; 1.0 on a hard pass
	SkillBypass bool    // ability check was cleared by skill, not by the mask
}

// Satisfies is the pass/fail predicate shared by links and progression
// gates. The polarity dimension passes on None/Any or any shared bit; the
// ability dimension requires full coverage unless a non-hard tier's skill
// threshold bypasses it. Soft tiers never block.
func Satisfies(requiredPolarity Polarity, requiredAbility Ability, softness Softness, p Profile) GatePass {
	p = p.Normalized()
	polarityOK := PolaritySatisfied(requiredPolarity, p.Polarities)
	abilityOK := AbilitySatisfied(requiredAbility, p.Abilities)

	if polarityOK && abilityOK {
		return GatePass{Result: GateHardPass, Multiplier: 1.0}
	}
	if softness == SoftnessHard {
		return GatePass{Result: GateBlocked, Multiplier: 0}
	}

	bypass := !abilityOK && softness.SkillBypasses(p.Skill)
	return GatePass{
		Result:      GateSoftPass,
		Multiplier:  softness.CostScale(),
		SkillBypass: bypass,
	}
}

// GateCondition is a standalone progression lock, checked outside any
// specific link (ability doors, polarity seals).
type GateCondition struct {
	RequirePolarity Polarity
	RequireAbility  Ability
	Softness        Softness
	MinSkill        float64
	Active          bool
	Unlocked        bool
}

// Check evaluates the condition for a profile. Inactive or already unlocked
// conditions pass outright. A MinSkill shortfall blocks a hard gate and
// soft-penalizes the rest.
func (g GateCondition) Check(p Profile) GatePass {
	if !g.Active || g.Unlocked {
		return GatePass{Result: GateHardPass, Multiplier: 1.0}
	}
	p = p.Normalized()
	pass := Satisfies(g.RequirePolarity, g.RequireAbility, g.Softness, p)
	if pass.Result == GateBlocked {
		return pass
	}
	if p.Skill < g.MinSkill {
		if g.Softness == SoftnessHard {
			return GatePass{Result: GateBlocked, Multiplier: 0}
		}
		if pass.Result == GateHardPass {
			pass = GatePass{Result: GateSoftPass, Multiplier: g.Softness.CostScale()}
		}
	}
	return pass
}
