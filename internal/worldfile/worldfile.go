// Package worldfile loads world graph definitions and capability profiles
// from YAML. It is how the host's generator output (or a hand-written test
// world) becomes an immutable snapshot.
package worldfile

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/navgate/internal/core"
)

// NodeDef is one node entry in a world file.
type NodeDef struct {
	ID         int     `yaml:"id" validate:"gte=0"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Z          float64 `yaml:"z"`
	Zone       string  `yaml:"zone,omitempty"`
	Polarity   string  `yaml:"polarity,omitempty"`
	Active     *bool   `yaml:"active,omitempty"` // defaults to true
	Discovered bool    `yaml:"discovered,omitempty"`
	MinCost    float64 `yaml:"min_cost,omitempty"`
}

// LinkDef is one link entry in a world file.
type LinkDef struct {
	From            int      `yaml:"from" validate:"gte=0"`
	To              int      `yaml:"to" validate:"gte=0"`
	Kind            string   `yaml:"kind,omitempty" validate:"omitempty,oneof=bidirectional one-way drop vent"`
	RequirePolarity []string `yaml:"require_polarity,omitempty"`
	RequireAbility  []string `yaml:"require_ability,omitempty"`
	Softness        string   `yaml:"softness,omitempty" validate:"omitempty,oneof=hard very-difficult difficult moderate easy trivial"`
	BaseCost        float64  `yaml:"base_cost,omitempty"`
	MismatchMult    float64  `yaml:"mismatch_mult,omitempty"`
	Active          *bool    `yaml:"active,omitempty"` // defaults to true
	Label           string   `yaml:"label,omitempty"`
}

// ProfileDef is one named capability profile.
type ProfileDef struct {
	Name       string   `yaml:"name" validate:"required"`
	Polarities []string `yaml:"polarities,omitempty"`
	Abilities  []string `yaml:"abilities,omitempty"`
	Skill      float64  `yaml:"skill"`
	Tag        string   `yaml:"tag,omitempty"`
	SharePaths bool     `yaml:"share_paths,omitempty"`
}

// File is a parsed world definition.
type File struct {
	Name     string       `yaml:"name"`
	Nodes    []NodeDef    `yaml:"nodes" validate:"min=1,dive"`
	Links    []LinkDef    `yaml:"links" validate:"dive"`
	Profiles []ProfileDef `yaml:"profiles" validate:"dive"`
}

var validate = validator.New()

// Parse decodes and validates a world file. Structural problems (unknown
// ability names, dangling link endpoints) are errors; out-of-range costs
// and skills are clamped later, per the engine's configuration-error rules.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode world file: %w", err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("validate world file: %w", err)
	}

	seen := make(map[int]bool, len(f.Nodes))
	for _, n := range f.Nodes {
		if seen[n.ID] {
			return nil, fmt.Errorf("duplicate node id %d", n.ID)
		}
		seen[n.ID] = true
		if n.Polarity != "" {
			if _, err := core.ParsePolarity(n.Polarity); err != nil {
				return nil, fmt.Errorf("node %d: %w", n.ID, err)
			}
		}
	}
	for i, l := range f.Links {
		if !seen[l.From] {
			return nil, fmt.Errorf("link %d: unknown source node %d", i, l.From)
		}
		if !seen[l.To] {
			return nil, fmt.Errorf("link %d: unknown destination node %d", i, l.To)
		}
		if _, err := polarityMask(l.RequirePolarity); err != nil {
			return nil, fmt.Errorf("link %d: %w", i, err)
		}
		if _, err := abilityMask(l.RequireAbility); err != nil {
			return nil, fmt.Errorf("link %d: %w", i, err)
		}
	}
	for _, p := range f.Profiles {
		if _, err := polarityMask(p.Polarities); err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
		if _, err := abilityMask(p.Abilities); err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
	}
	return &f, nil
}

// Load reads and parses a world file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read world file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// BuildGraph assembles the file into an immutable snapshot.
func (f *File) BuildGraph() (*core.Snapshot, error) {
	g := core.NewGraph()
	for _, nd := range f.Nodes {
		polarity := core.PolarityNone
		if nd.Polarity != "" {
			polarity, _ = core.ParsePolarity(nd.Polarity)
		}
		err := g.AddNode(core.Node{
			ID:         core.NodeID(nd.ID),
			Pos:        core.Pos{X: nd.X, Y: nd.Y, Z: nd.Z},
			Zone:       core.Zone(nd.Zone),
			Polarity:   polarity,
			Active:     defaultTrue(nd.Active),
			Discovered: nd.Discovered,
			MinCost:    nd.MinCost,
		})
		if err != nil {
			return nil, err
		}
	}
	for _, ld := range f.Links {
		kind, err := core.ParseLinkKind(ld.Kind)
		if err != nil {
			return nil, err
		}
		softness := core.SoftnessHard
		if ld.Softness != "" {
			softness, _ = core.ParseSoftness(ld.Softness)
		}
		reqPolarity, _ := polarityMask(ld.RequirePolarity)
		reqAbility, _ := abilityMask(ld.RequireAbility)
		err = g.AddLink(core.Link{
			From:            core.NodeID(ld.From),
			To:              core.NodeID(ld.To),
			Kind:            kind,
			RequirePolarity: reqPolarity,
			RequireAbility:  reqAbility,
			Softness:        softness,
			BaseCost:        ld.BaseCost,
			MismatchMult:    ld.MismatchMult,
			Active:          defaultTrue(ld.Active),
			Label:           ld.Label,
		})
		if err != nil {
			return nil, err
		}
	}
	return g.Build(), nil
}

// BuildProfiles returns the file's named profiles, skills clamped.
func (f *File) BuildProfiles() map[string]core.Profile {
	out := make(map[string]core.Profile, len(f.Profiles))
	for _, pd := range f.Profiles {
		polarities, _ := polarityMask(pd.Polarities)
		abilities, _ := abilityMask(pd.Abilities)
		out[pd.Name] = core.Profile{
			Polarities: polarities,
			Abilities:  abilities,
			Skill:      pd.Skill,
			Tag:        pd.Tag,
			SharePaths: pd.SharePaths,
		}.Normalized()
	}
	return out
}

func polarityMask(names []string) (core.Polarity, error) {
	mask := core.PolarityNone
	for _, name := range names {
		p, err := core.ParsePolarity(name)
		if err != nil {
			return core.PolarityNone, err
		}
		if p == core.PolarityAny {
			return core.PolarityAny, nil
		}
		mask = mask.Union(p)
	}
	return mask, nil
}

func abilityMask(names []string) (core.Ability, error) {
	var mask core.Ability
	for _, name := range names {
		a, err := core.ParseAbility(name)
		if err != nil {
			return 0, err
		}
		mask = mask.Union(a)
	}
	return mask, nil
}

func defaultTrue(b *bool) bool {
	return b == nil || *b
}
