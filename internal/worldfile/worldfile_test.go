package worldfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/navgate/internal/core"
	"github.com/elektrokombinacija/navgate/internal/nav"
)

const sampleWorld = `
name: test-world
nodes:
  - {id: 0, x: 0, y: 0, z: 0, zone: cavern}
  - {id: 1, x: 1, y: 0, z: 0, zone: cavern, polarity: ember}
  - {id: 2, x: 2, y: 0, z: 2, zone: summit, min_cost: 0.5}
  - {id: 3, x: 9, y: 9, z: 0, active: false}
links:
  - {from: 0, to: 1, base_cost: 1.0}
  - from: 1
    to: 2
    kind: one-way
    require_ability: [jump]
    softness: moderate
    base_cost: 1.0
    mismatch_mult: 2.0
    label: summit-climb
  - {from: 2, to: 1, kind: drop, base_cost: 0.01}
profiles:
  - {name: walker, skill: 0.3}
  - {name: jumper, abilities: [jump, glide], skill: 1.7, tag: tester}
  - {name: attuned, polarities: [any], abilities: [jump], skill: 0.5}
`

func TestParseAndBuild(t *testing.T) {
	f, err := Parse([]byte(sampleWorld))
	require.NoError(t, err)
	assert.Equal(t, "test-world", f.Name)

	snap, err := f.BuildGraph()
	require.NoError(t, err)

	stats := snap.Stats()
	assert.Equal(t, 4, stats.NodeCount)
	// One bidirectional link (two entries) plus two one-way entries.
	assert.Equal(t, 4, stats.LinkCount)
	assert.True(t, stats.Ready)

	n2, ok := snap.NodeByID(2)
	require.True(t, ok)
	assert.Equal(t, core.ZoneSummit, n2.Zone)
	assert.Equal(t, 0.5, n2.MinCost)

	n3, ok := snap.NodeByID(3)
	require.True(t, ok)
	assert.False(t, n3.Active, "explicit active: false must stick")

	n0, ok := snap.NodeByID(0)
	require.True(t, ok)
	assert.True(t, n0.Active, "active must default to true")
}

func TestProfileClamping(t *testing.T) {
	f, err := Parse([]byte(sampleWorld))
	require.NoError(t, err)

	profiles := f.BuildProfiles()
	require.Len(t, profiles, 3)

	jumper := profiles["jumper"]
	assert.Equal(t, 1.0, jumper.Skill, "out-of-range skill clamps")
	assert.True(t, jumper.Abilities.HasAll(core.AbilityJump|core.AbilityGlide))

	attuned := profiles["attuned"]
	assert.Equal(t, core.PolarityAny, attuned.Polarities)
}

func TestLinkCostClamping(t *testing.T) {
	f, err := Parse([]byte(sampleWorld))
	require.NoError(t, err)
	snap, err := f.BuildGraph()
	require.NoError(t, err)

	drop := snap.NeighborsOf(2)
	require.Len(t, drop, 1)
	assert.Equal(t, core.MinLinkCost, drop[0].Link.BaseCost, "base_cost 0.01 clamps up")
	assert.Equal(t, core.LinkDrop, drop[0].Link.Kind)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"empty nodes": `
name: w
nodes: []
`,
		"duplicate node id": `
name: w
nodes:
  - {id: 1}
  - {id: 1}
`,
		"dangling link": `
name: w
nodes:
  - {id: 0}
links:
  - {from: 0, to: 5}
`,
		"unknown ability": `
name: w
nodes:
  - {id: 0}
  - {id: 1}
links:
  - {from: 0, to: 1, require_ability: [levitate]}
`,
		"unknown softness": `
name: w
nodes:
  - {id: 0}
  - {id: 1}
links:
  - {from: 0, to: 1, softness: impossible}
`,
		"bad profile polarity": `
name: w
nodes:
  - {id: 0}
profiles:
  - {name: p, polarities: [plasma]}
`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestLoadedWorldSearch(t *testing.T) {
	f, err := Parse([]byte(sampleWorld))
	require.NoError(t, err)
	snap, err := f.BuildGraph()
	require.NoError(t, err)
	profiles := f.BuildProfiles()

	// The jumper crosses the moderate climb cleanly.
	r := nav.FindPath(snap, 0, 2, profiles["jumper"])
	require.Equal(t, nav.OutcomePathFound, r.Outcome)
	assert.Equal(t, []core.NodeID{0, 1, 2}, r.Nodes)

	// The walker also gets through: moderate gates never hard-block.
	w := nav.FindPath(snap, 0, 2, profiles["walker"])
	require.Equal(t, nav.OutcomePathFound, w.Outcome)
	assert.Greater(t, w.TotalCost, r.TotalCost)
}
