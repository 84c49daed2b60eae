// Command gen_worlds generates deterministic world files for navgate
// benchmarks and validation runs. A seeded generator makes every world
// reproducible from its parameters.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/navgate/internal/worldfile"
)

var (
	seed      = flag.Int64("seed", 1, "Random seed")
	width     = flag.Int("width", 8, "Grid width")
	height    = flag.Int("height", 8, "Grid height")
	levels    = flag.Int("levels", 2, "Vertical levels")
	gateRatio = flag.Float64("gate-ratio", 0.2, "Fraction of links carrying an ability gate")
	outDir    = flag.String("out", "worlds", "Output directory")
	count     = flag.Int("count", 1, "Number of worlds to generate")
)

var zones = []string{"cavern", "ruins", "canopy", "depths", "summit"}

var gateAbilities = []string{
	"jump", "double-jump", "dash", "wall-jump", "arc-jump",
	"charged-jump", "teleport", "grapple", "climb", "glide",
}

var softTiers = []string{"hard", "very-difficult", "difficult", "moderate", "easy", "trivial"}

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	for i := 0; i < *count; i++ {
		worldSeed := *seed + int64(i)
		file := generate(worldSeed)
		name := fmt.Sprintf("world_s%d_%dx%dx%d.yaml", worldSeed, *width, *height, *levels)
		if err := write(filepath.Join(*outDir, name), file); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d nodes, %d links)\n", name, len(file.Nodes), len(file.Links))
	}
}

// generate builds a layered grid world: full 4-connected levels joined by
// sparse gated climbs and ungated drops.
func generate(seed int64) *worldfile.File {
	rng := rand.New(rand.NewSource(seed))
	w, h, lv := *width, *height, *levels

	file := &worldfile.File{
		Name: fmt.Sprintf("generated-%d", seed),
	}

	id := func(x, y, level int) int { return level*w*h + y*w + x }

	for level := 0; level < lv; level++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				file.Nodes = append(file.Nodes, worldfile.NodeDef{
					ID:   id(x, y, level),
					X:    float64(x),
					Y:    float64(y),
					Z:    float64(level) * 3.0,
					Zone: zones[rng.Intn(len(zones))],
				})
			}
		}
	}

	addLink := func(from, to int, gated bool) {
		link := worldfile.LinkDef{
			From:     from,
			To:       to,
			BaseCost: 0.5 + rng.Float64(),
		}
		if gated {
			link.RequireAbility = []string{gateAbilities[rng.Intn(len(gateAbilities))]}
			link.Softness = softTiers[rng.Intn(len(softTiers))]
			link.MismatchMult = 1.0 + rng.Float64()*2.0
		}
		file.Links = append(file.Links, link)
	}

	// In-level grid edges.
	for level := 0; level < lv; level++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if x < w-1 {
					addLink(id(x, y, level), id(x+1, y, level), rng.Float64() < *gateRatio)
				}
				if y < h-1 {
					addLink(id(x, y, level), id(x, y+1, level), rng.Float64() < *gateRatio)
				}
			}
		}
	}

	// Between-level connections: gated climbs up, free drops down.
	for level := 0; level < lv-1; level++ {
		climbs := 2 + rng.Intn(3)
		for i := 0; i < climbs; i++ {
			x, y := rng.Intn(w), rng.Intn(h)
			file.Links = append(file.Links, worldfile.LinkDef{
				From:           id(x, y, level),
				To:             id(x, y, level+1),
				Kind:           "one-way",
				RequireAbility: []string{gateAbilities[rng.Intn(len(gateAbilities))]},
				Softness:       softTiers[rng.Intn(len(softTiers))],
				BaseCost:       1.0 + rng.Float64(),
				MismatchMult:   1.5,
				Label:          fmt.Sprintf("climb-%d-%d", level, i),
			})
			file.Links = append(file.Links, worldfile.LinkDef{
				From:     id(x, y, level+1),
				To:       id(x, y, level),
				Kind:     "drop",
				BaseCost: 0.5,
				Label:    fmt.Sprintf("drop-%d-%d", level, i),
			})
		}
	}

	file.Profiles = []worldfile.ProfileDef{
		{Name: "novice", Abilities: []string{"jump"}, Skill: 0.2, Tag: "early-game"},
		{Name: "adept", Abilities: []string{"jump", "dash", "double-jump", "climb"}, Skill: 0.5, Tag: "mid-game"},
		{Name: "master", Abilities: gateAbilities, Polarities: []string{"any"}, Skill: 0.95, Tag: "end-game"},
	}

	return file
}

func write(path string, file *worldfile.File) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}
