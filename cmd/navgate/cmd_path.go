package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/navgate/internal/core"
	"github.com/elektrokombinacija/navgate/internal/nav"
	"github.com/elektrokombinacija/navgate/internal/worldfile"
)

var pathFlags struct {
	world   string
	profile string
	from    int
	to      int
	budget  int
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Find a path between two nodes for a profile",
	RunE:  runPath,
}

func init() {
	f := pathCmd.Flags()
	f.StringVar(&pathFlags.world, "world", "", "World file (required)")
	f.StringVar(&pathFlags.profile, "profile", "", "Profile name from the world file (required)")
	f.IntVar(&pathFlags.from, "from", 0, "Start node id")
	f.IntVar(&pathFlags.to, "to", 0, "Goal node id")
	f.IntVar(&pathFlags.budget, "budget", 0, "Explored-node budget (0 = default)")

	_ = pathCmd.MarkFlagRequired("world")
	_ = pathCmd.MarkFlagRequired("profile")
}

func runPath(cmd *cobra.Command, _ []string) error {
	file, err := worldfile.Load(pathFlags.world)
	if err != nil {
		return err
	}
	snap, err := file.BuildGraph()
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	profiles := file.BuildProfiles()
	profile, ok := profiles[pathFlags.profile]
	if !ok {
		return fmt.Errorf("unknown profile %q", pathFlags.profile)
	}

	result := nav.FindPathOpts(snap,
		core.NodeID(pathFlags.from), core.NodeID(pathFlags.to),
		profile, nav.Options{MaxExpanded: pathFlags.budget})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Outcome: %s\n", result.Outcome)
	if !result.Success {
		fmt.Fprintf(out, "Expanded: %d nodes\n", result.Expanded)
		return nil
	}
	fmt.Fprintf(out, "Total cost: %.3f\n", result.TotalCost)
	for i, id := range result.Nodes {
		if i == 0 {
			fmt.Fprintf(out, "  %d\n", id)
			continue
		}
		fmt.Fprintf(out, "  %d  (step %.3f)\n", id, result.StepCosts[i-1])
	}
	return nil
}
