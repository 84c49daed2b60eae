package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/navgate/internal/nav"
	"github.com/elektrokombinacija/navgate/internal/worldfile"
)

var statsFlags struct {
	world string
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the aggregate snapshot for a world file",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsFlags.world, "world", "", "World file (required)")
	_ = statsCmd.MarkFlagRequired("world")
}

func runStats(cmd *cobra.Command, _ []string) error {
	file, err := worldfile.Load(statsFlags.world)
	if err != nil {
		return err
	}
	snap, err := file.BuildGraph()
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}

	// Fold the first profile's unreachable count into the aggregate when
	// the file declares profiles.
	profiles := file.BuildProfiles()
	if len(file.Profiles) > 0 {
		if root, err := defaultRoot(snap); err == nil {
			profile := profiles[file.Profiles[0].Name]
			report := nav.Validate(snap, profile, root)
			snap = snap.WithUnreachableAreas(len(report.UnreachableNodes))
		}
	}

	stats := snap.Stats()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "World:       %s\n", file.Name)
	fmt.Fprintf(out, "Version:     %s\n", snap.Version())
	fmt.Fprintf(out, "Nodes:       %d\n", stats.NodeCount)
	fmt.Fprintf(out, "Links:       %d\n", stats.LinkCount)
	fmt.Fprintf(out, "Ready:       %v\n", stats.Ready)
	fmt.Fprintf(out, "Unreachable: %d\n", stats.UnreachableAreas)
	fmt.Fprintf(out, "Built:       %s\n", stats.BuiltAt.Format("2006-01-02 15:04:05"))
	return nil
}
