package main

import (
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/elektrokombinacija/navgate/internal/core"
	"github.com/elektrokombinacija/navgate/internal/nav"
	"github.com/elektrokombinacija/navgate/internal/worldfile"
)

var validateFlags struct {
	world string
	root  int
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report unreachable nodes and isolated components per profile",
	RunE:  runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.StringVar(&validateFlags.world, "world", "", "World file (required)")
	f.IntVar(&validateFlags.root, "root", -1, "Entry node id (-1 = lowest active node)")

	_ = validateCmd.MarkFlagRequired("world")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	file, err := worldfile.Load(validateFlags.world)
	if err != nil {
		return err
	}
	snap, err := file.BuildGraph()
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	profiles := file.BuildProfiles()
	if len(profiles) == 0 {
		return fmt.Errorf("world file has no profiles to validate")
	}

	root := core.NodeID(validateFlags.root)
	if validateFlags.root < 0 {
		root, err = defaultRoot(snap)
		if err != nil {
			return err
		}
	}

	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	// One snapshot, many concurrent read-only searches.
	var mu sync.Mutex
	reports := make(map[string]nav.Report, len(names))
	var g errgroup.Group
	for _, name := range names {
		profile := profiles[name]
		g.Go(func() error {
			report := nav.Validate(snap, profile, root)
			mu.Lock()
			reports[name] = report
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "World: %s (version %s, root %d)\n", file.Name, snap.Version(), root)
	for _, name := range names {
		report := reports[name]
		fmt.Fprintf(out, "\nProfile %q:\n", name)
		fmt.Fprintf(out, "  Components:  %d\n", report.IsolatedComponents)
		fmt.Fprintf(out, "  Unreachable: %d nodes\n", len(report.UnreachableNodes))
		for _, id := range report.UnreachableNodes {
			fmt.Fprintf(out, "    node %d\n", id)
		}
	}
	return nil
}

// defaultRoot picks the lowest-id active node as the validation entry.
func defaultRoot(snap *core.Snapshot) (core.NodeID, error) {
	for _, id := range snap.NodeIDs() {
		if n, ok := snap.NodeByID(id); ok && n.Active {
			return id, nil
		}
	}
	return 0, fmt.Errorf("world has no active nodes")
}
