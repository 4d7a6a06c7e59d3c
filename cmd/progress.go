package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verdantapp/verdant/internal/catalog"
	"github.com/verdantapp/verdant/internal/ledger"
	"github.com/verdantapp/verdant/internal/progress"
	"github.com/verdantapp/verdant/internal/ui/components"
	"github.com/verdantapp/verdant/internal/ui/theme"
)

var progressCmd = &cobra.Command{
	Use:   "progress [group-id]",
	Short: "Show rollup progress for groups",
	Long: "Show completedCount/totalCount progress. With no argument, prints the " +
		"whole group tree; with a group id, prints that group only.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, graph, service, err := openServices(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if len(args) == 1 {
			return printGroup(graph, service, args[0], 0)
		}
		for _, root := range graph.RootGroups() {
			if err := printGroup(graph, service, root.ID, 0); err != nil {
				return err
			}
		}
		return nil
	},
}

// printGroup prints one group's progress bar and recurses into child groups.
func printGroup(g *catalog.Graph, service *ledger.Service, groupID string, depth int) error {
	grp, err := g.Group(groupID)
	if err != nil {
		return err
	}
	summary, err := progress.GroupProgress(g, groupID, service)
	if err != nil {
		return err
	}

	indent := strings.Repeat("  ", depth)
	label := indent + grp.Name
	if summary.Completed {
		label = indent + theme.Done.Render("✓ "+grp.Name)
	}
	bar := components.ProgressBar{
		Label:     label,
		Completed: summary.CompletedCount,
		Total:     summary.TotalCount,
		Percent:   summary.Percent,
		ShowCount: true,
		Width:     72,
	}
	fmt.Println(bar.View())

	for _, child := range grp.Children {
		if g.IsGroup(child) {
			if err := printGroup(g, service, child, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
