package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdantapp/verdant/internal/catalog"
	"github.com/verdantapp/verdant/internal/reward"
	"github.com/verdantapp/verdant/internal/store"
	"github.com/verdantapp/verdant/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, _, service, err := openServices(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		stage := service.Stage()
		fmt.Println(theme.Title.Render("Verdant — Statistics"))
		fmt.Printf("\n%s %s · %d pts\n\n", stage.Icon(), stage.DisplayName(), service.TotalPoints())

		counts := service.CompletedCounts()
		for _, kind := range catalog.AllUnitKinds() {
			fmt.Printf("  %-10s %d completed\n", kind.DisplayName(), counts[kind])
		}

		inv := service.Inventory()
		fmt.Println()
		for _, t := range reward.AllItemTypes() {
			fmt.Printf("  %s %-10s ×%d\n", t.Icon(), t.DisplayName(), inv.Get(t))
		}

		events, err := st.EventRepo().QueryCompletions(ctx, store.QueryOpts{Limit: 10})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) > 0 {
			fmt.Println("\nRecent completions:")
			for _, e := range events {
				line := fmt.Sprintf("  %s  %-28s +%d pts", e.Timestamp.Local().Format("2006-01-02 15:04"), e.UnitID, e.Points)
				if e.Percent != nil {
					line += fmt.Sprintf("  (%d%%)", *e.Percent)
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}
