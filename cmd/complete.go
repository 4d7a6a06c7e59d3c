package cmd

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/verdantapp/verdant/internal/ledger"
	"github.com/verdantapp/verdant/internal/reward"
	"github.com/verdantapp/verdant/internal/ui/theme"
)

var (
	completeScore  int
	completeMax    int
	completeStreak int
)

var completeCmd = &cobra.Command{
	Use:   "complete <unit-id>",
	Short: "Record the completion of a unit and collect its reward",
	Long: "Record the completion of an unlocked unit. Quizzes require --score and " +
		"--max (and optionally --streak); other kinds grant their fixed reward.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		unitID := args[0]

		st, graph, service, err := openServices(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		var outcome *reward.Outcome
		unit, err := graph.Unit(unitID)
		if err == nil && unit.Kind.Scored() {
			if !cmd.Flags().Changed("score") || !cmd.Flags().Changed("max") {
				return fmt.Errorf("quiz %q requires --score and --max", unitID)
			}
			outcome = &reward.Outcome{
				ScoreEarned: completeScore,
				MaxScore:    completeMax,
				Streak:      completeStreak,
			}
		}

		grant, err := service.CompleteUnit(ctx, unitID, outcome)
		if err != nil {
			if errors.Is(err, ledger.ErrAlreadyCompleted) {
				fmt.Println(theme.Hint.Render("Already completed — previously earned:"))
				printGrant(grant)
				return nil
			}
			return err
		}

		if err := saveSnapshot(ctx, st, service); err != nil {
			return err
		}

		name := unitID
		if unit.Name != "" {
			name = unit.Name
		}
		fmt.Println(theme.Done.Render("✓ " + name + " complete!"))
		printGrant(grant)

		stage := service.Stage()
		fmt.Printf("\n%s  %s · %d pts total\n",
			stage.Icon(),
			stage.DisplayName(),
			service.TotalPoints())
		return nil
	},
}

func init() {
	completeCmd.Flags().IntVar(&completeScore, "score", 0, "points earned in the quiz attempt")
	completeCmd.Flags().IntVar(&completeMax, "max", 0, "maximum points of the quiz")
	completeCmd.Flags().IntVar(&completeStreak, "streak", 0, "longest run of consecutive correct answers")
}

func printGrant(g reward.Grant) {
	var parts []string
	for _, t := range reward.AllItemTypes() {
		if n := g.Items.Get(t); n > 0 {
			parts = append(parts, fmt.Sprintf("%s %s ×%d", t.Icon(), t.DisplayName(), n))
		}
	}
	line := fmt.Sprintf("  +%d pts", g.Points)
	if len(parts) > 0 {
		line += "   " + strings.Join(parts, "  ")
	}
	fmt.Println(lipgloss.NewStyle().Foreground(theme.Accent).Render(line))
}
