package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdantapp/verdant/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate catalog files",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a catalog JSON file",
	Long: "Check a catalog file against the schema and the structural rules: " +
		"unique ids, resolvable references, and an acyclic prerequisite graph.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.LoadFile(args[0])
		if err != nil {
			return err
		}
		g, err := catalog.NewGraph(c)
		if err != nil {
			return err
		}

		fmt.Printf("%s is valid (format %s)\n", args[0], c.Version)
		fmt.Printf("  %d units, %d groups, %d top-level\n",
			len(g.Units()), len(g.Groups()), len(g.RootGroups()))
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
}
