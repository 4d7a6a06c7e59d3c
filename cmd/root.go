package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/verdantapp/verdant/internal/catalog"
	"github.com/verdantapp/verdant/internal/store"
	"github.com/verdantapp/verdant/internal/unlock"
)

var rootCmd = &cobra.Command{
	Use:   "verdant",
	Short: "Grow a tree by learning",
	Long: "Verdant — gamified learning that grows a virtual tree as you complete " +
		"lessons, quizzes, challenges, games, and boss trials.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "path to the SQLite database file")
	rootCmd.PersistentFlags().String("catalog", "", "path to a catalog JSON file (default: built-in catalog)")
	rootCmd.PersistentFlags().Bool("preview", false, "preview mode: treat every unit as unlocked")

	viper.SetEnvPrefix("VERDANT")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	_ = viper.BindPFlag("preview", rootCmd.PersistentFlags().Lookup("preview"))

	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path from the --db flag or VERDANT_DB,
// falling back to the default XDG location.
func resolveDBPath() (string, error) {
	if p := viper.GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadGraph builds the catalog graph from --catalog / VERDANT_CATALOG, or
// the built-in catalog when neither is set.
func loadGraph() (*catalog.Graph, error) {
	path := viper.GetString("catalog")
	if path == "" {
		return catalog.Default()
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return catalog.NewGraph(c)
}

// newResolver builds the unlock resolver, honoring preview mode.
func newResolver(g *catalog.Graph) *unlock.Resolver {
	if viper.GetBool("preview") {
		fmt.Println("⚠ preview mode: all units unlocked")
		return unlock.NewPreview(g)
	}
	return unlock.New(g)
}
