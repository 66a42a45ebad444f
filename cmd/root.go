package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/8bitgaijin/Learniverse-sub001/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learniverse",
	Short: "Daily lessons for kids in the terminal",
	Long:  "Learniverse — a terminal lesson runner that walks children through a fixed daily set of math drills, Japanese practice, and reading.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNIVERSE_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Directory of YAML lesson packs (overrides LEARNIVERSE_CONTENT env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(studentsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LEARNIVERSE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveContentDir returns the lesson pack directory, empty when only
// the built-in content should be used.
func resolveContentDir(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("content"); p != "" {
		return p
	}
	return os.Getenv("LEARNIVERSE_CONTENT")
}
