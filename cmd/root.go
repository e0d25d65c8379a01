package cmd

import (
	"github.com/misaki/kumora/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kumora",
	Short: "Kumon-style math practice in the terminal",
	Long:  "Kumora — graduated worksheet practice from counting (4A) through fraction calculations (F), with three-tier hints.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KUMORA_DB env var)")
	rootCmd.Flags().String("level", "2A", "Worksheet level (4A, 3A, 2A, A-F)")
	rootCmd.Flags().Int("worksheet", 1, "Worksheet number (1-200)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(photoCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then KUMORA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
