package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rehan/quizly/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizly",
	Short: "Adaptive quiz for the terminal",
	Long:  "Quizly is a terminal quiz that adapts question difficulty to how you're doing and tracks your progress over time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// Local .env is optional.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZLY_DB env var)")
	rootCmd.Flags().String("bank", "", "Path to a question bank JSON file (default: built-in bank)")
	rootCmd.Flags().String("user", "", "Player name, skips the welcome prompt")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then config / QUIZLY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
