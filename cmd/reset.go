package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rehan/quizly/internal/config"
	"github.com/rehan/quizly/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset <user>",
	Short: "Delete a user's history and saved progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		user := args[0]
		if err := st.ResetUser(cmd.Context(), user); err != nil {
			return fmt.Errorf("reset %s: %w", user, err)
		}

		fmt.Printf("Cleared all data for %s.\n", user)
		return nil
	},
}
