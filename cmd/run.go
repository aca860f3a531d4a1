package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rehan/quizly/internal/app"
	"github.com/rehan/quizly/internal/config"
	"github.com/rehan/quizly/internal/logger"
	"github.com/rehan/quizly/internal/quiz"
	"github.com/rehan/quizly/internal/screens/home"
	"github.com/rehan/quizly/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(filepath.Dir(dbPath), "quizly.log")
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	bankPath := cfg.BankPath
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		bankPath = p
	}
	bank, err := quiz.Load(bankPath)
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps := home.Deps{
		Bank:     bank,
		Target:   cfg.QuestionsPerSession,
		History:  st.HistoryRepo(),
		Progress: st.ProgressRepo(),
		Settings: st.SettingRepo(),
		Logger:   log,
	}

	user := cfg.User
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		user = u
	}
	prefill, err := st.SettingRepo().Get(context.Background(), store.SettingCurrentUser)
	if err != nil {
		return fmt.Errorf("read saved user: %w", err)
	}

	return app.Run(deps, user, prefill)
}
