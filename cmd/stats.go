package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rehan/quizly/internal/analytics"
	"github.com/rehan/quizly/internal/config"
	"github.com/rehan/quizly/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats [user]",
	Short: "Print quiz statistics without the TUI",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

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

		user := cfg.User
		if len(args) > 0 {
			user = args[0]
		}
		if user == "" {
			user, err = st.SettingRepo().Get(ctx, store.SettingCurrentUser)
			if err != nil {
				return err
			}
		}
		if user == "" {
			return fmt.Errorf("no user given and none remembered; run `quizly stats <user>`")
		}

		records, err := st.HistoryRepo().ByUser(ctx, user)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		overall := analytics.Summarize(records)
		if overall.Sessions == 0 {
			fmt.Printf("%s has no completed quizzes yet.\n", user)
			return nil
		}

		fmt.Printf("Stats for %s\n\n", user)
		fmt.Printf("  Quizzes completed   %d\n", overall.Sessions)
		fmt.Printf("  Questions answered  %d\n", overall.QuestionsDone)
		fmt.Printf("  Correct answers     %d\n", overall.CorrectAnswers)
		fmt.Printf("  Average score       %.1f%%\n", overall.AverageScore)
		fmt.Printf("  Best score          %.1f%%\n", overall.BestScore)
		fmt.Printf("  Completion rate     %.1f%%\n", overall.CompletionRate)
		fmt.Printf("  Trend               %+.1f%%\n\n", overall.Improvement)

		topicAcc, topics := analytics.TopicAccuracy(records)
		if len(topics) > 0 {
			fmt.Println("  Accuracy by topic")
			for _, t := range topics {
				acc := topicAcc[t]
				fmt.Printf("    %-14s %3.0f%%  (%d/%d)\n", t, acc.Percent(), acc.Correct, acc.Total)
			}
			fmt.Println()
		}

		diffAcc, _ := analytics.DifficultyAccuracy(records)
		fmt.Println("  Accuracy by difficulty")
		for _, d := range []string{"easy", "medium", "hard"} {
			if acc, ok := diffAcc[d]; ok {
				fmt.Printf("    %-14s %3.0f%%  (%d/%d)\n", d, acc.Percent(), acc.Correct, acc.Total)
			}
		}
		fmt.Println()

		fmt.Println("  Last 7 days")
		for _, day := range analytics.WeeklyActivity(records, time.Now()) {
			fmt.Printf("    %s  %d\n", day.Day.Format("Mon Jan 02"), day.Count)
		}

		return nil
	},
}
