package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rehan/quizly/internal/quiz"
)

var bankCmd = &cobra.Command{
	Use:   "bank [file]",
	Short: "Validate a question bank and print its composition",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}

		bank, err := quiz.Load(path)
		if err != nil {
			return err
		}

		if path == "" {
			fmt.Println("Built-in bank OK")
		} else {
			fmt.Printf("%s OK\n", path)
		}
		fmt.Printf("  %d questions\n\n", bank.Len())

		fmt.Println("  By topic")
		for topic, n := range bank.TopicCounts() {
			fmt.Printf("    %-14s %d\n", topic, n)
		}
		fmt.Println()

		fmt.Println("  By difficulty")
		for _, d := range []quiz.Difficulty{quiz.DifficultyEasy, quiz.DifficultyMedium, quiz.DifficultyHard} {
			fmt.Printf("    %-14s %d\n", d, bank.DifficultyCounts()[d])
		}

		return nil
	},
}
