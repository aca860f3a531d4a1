package main

import (
	"os"

	"github.com/rehan/quizly/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
