package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reviewboost",
	Short: "ReviewBoost - review rewriting service",
	Long: `ReviewBoost polishes draft map reviews with a text-generation model.

It validates the draft, detects its script so the model answers in the same
language, merges keywords with the configured business profile, and returns
an improved version of the text.`,
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
