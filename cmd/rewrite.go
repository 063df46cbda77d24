package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/meltemi-labs/reviewboost/internal/business"
	"github.com/meltemi-labs/reviewboost/internal/config"
	"github.com/meltemi-labs/reviewboost/internal/llm"
	"github.com/meltemi-labs/reviewboost/internal/review"
	"github.com/meltemi-labs/reviewboost/internal/rewrite"
)

var rewriteKeywords []string

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [text]",
	Short: "Rewrite a draft review from the terminal",
	Long: `Rewrite a draft review without starting the server.

Required environment variables:
  OPENAI_API_KEY - generation API credential

Examples:
  reviewboost rewrite "Good service, friendly staff"
  reviewboost rewrite "Great coffee" --keyword "specialty coffee" --keyword cozy`,
	Args: cobra.ExactArgs(1),
	RunE: runRewrite,
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
	rewriteCmd.Flags().StringArrayVar(&rewriteKeywords, "keyword", nil, "Keyword to incorporate (repeatable)")
}

func runRewrite(cmd *cobra.Command, args []string) error {
	text := args[0]

	// Styling
	var (
		headerColor   = lipgloss.Color("#F780FF") // Bright pink
		originalColor = lipgloss.Color("#6272A4") // Muted purple
		improvedColor = lipgloss.Color("#E9E9F4") // Light purple/white
		errorColor    = lipgloss.Color("#FF5555") // Red
	)

	headerStyle := lipgloss.NewStyle().
		Foreground(headerColor).
		Bold(true)

	originalStyle := lipgloss.NewStyle().
		Foreground(originalColor).
		Italic(true)

	improvedStyle := lipgloss.NewStyle().
		Foreground(improvedColor)

	errorStyle := lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	cfg := config.FromEnv()
	if cfg.APIKey == "" {
		return fmt.Errorf("%s OPENAI_API_KEY environment variable is required", errorStyle.Render("Error:"))
	}

	var profile *business.Profile
	if cfg.ProfilePath != "" {
		var err error
		profile, err = business.Load(cfg.ProfilePath)
		if err != nil {
			return err
		}
	}

	llmConfig := llm.DefaultConfig()
	llmConfig.Model = cfg.Model
	llmConfig.APIKey = cfg.APIKey

	generator, err := llm.NewOpenAILLM(llmConfig)
	if err != nil {
		return err
	}

	// The session gives the terminal client the same last-request-wins
	// semantics as a browser session, though a one-shot command never
	// actually supersedes anything.
	session := rewrite.NewSession(rewrite.New(generator, profile, llmConfig))

	var keywords []any
	for _, kw := range rewriteKeywords {
		keywords = append(keywords, kw)
	}
	payload := review.Payload{Text: text}
	if len(keywords) > 0 {
		payload.Keywords = keywords
	}

	result, err := session.Rewrite(context.Background(), payload)
	if err != nil {
		return fmt.Errorf("%s %w", errorStyle.Render("Error:"), err)
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("Original:"))
	fmt.Println(originalStyle.Render(text))
	fmt.Println()
	fmt.Println(headerStyle.Render("Improved:"))
	fmt.Println(improvedStyle.Render(result.ImprovedText))
	fmt.Println()
	fmt.Fprintf(os.Stderr, "%d -> %d characters (%s)\n",
		result.OriginalLength, result.ImprovedLength, result.Script)

	return nil
}
