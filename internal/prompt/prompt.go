// Package prompt composes the system and user prompts sent to the
// generation model. Composition is a pure function of the validated request,
// the detected script label, and the optional business profile.
package prompt

import (
	"fmt"
	"strings"

	"github.com/meltemi-labs/reviewboost/internal/business"
	"github.com/meltemi-labs/reviewboost/internal/review"
)

// Prompt is the system/user pair for one completion call. Prompts are built
// fresh per request and never reused.
type Prompt struct {
	System string
	User   string
}

const genericSystemPrompt = `You are an expert copywriter specializing in creating engaging, descriptive, and SEO-friendly review content. Your task is to transform basic reviews into compelling, detailed descriptions that:

1. Maintain the original sentiment and key points
2. Add descriptive details and context
3. Use natural, engaging language
4. Incorporate relevant keywords naturally
5. Make the content more discoverable and appealing
6. Keep the tone authentic and trustworthy

CRITICAL INSTRUCTION: You MUST ALWAYS respond in the EXACT SAME LANGUAGE as the input text. NEVER translate to another language. Never invent facts that are not present in the input text or the provided keywords.`

// Compose builds the completion prompt for a validated request. The script
// label biases the model toward answering in the input language; profile may
// be nil when no business is configured.
func Compose(req *review.Request, script string, profile *business.Profile) Prompt {
	var categoryPrompt business.CategoryPrompt
	var hasCategory bool
	if profile != nil {
		categoryPrompt, hasCategory = profile.CategoryPrompt()
	}

	system := genericSystemPrompt
	if hasCategory && categoryPrompt.SystemPrompt != "" {
		system = categoryPrompt.SystemPrompt +
			"\n\nCRITICAL INSTRUCTION: You MUST ALWAYS respond in the EXACT SAME LANGUAGE as the input text. NEVER translate to another language. Never invent facts that are not present in the input text or the provided keywords."
	}

	var groups [][]string
	groups = append(groups, req.Keywords)
	if profile != nil {
		groups = append(groups, profile.Keywords)
	}
	if hasCategory {
		groups = append(groups, categoryPrompt.Keywords)
	}
	merged := MergeKeywords(groups...)

	var b strings.Builder
	b.WriteString("Transform this review into a more descriptive and SEO-friendly version. YOU MUST RESPOND IN THE EXACT SAME LANGUAGE AS THE ORIGINAL REVIEW - DO NOT TRANSLATE:\n\n")
	fmt.Fprintf(&b, "Original Review (Language: %s): %q\n", script, req.Text)

	if len(merged) > 0 {
		fmt.Fprintf(&b, "\nPlease naturally incorporate these keywords if relevant: %s\n", strings.Join(merged, ", "))
	}

	if profile != nil {
		b.WriteString("\nBusiness context (for reference only, do not invent experiences):\n")
		fmt.Fprintf(&b, "- Name: %s\n", profile.Name)
		if profile.Category != "" {
			fmt.Fprintf(&b, "- Category: %s\n", profile.Category)
		}
		if profile.Location != "" {
			fmt.Fprintf(&b, "- Location: %s\n", profile.Location)
		}
		if len(profile.Specialties) > 0 {
			fmt.Fprintf(&b, "- Specialties: %s\n", strings.Join(profile.Specialties, "; "))
		}
		if hasCategory && len(categoryPrompt.FocusAreas) > 0 {
			fmt.Fprintf(&b, "- Focus areas: %s\n", strings.Join(categoryPrompt.FocusAreas, ", "))
		}
	}

	b.WriteString("\nProvide only the improved review text, nothing else.")

	return Prompt{System: system, User: b.String()}
}

// MergeKeywords deduplicates the given keyword groups while preserving
// first-seen order across groups. Entries are trimmed; empties are dropped.
func MergeKeywords(groups ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, group := range groups {
		for _, kw := range group {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue
			}
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			out = append(out, kw)
		}
	}
	return out
}
