// Package business holds the static business profile and the
// category-to-prompt mapping used to enrich rewrite prompts. The profile is
// loaded once at startup and never mutated afterwards.
package business

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile describes the entity being reviewed. It is operator-supplied
// configuration, never user input.
type Profile struct {
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	Location    string   `yaml:"location"`
	Specialties []string `yaml:"specialties"`
	Keywords    []string `yaml:"keywords"`
}

// CategoryPrompt is a category-specific prompt bundle: a system prompt, the
// aspects the model should emphasise, and extra keywords worth weaving in.
type CategoryPrompt struct {
	SystemPrompt string
	FocusAreas   []string
	Keywords     []string
}

// Load reads a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read business profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse business profile: %w", err)
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("business profile %s: name is required", path)
	}
	return &p, nil
}

// CategoryPrompt resolves the category-specific prompt bundle for the
// profile's category, if one exists.
func (p *Profile) CategoryPrompt() (CategoryPrompt, bool) {
	key := resolveCategory(p.Category)
	if key == "" {
		return CategoryPrompt{}, false
	}
	cp, ok := categoryPrompts[key]
	return cp, ok
}

// resolveCategory maps a free-form category description to a known key by
// token match. Matching is case-insensitive and tolerant of longer
// descriptions like "Specialty coffee shop".
func resolveCategory(category string) string {
	c := strings.ToLower(category)
	for key, tokens := range categoryAliases {
		for _, tok := range tokens {
			if strings.Contains(c, tok) {
				return key
			}
		}
	}
	return ""
}

var categoryAliases = map[string][]string{
	"restaurant": {"restaurant", "taverna", "bistro", "grill"},
	"cafe":       {"cafe", "café", "coffee", "bakery", "patisserie"},
	"hotel":      {"hotel", "guesthouse", "resort", "bnb", "apartments"},
	"education":  {"school", "tutoring", "language", "education", "academy"},
	"retail":     {"shop", "store", "boutique", "retail"},
	"healthcare": {"clinic", "dental", "doctor", "medical", "pharmacy"},
}

var categoryPrompts = map[string]CategoryPrompt{
	"restaurant": {
		SystemPrompt: "You are an expert copywriter for restaurant reviews. Rewrite the review so it reads naturally while highlighting food quality, service, and atmosphere. Keep the original sentiment and key points, and never add dishes or experiences the reviewer did not mention.",
		FocusAreas:   []string{"food quality", "service", "atmosphere", "value for money"},
		Keywords:     []string{"fresh ingredients", "attentive service"},
	},
	"cafe": {
		SystemPrompt: "You are an expert copywriter for cafe and coffee shop reviews. Rewrite the review so it reads naturally while highlighting drinks, pastries, and the space itself. Keep the original sentiment and key points, and never invent details.",
		FocusAreas:   []string{"coffee quality", "pastries", "ambience", "seating"},
		Keywords:     []string{"specialty coffee", "cozy atmosphere"},
	},
	"hotel": {
		SystemPrompt: "You are an expert copywriter for hotel and accommodation reviews. Rewrite the review so it reads naturally while highlighting rooms, cleanliness, location, and staff. Keep the original sentiment and key points, and never invent details.",
		FocusAreas:   []string{"rooms", "cleanliness", "location", "staff"},
		Keywords:     []string{"comfortable stay", "great location"},
	},
	"education": {
		SystemPrompt: "You are an expert copywriter for reviews of schools and tutoring centers. Rewrite the review so it reads naturally while highlighting teaching quality, individual attention, and results. Keep the original sentiment and key points, and never invent details.",
		FocusAreas:   []string{"teaching quality", "individual attention", "exam results", "class size"},
		Keywords:     []string{"experienced teachers", "personal support"},
	},
	"retail": {
		SystemPrompt: "You are an expert copywriter for retail store reviews. Rewrite the review so it reads naturally while highlighting product range, quality, and customer service. Keep the original sentiment and key points, and never invent details.",
		FocusAreas:   []string{"product range", "quality", "customer service", "prices"},
		Keywords:     []string{"helpful staff", "good selection"},
	},
	"healthcare": {
		SystemPrompt: "You are an expert copywriter for reviews of clinics and medical practices. Rewrite the review so it reads naturally while highlighting care quality, professionalism, and facilities. Keep the original sentiment and key points, and never invent details.",
		FocusAreas:   []string{"care quality", "professionalism", "waiting times", "facilities"},
		Keywords:     []string{"professional care", "friendly staff"},
	},
}
