package prompt

import (
	"reflect"
	"strings"
	"testing"

	"github.com/meltemi-labs/reviewboost/internal/business"
	"github.com/meltemi-labs/reviewboost/internal/review"
)

func TestMergeKeywords(t *testing.T) {
	tests := []struct {
		name   string
		groups [][]string
		want   []string
	}{
		{
			name:   "request then profile, first-seen order",
			groups: [][]string{{"a", "b"}, {"b", "c"}},
			want:   []string{"a", "b", "c"},
		},
		{
			name:   "trims and drops empties",
			groups: [][]string{{" a ", ""}, {"a", "b "}},
			want:   []string{"a", "b"},
		},
		{
			name:   "all empty",
			groups: [][]string{{}, nil},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeKeywords(tt.groups...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeKeywords() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompose_GenericFallback(t *testing.T) {
	req := &review.Request{Text: "Good service, friendly staff"}

	p := Compose(req, review.LatinScript, nil)

	if !strings.Contains(p.System, "expert copywriter") {
		t.Error("generic system prompt not selected")
	}
	if !strings.Contains(p.System, "EXACT SAME LANGUAGE") {
		t.Error("system prompt missing same-language constraint")
	}
	if !strings.Contains(p.User, `"Good service, friendly staff"`) {
		t.Error("user prompt does not embed the original text")
	}
	if !strings.Contains(p.User, "Language: English or Latin-based") {
		t.Error("user prompt missing detected language label")
	}
	if strings.Contains(p.User, "incorporate these keywords") {
		t.Error("keyword clause rendered for empty keyword set")
	}
	if strings.Contains(p.User, "Business context") {
		t.Error("context block rendered without a profile")
	}
}

func TestCompose_WithKeywords(t *testing.T) {
	req := &review.Request{
		Text:     "Good service, friendly staff",
		Keywords: []string{"friendly", "fast"},
	}

	p := Compose(req, review.LatinScript, nil)

	if !strings.Contains(p.User, "friendly, fast") {
		t.Errorf("keyword clause missing merged keywords: %s", p.User)
	}
}

func TestCompose_WithProfile(t *testing.T) {
	req := &review.Request{
		Text:     "Great lessons, my kid improved a lot",
		Keywords: []string{"english lessons"},
	}
	profile := &business.Profile{
		Name:        "Efi Oikonomou Language School",
		Category:    "English language school",
		Location:    "Ioannina, Greece",
		Specialties: []string{"Small classes", "Exam preparation"},
		Keywords:    []string{"small classes", "english lessons"},
	}

	p := Compose(req, review.LatinScript, profile)

	// Category resolves to education, so the category system prompt wins.
	if !strings.Contains(p.System, "tutoring centers") {
		t.Errorf("category system prompt not selected: %s", p.System)
	}
	if !strings.Contains(p.System, "EXACT SAME LANGUAGE") {
		t.Error("category system prompt missing same-language constraint")
	}

	// Request keywords come first, profile and category keywords follow
	// deduplicated in first-seen order.
	idxReq := strings.Index(p.User, "english lessons")
	idxProfile := strings.Index(p.User, "small classes")
	if idxReq < 0 || idxProfile < 0 || idxReq > idxProfile {
		t.Errorf("merged keywords out of order: %s", p.User)
	}

	for _, want := range []string{
		"Name: Efi Oikonomou Language School",
		"Category: English language school",
		"Location: Ioannina, Greece",
		"Specialties: Small classes; Exam preparation",
		"Focus areas:",
	} {
		if !strings.Contains(p.User, want) {
			t.Errorf("context block missing %q", want)
		}
	}

	// The context block follows the keyword clause.
	if strings.Index(p.User, "incorporate these keywords") > strings.Index(p.User, "Business context") {
		t.Error("context block appears before the keyword clause")
	}
}

func TestCompose_GreekScriptLabel(t *testing.T) {
	req := &review.Request{Text: "Εξαιρετική εξυπηρέτηση και φιλικό προσωπικό"}

	p := Compose(req, review.DetectScript(req.Text), nil)

	if !strings.Contains(p.User, "Language: Greek") {
		t.Errorf("expected Greek language label in user prompt: %s", p.User)
	}
}
