package review

import "testing"

func TestDetectScript(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain ascii", "Great coffee and friendly staff", LatinScript},
		{"greek", "Εξαιρετική εξυπηρέτηση", "Greek"},
		{"cyrillic", "Отличный сервис", "Cyrillic"},
		{"arabic", "خدمة ممتازة", "Arabic"},
		{"hebrew", "שירות מצוין", "Hebrew"},
		{"chinese", "服务很好", "Chinese"},
		{"japanese kana", "すばらしいサービス", "Japanese"},
		{"korean", "서비스가 훌륭해요", "Korean"},
		{"latin with accents", "Très bon café", LatinScript},
		{"empty", "", LatinScript},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectScript(tt.text); got != tt.want {
				t.Errorf("DetectScript(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Detection walks a fixed priority list and the first matching family wins.
// A text mixing Greek and Cyrillic is labeled Greek because Greek is checked
// first, regardless of which character appears earlier in the text.
func TestDetectScript_PriorityOrder(t *testing.T) {
	mixed := "Сервис και εξυπηρέτηση"
	if got := DetectScript(mixed); got != "Greek" {
		t.Errorf("expected Greek for mixed Greek/Cyrillic text, got %q", got)
	}

	// CJK ideographs are claimed by Chinese before Japanese is considered.
	if got := DetectScript("漢字"); got != "Chinese" {
		t.Errorf("expected Chinese for bare ideographs, got %q", got)
	}
}
