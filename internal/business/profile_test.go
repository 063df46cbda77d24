package business

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")

	content := `
name: Efi Oikonomou Language School
category: English language school
location: Ioannina, Greece
specialties:
  - All levels from AB Junior to D Senior
  - Michigan ECCE / Cambridge FCE preparation
keywords:
  - english lessons ioannina
  - small classes
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Name != "Efi Oikonomou Language School" {
		t.Errorf("unexpected name: %q", p.Name)
	}
	if len(p.Specialties) != 2 {
		t.Errorf("expected 2 specialties, got %d", len(p.Specialties))
	}
	if len(p.Keywords) != 2 {
		t.Errorf("expected 2 keywords, got %d", len(p.Keywords))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_MissingName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	if err := os.WriteFile(path, []byte("category: cafe\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for profile without a name")
	}
}

func TestCategoryPrompt(t *testing.T) {
	tests := []struct {
		name     string
		category string
		wantOK   bool
	}{
		{"exact token", "restaurant", true},
		{"longer description", "Specialty coffee shop", true},
		{"language school", "English language school", true},
		{"case insensitive", "HOTEL & Spa", true},
		{"unknown", "car wash", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Profile{Name: "x", Category: tt.category}
			cp, ok := p.CategoryPrompt()
			if ok != tt.wantOK {
				t.Fatalf("CategoryPrompt() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && cp.SystemPrompt == "" {
				t.Error("resolved category prompt has empty system prompt")
			}
		})
	}
}
