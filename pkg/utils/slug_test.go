package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple title", input: "Hello World", expected: "hello-world"},
		{name: "punctuation", input: "Dating, But Better!", expected: "dating-but-better"},
		{name: "accents", input: "Café résumé", expected: "cafe-resume"},
		{name: "multiple spaces", input: "Love   at first   swipe", expected: "love-at-first-swipe"},
		{name: "leading and trailing", input: "  Balloon'd  ", expected: "balloond"},
		{name: "numbers", input: "Top 10 Date Ideas", expected: "top-10-date-ideas"},
		{name: "only symbols", input: "!@#$%", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	if len(a) != 32 {
		t.Fatalf("NewID length = %d, want 32", len(a))
	}
	if a == b {
		t.Fatal("NewID returned duplicate ids")
	}
}
