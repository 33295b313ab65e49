package validate

import "testing"

func TestIsPictographic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"single emoji", "\U0001F6D2", true}, // shopping cart
		{"face", "\U0001F600", true},
		{"umbrella with variation selector", "☂️", true},
		{"heart with variation selector", "❤️", true},
		{"zwj family", "\U0001F468‍\U0001F469‍\U0001F467", true},
		{"empty string", "", false},
		{"ascii letter", "a", false},
		{"ascii word", "ab", false},
		{"digit", "1", false},
		{"two unrelated emoji", "\U0001F6D2\U0001F600", false},
		{"emoji then letter", "\U0001F6D2a", false},
		{"letter then emoji", "a\U0001F6D2", false},
		{"dangling zwj", "\U0001F468‍", false},
		{"zwj then letter", "\U0001F468‍a", false},
		{"lone variation selector", "️", false},
		{"lone zwj", "‍", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPictographic(tt.input); got != tt.want {
				t.Errorf("IsPictographic(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
