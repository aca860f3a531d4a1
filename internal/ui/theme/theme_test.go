package theme

import (
	"image/color"
	"testing"
)

func TestDifficultyColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"easy", Easy},
		{"medium", Medium},
		{"hard", Hard},
		{"unknown", Medium},
	}
	for _, tt := range tests {
		if got := DifficultyColor(tt.in); got != tt.want {
			t.Errorf("DifficultyColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
