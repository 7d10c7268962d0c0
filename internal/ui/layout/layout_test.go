package layout

import (
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   bool
	}{
		{"big enough", MinWidth, MinHeight, false},
		{"too narrow", MinWidth - 1, MinHeight, true},
		{"too short", MinWidth, MinHeight - 1, true},
		{"tiny", 10, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTooSmall(tt.width, tt.height); got != tt.want {
				t.Fatalf("IsTooSmall(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestContentHeightMatchesRenderedChrome(t *testing.T) {
	width := 100
	header := RenderHeader("Writing", "polish · B1", width)
	footer := RenderFooter([]KeyHint{{Key: "^G", Description: "Generate"}}, "Ready.", false, width)

	chrome := lipgloss.Height(header) + lipgloss.Height(footer)
	total := 40
	if got, want := ContentHeight(total), total-chrome; got != want {
		t.Fatalf("ContentHeight(%d) = %d, want %d (header %d + footer %d lines)",
			total, got, want, lipgloss.Height(header), lipgloss.Height(footer))
	}
}

func TestContentHeightNeverNegative(t *testing.T) {
	if got := ContentHeight(2); got != 0 {
		t.Fatalf("ContentHeight(2) = %d, want 0", got)
	}
}

func TestRenderFooterDropsStatusWhenCramped(t *testing.T) {
	hints := []KeyHint{
		{Key: "Tab", Description: "Focus"},
		{Key: "^G", Description: "Generate Exercise"},
		{Key: "^R", Description: "Check Writing"},
		{Key: "^S", Description: "Save"},
	}
	footer := RenderFooter(hints, "a status line that cannot possibly fit", false, MinWidth)
	if lipgloss.Height(footer) != 3 {
		t.Fatalf("cramped footer should stay one bordered line, got height %d", lipgloss.Height(footer))
	}
}
