package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestProgressBar_Width(t *testing.T) {
	for _, pct := range []float64{-1, 0, 0.5, 1, 2} {
		bar := NewProgressBar("Known", pct, false, 40).View()
		if w := lipgloss.Width(bar); w != 40 {
			t.Errorf("percent %v: width = %d, want 40", pct, w)
		}
	}
}

func TestProgressBar_ShowsPercent(t *testing.T) {
	bar := NewProgressBar("", 0.25, true, 30).View()
	if !strings.Contains(bar, "25%") {
		t.Errorf("expected 25%% in %q", bar)
	}
}
