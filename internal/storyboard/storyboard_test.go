package storyboard

import (
	"encoding/json"
	"testing"
)

// TestPickStyle covers the genre/intensity mapping.
func TestPickStyle(t *testing.T) {
	cases := []struct {
		genre     string
		intensity float64
		want      string
	}{
		{"electronic", 0.8, "flash"},
		{"electronic", 0.4, "slide"},
		{"pop", 0.7, "rise"},
		{"pop", 0.3, "fade"},
		{"rnb", 0.6, "drift"},
		{"rnb", 0.2, "soft-fade"},
		{"ballad", 0.9, "slow-fade"},
	}
	for _, tc := range cases {
		if got := PickStyle(tc.genre, tc.intensity); got != tc.want {
			t.Errorf("PickStyle(%q, %v) = %q, want %q", tc.genre, tc.intensity, got, tc.want)
		}
	}
}

// TestPickColor verifies emphasis selects the accent.
func TestPickColor(t *testing.T) {
	p := DefaultPalette()
	if p.PickColor(true) != p.Accent {
		t.Error("expected accent for emphasized lines")
	}
	if p.PickColor(false) != p.Primary {
		t.Error("expected primary for plain lines")
	}
}

// TestGenerate verifies the timeline layout invariants: one directive
// per line, starts on the beat grid, non-zero durations, alternating
// anchors, and emphasis on repeated lines.
func TestGenerate(t *testing.T) {
	analysis := Estimate(120)
	lines := []string{"alpha", "beta", "alpha", "gamma"}

	directives := Generate(lines, analysis, DefaultPalette())
	if len(directives) != len(lines) {
		t.Fatalf("expected %d directives, got %d", len(lines), len(directives))
	}

	for i, d := range directives {
		if d.End <= d.Start {
			t.Errorf("directive %d has non-positive duration: %v..%v", i, d.Start, d.End)
		}
		if i < len(analysis.Beats) && d.Start != analysis.Beats[i] {
			t.Errorf("directive %d should start on beat %v, got %v",
				i, analysis.Beats[i], d.Start)
		}
	}

	if directives[0].Anchor != "center" || directives[1].Anchor != "bottom" {
		t.Errorf("expected alternating anchors, got %q, %q",
			directives[0].Anchor, directives[1].Anchor)
	}

	if !directives[0].Emphasis || !directives[2].Emphasis {
		t.Error("expected repeated line to be emphasized")
	}
	if directives[1].Emphasis {
		t.Error("expected unique line not to be emphasized")
	}
	if directives[0].Color != DefaultPalette().Accent {
		t.Errorf("emphasized line should use accent color, got %q", directives[0].Color)
	}
}

// TestGenerateNoBeats verifies layout falls back to sequential timing
// when the analysis carries no beat grid.
func TestGenerateNoBeats(t *testing.T) {
	analysis := Analysis{Tempo: 96, Duration: 30, Genre: "ballad"}
	directives := Generate([]string{"one", "two", "three"}, analysis, DefaultPalette())

	if len(directives) != 3 {
		t.Fatalf("expected 3 directives, got %d", len(directives))
	}
	// Beyond the synthesized two-entry grid, lines follow sequentially.
	if directives[2].Start < directives[1].End {
		t.Errorf("directive 2 overlaps: %v < %v", directives[2].Start, directives[1].End)
	}
}

// TestDocumentEncode verifies the output document is valid JSON with the
// expected top-level keys.
func TestDocumentEncode(t *testing.T) {
	analysis := Estimate(60)
	doc := Document{
		Analysis: analysis,
		Timeline: Generate([]string{"line"}, analysis, DefaultPalette()),
	}

	b, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["analysis"]; !ok {
		t.Error("missing analysis key")
	}
	if _, ok := decoded["timeline"]; !ok {
		t.Error("missing timeline key")
	}
}
