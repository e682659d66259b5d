package storyboard

import (
	"encoding/json"
	"fmt"
	"math"
)

// Palette holds the three colors a storyboard draws from.
type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// DefaultPalette is used when no palette can be extracted from source
// material.
func DefaultPalette() Palette {
	return Palette{Primary: "#d5c4a1", Secondary: "#83a598", Accent: "#fb4934"}
}

// PickColor chooses the accent color for emphasized lines.
func (p Palette) PickColor(emphasis bool) string {
	if emphasis {
		return p.Accent
	}
	return p.Primary
}

// Directive is one timed caption in the storyboard timeline.
type Directive struct {
	Text      string  `json:"text"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Style     string  `json:"style"`
	Color     string  `json:"color"`
	Anchor    string  `json:"anchor"`
	Emphasis  bool    `json:"emphasis"`
	Intensity float64 `json:"intensity"`
}

// Document is the full storyboard output.
type Document struct {
	Analysis Analysis    `json:"analysis"`
	Timeline []Directive `json:"timeline"`
}

// PickStyle maps a genre hint and energy intensity to an animation style.
func PickStyle(genre string, intensity float64) string {
	switch genre {
	case "electronic":
		if intensity > 0.6 {
			return "flash"
		}
		return "slide"
	case "pop":
		if intensity > 0.5 {
			return "rise"
		}
		return "fade"
	case "rnb":
		if intensity > 0.5 {
			return "drift"
		}
		return "soft-fade"
	default:
		return "slow-fade"
	}
}

// Generate lays the lines out along the beat grid. Each line starts on
// its beat (or after the previous line once beats run out), lasts at
// least two beat intervals, alternates center/bottom anchors, and takes
// the accent color when the line repeats elsewhere in the lyrics.
func Generate(lines []string, analysis Analysis, palette Palette) []Directive {
	beats := analysis.Beats
	if len(beats) == 0 {
		beats = []float64{0, analysis.Duration}
	}
	beatInterval := 60.0 / analysis.Tempo
	if len(beats) > 1 {
		beatInterval = beats[1] - beats[0]
	}

	counts := make(map[string]int, len(lines))
	for _, line := range lines {
		counts[line]++
	}

	directives := make([]Directive, 0, len(lines))
	cursor := 0.0
	for i, line := range lines {
		duration := math.Max(beatInterval*2, beatInterval*float64(WordCount(line))*0.6)

		start := cursor
		if i < len(beats) {
			start = beats[i]
		}
		end := start + duration

		emphasis := counts[line] > 1
		anchor := "center"
		if i%2 == 1 {
			anchor = "bottom"
		}

		intensity := 0.5
		if len(analysis.Energy) > 0 {
			intensity = analysis.Energy[i%len(analysis.Energy)]
		}

		directives = append(directives, Directive{
			Text:      line,
			Start:     start,
			End:       end,
			Style:     PickStyle(analysis.Genre, intensity),
			Color:     palette.PickColor(emphasis),
			Anchor:    anchor,
			Emphasis:  emphasis,
			Intensity: intensity,
		})
		cursor = end
	}
	return directives
}

// Encode serializes the storyboard document as indented JSON.
func (d Document) Encode() ([]byte, error) {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding storyboard: %w", err)
	}
	return b, nil
}
