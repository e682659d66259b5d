package studio

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kavehm/motionlab/internal/waveform"
)

// renderPreviewPanel renders the caption mock-up. No real rendering
// happens here; the caption is styled text and the rotation is shown
// as a numeric readout.
func renderPreviewPanel(m *Model, width, height int) string {
	style := panelStyle
	title := panelTitleDimStyle
	if m.activePane == PanePreview {
		style = panelActiveStyle
		title = panelTitleStyle
	}

	p := m.session.Preview()

	var lines []string
	heading := title.Render("Preview")
	if m.playing {
		heading += statusReadyStyle.Render("  ▶ playing")
	}
	lines = append(lines, heading)
	lines = append(lines, "")

	caption := previewCaptionStyle
	if m.playing {
		caption = previewPulseStyle
	}
	captionBox := caption.
		Foreground(lipgloss.Color(p.Color)).
		Render(p.PathText)
	lines = append(lines, lipgloss.PlaceHorizontal(width-4, lipgloss.Center, captionBox))
	lines = append(lines, "")

	rows := []struct{ label, value string }{
		{"Rotate", fmt.Sprintf("%.1f°", p.Rotate)},
		{"Font", p.Font},
		{"Color", p.Color},
		{"Format", m.session.Format},
	}
	for _, r := range rows {
		lines = append(lines,
			previewLabelStyle.Render(fmt.Sprintf("%-8s", r.label))+
				previewValueStyle.Render(r.value))
	}

	lines = append(lines, "")

	// Decorative waveform; reseeded every memory tick so it shimmers.
	rng := rand.New(rand.NewSource(m.waveSeed))
	samples := waveform.Samples(maxInt(width-6, 8), m.wavePhase, rng)
	lines = append(lines, waveformStyle.Render(waveform.Sparkline(samples, width-6)))

	body := strings.Join(lines, "\n")
	return style.Width(width - 2).Height(height - 1).Render(body)
}
