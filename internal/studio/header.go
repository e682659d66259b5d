package studio

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	MOTIONLAB  |  1080p @ 30fps  |  mp4  |  3 scenes (12.0s)
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("MOTIONLAB")
	sep := headerSepStyle.Render(" │ ")

	var parts []string
	parts = append(parts, brand)

	parts = append(parts, sep)
	parts = append(parts, headerMetaStyle.Render(
		fmt.Sprintf("%s @ %dfps", m.session.Resolution, m.session.FPS)))

	parts = append(parts, sep)
	parts = append(parts, headerMetaStyle.Render(m.session.Format))

	scenes := m.session.Scenes()
	parts = append(parts, sep)
	parts = append(parts, headerMetaStyle.Render(
		fmt.Sprintf("%d scenes (%.1fs)", len(scenes), m.session.TotalDuration())))

	content := strings.Join(parts, "")

	return headerBarStyle.Width(m.width).Render(content)
}

// renderFooter produces the bottom status bar with keyboard hints, or
// the save-template prompt when a name is being typed.
func renderFooter(m *Model) string {
	if m.saveMode {
		cursor := promptCursorStyle.Render(" ")
		bar := promptBarStyle.Render(
			fmt.Sprintf("Template name: %s%s", m.nameInput, cursor))
		right := renderHints([]hint{
			{"enter", "save"},
			{"esc", "cancel"},
		})
		gap := m.width - lipgloss.Width(bar) - lipgloss.Width(right)
		if gap < 0 {
			gap = 0
		}
		return lipgloss.NewStyle().
			Background(colorBgSurface).
			Width(m.width).
			Render(bar + strings.Repeat(" ", gap) + right)
	}

	var left string
	if m.statusMsg != "" {
		left = statusStyle.Render(m.statusMsg)
	}
	if m.heapBytes > 0 {
		left += statusStyle.Render("heap " + formatHeap(m.heapBytes))
	}

	right := renderHints(paneHints(m.activePane))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func paneHints(p Pane) []hint {
	common := []hint{
		{"tab", "pane"},
		{"q", "quit"},
	}

	switch p {
	case PaneTemplates:
		return append([]hint{
			{"↑↓", "navigate"},
			{"enter", "apply"},
			{"s", "save"},
		}, common...)
	case PanePreview:
		return append([]hint{
			{"p", "play"},
			{"f", "font"},
		}, common...)
	case PaneTimeline:
		return append([]hint{
			{"a", "add"},
			{"↑↓", "navigate"},
			{"←→", "duration"},
		}, common...)
	case PaneBatch:
		return append([]hint{
			{"b", "batch"},
			{"c", "cloud"},
			{"e", "format"},
			{"enter", "export"},
		}, common...)
	}
	return common
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
