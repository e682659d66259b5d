package studio

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderTemplatesPanel renders the preset list. Built-in presets come
// first, then the user's saved ones.
func renderTemplatesPanel(m *Model, width, height int) string {
	style := panelStyle
	title := panelTitleDimStyle
	if m.activePane == PaneTemplates {
		style = panelActiveStyle
		title = panelTitleStyle
	}

	templates := m.session.Templates()

	var lines []string
	lines = append(lines, title.Render("Templates")+
		templateDimStyle.Render(fmt.Sprintf("  %d", len(templates))))
	lines = append(lines, "")

	// Visible range for scrolling
	maxVisible := height - 4
	if maxVisible < 3 {
		maxVisible = 3
	}

	startIdx := 0
	if m.selectedTemplate >= maxVisible {
		startIdx = m.selectedTemplate - maxVisible + 1
	}
	endIdx := startIdx + maxVisible
	if endIdx > len(templates) {
		endIdx = len(templates)
	}

	innerWidth := width - 4
	for i := startIdx; i < endIdx; i++ {
		t := templates[i]

		tag := templateUserTag.Render("user")
		if t.BuiltIn {
			tag = templateBuiltinTag.Render("built-in")
		}
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Color)).
			Render("■")

		content := fmt.Sprintf("%s %s  %s",
			swatch, truncate(t.Name, maxInt(innerWidth-14, 4)), tag)

		if i == m.selectedTemplate {
			lines = append(lines, templateSelectedStyle.Width(innerWidth).Render(content))
		} else {
			lines = append(lines, templateItemStyle.Width(innerWidth).Render(content))
		}
	}

	body := strings.Join(lines, "\n")
	return style.Width(width - 2).Height(height - 1).Render(body)
}
