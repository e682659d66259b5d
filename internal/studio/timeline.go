package studio

import (
	"fmt"
	"strings"

	"github.com/kavehm/motionlab/internal/editor"
	"github.com/kavehm/motionlab/pkg/timeutil"
)

// renderTimelinePanel renders the scene list with a bar per scene
// proportional to its duration.
func renderTimelinePanel(m *Model, width, height int) string {
	style := panelStyle
	title := panelTitleDimStyle
	if m.activePane == PaneTimeline {
		style = panelActiveStyle
		title = panelTitleStyle
	}

	scenes := m.session.Scenes()

	var lines []string
	lines = append(lines, title.Render("Timeline")+
		sceneDurationStyle.Render(fmt.Sprintf("  %s total",
			timeutil.FormatSeconds(m.session.TotalDuration()))))
	lines = append(lines, "")

	if len(scenes) == 0 {
		lines = append(lines, emptyStateStyle.Render("No scenes yet. Press a to add one."))
		body := strings.Join(lines, "\n")
		return style.Width(width - 2).Height(height - 1).Render(body)
	}

	maxVisible := height - 4
	if maxVisible < 3 {
		maxVisible = 3
	}
	startIdx := 0
	if m.selectedScene >= maxVisible {
		startIdx = m.selectedScene - maxVisible + 1
	}
	endIdx := startIdx + maxVisible
	if endIdx > len(scenes) {
		endIdx = len(scenes)
	}

	innerWidth := width - 4
	barSpace := maxInt(innerWidth-22, 4)

	for i := startIdx; i < endIdx; i++ {
		sc := scenes[i]

		barLen := int(sc.Duration / editor.MaxSceneDuration * float64(barSpace))
		if barLen < 1 {
			barLen = 1
		}
		bar := sceneBarStyle.Render(strings.Repeat("▇", barLen))

		content := fmt.Sprintf("%-10s %s %s",
			truncate(sc.Name, 10),
			bar,
			sceneDurationStyle.Render(timeutil.FormatSeconds(sc.Duration)))

		if i == m.selectedScene {
			lines = append(lines, sceneSelectedStyle.Width(innerWidth).Render(content))
		} else {
			lines = append(lines, sceneNormalStyle.Width(innerWidth).Render(content))
		}
	}

	body := strings.Join(lines, "\n")
	return style.Width(width - 2).Height(height - 1).Render(body)
}
