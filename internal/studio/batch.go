package studio

import (
	"fmt"
	"strings"

	"github.com/kavehm/motionlab/internal/sim"
)

// renderBatchPanel renders the simulated batch render queue, the cloud
// render status and the export format picker.
func renderBatchPanel(m *Model, width, height int) string {
	style := panelStyle
	title := panelTitleDimStyle
	if m.activePane == PaneBatch {
		style = panelActiveStyle
		title = panelTitleStyle
	}

	var lines []string
	lines = append(lines, title.Render("Render"))
	lines = append(lines, "")

	if len(m.batch) == 0 {
		lines = append(lines, statusIdleStyle.Render("○ batch idle"))
	} else {
		for _, item := range m.batch {
			lines = append(lines, statusLine(item.Label, item.Status))
		}
	}

	lines = append(lines, "")
	if m.cloudActive {
		lines = append(lines, statusLine("Cloud", m.cloudStatus))
	} else {
		lines = append(lines, statusIdleStyle.Render("○ cloud idle"))
	}

	lines = append(lines, "")
	var formats []string
	for i, f := range m.cfg.OutputFormats {
		if i == m.exportIndex {
			formats = append(formats, hintKeyStyle.Render("["+f+"]"))
		} else {
			formats = append(formats, hintDescStyle.Render(f))
		}
	}
	lines = append(lines, previewLabelStyle.Render("Export  ")+strings.Join(formats, " "))

	body := strings.Join(lines, "\n")
	return style.Width(width - 2).Height(height - 1).Render(body)
}

func statusLine(label string, status sim.Status) string {
	var dot string
	switch status {
	case sim.StatusReady:
		dot = statusReadyStyle.Render("●")
	case sim.StatusProcessing:
		dot = statusProcessingStyle.Render("○")
	case sim.StatusQueued:
		dot = statusQueuedStyle.Render("○")
	default:
		dot = statusIdleStyle.Render("○")
	}
	return fmt.Sprintf("%s %-10s %s", dot, label, hintDescStyle.Render(status.String()))
}
